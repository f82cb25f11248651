package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sample-gallery/urigen/src/pkg/provider"
	"github.com/sample-gallery/urigen/src/pkg/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type serveConfig struct {
	Port      int    `yaml:"port"`
	Data      string `yaml:"data"`
	Templates string `yaml:"templates"`
}

func getDefaultConfig() *serveConfig {
	return &serveConfig{
		Port: 8080,
		Data: defaultDataDir(),
	}
}

func readConfig(path string) (*serveConfig, error) {
	// Absent fields keep their defaults.
	config := getDefaultConfig()
	if path == "" {
		return config, nil
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read config: %w", readErr)
	}
	if unmarshalErr := yaml.Unmarshal(data, config); unmarshalErr != nil {
		return nil, fmt.Errorf("wrong config file format: %w", unmarshalErr)
	}

	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("failed to read config: invalid port %d", config.Port)
	}
	return config, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the sample URI daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, configPathErr := cmd.Flags().GetString("config")
		if configPathErr != nil {
			return fmt.Errorf("failed to get config: %w", configPathErr)
		}

		config, configErr := readConfig(configPath)
		if configErr != nil {
			return configErr
		}
		slog.Debug("Read config", "config", config)

		store, storeErr := openStoreAt(config.Data)
		if storeErr != nil {
			return storeErr
		}
		defer closeStore(store)

		p := provider.New(store)
		if config.Templates != "" {
			templates, loadErr := provider.LoadTemplates(config.Templates)
			if loadErr != nil {
				return fmt.Errorf("failed to load templates: %w", loadErr)
			}
			if setErr := p.SetTemplates(templates); setErr != nil {
				return setErr
			}
		}

		handler, handlerErr := server.CreateHandler(p)
		if handlerErr != nil {
			return fmt.Errorf("failed to create handler: %w", handlerErr)
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", config.Port),
			Handler: handler.Routes(),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			slog.Info("Serving sample URIs", "addr", srv.Addr)
			if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve: %w", serveErr)
			}
			return nil
		})
		if config.Templates != "" {
			templatesPath := config.Templates
			g.Go(func() error {
				return provider.WatchTemplates(ctx, templatesPath, p)
			})
		}
		g.Go(func() error {
			<-ctx.Done()
			slog.Info("Shutting down HTTP server...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "Path to the daemon's config file")
}
