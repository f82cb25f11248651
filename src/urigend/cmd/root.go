package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sample-gallery/urigen/src/pkg/logging"
	"github.com/sample-gallery/urigen/src/pkg/prefs"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "urigend",
	Short: "A tool generating and serving sample image URIs for gallery demos",
}

func Execute() {
	logging.Setup()
	err := rootCmd.Execute()
	if err != nil {
		slog.Error("failed to execute command", "error", err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "urigend")
	}
	return ".urigend"
}

func openStoreAt(dir string) (*prefs.BadgerStore, error) {
	return prefs.NewBadgerStore(filepath.Join(dir, "prefs"))
}

// openStore opens the persisted preference store below the data directory
// given by the --data flag.
func openStore(cmd *cobra.Command) (*prefs.BadgerStore, error) {
	dir, dirErr := cmd.Flags().GetString("data")
	if dirErr != nil {
		return nil, dirErr
	}
	return openStoreAt(dir)
}

func closeStore(store *prefs.BadgerStore) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close preference store", "error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().String("data", defaultDataDir(), "Directory holding persisted preferences")
}
