package cmd

import (
	"fmt"

	"github.com/sample-gallery/urigen/src/pkg/provider"
	"github.com/spf13/cobra"
)

var cacheBreakingCmd = &cobra.Command{
	Use:   "cache-breaking",
	Short: "Manages the default cache-breaking preference",
}

func setCacheBreaking(cmd *cobra.Command, value bool) error {
	store, storeErr := openStore(cmd)
	if storeErr != nil {
		return storeErr
	}
	defer closeStore(store)

	return provider.New(store).SetBreakCacheByDefault(value)
}

var cacheBreakingOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Appends a cache breaker to every generated URI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCacheBreaking(cmd, true)
	},
}

var cacheBreakingOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Only appends a cache breaker when explicitly requested",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCacheBreaking(cmd, false)
	},
}

var cacheBreakingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Prints the persisted cache-breaking preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, storeErr := openStore(cmd)
		if storeErr != nil {
			return storeErr
		}
		defer closeStore(store)

		enabled, flagErr := provider.New(store).BreakCacheByDefault()
		if flagErr != nil {
			return flagErr
		}
		if enabled {
			fmt.Println("on")
		} else {
			fmt.Println("off")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheBreakingCmd)
	cacheBreakingCmd.AddCommand(cacheBreakingOnCmd)
	cacheBreakingCmd.AddCommand(cacheBreakingOffCmd)
	cacheBreakingCmd.AddCommand(cacheBreakingStatusCmd)
}
