package cmd

import (
	"fmt"

	"github.com/sample-gallery/urigen/src/pkg/provider"
	"github.com/spf13/cobra"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manages the persisted URI override",
}

var overrideSetCmd = &cobra.Command{
	Use:   "set <uri>",
	Short: "Persists an override URI replacing every generated sample URI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, storeErr := openStore(cmd)
		if storeErr != nil {
			return storeErr
		}
		defer closeStore(store)

		return provider.New(store).SetOverride(args[0])
	},
}

var overrideGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Prints the persisted override URI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, storeErr := openStore(cmd)
		if storeErr != nil {
			return storeErr
		}
		defer closeStore(store)

		override, overrideErr := provider.New(store).Override()
		if overrideErr != nil {
			return overrideErr
		}
		if override == "" {
			fmt.Println("(not set)")
			return nil
		}
		fmt.Println(override)
		return nil
	},
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Removes the persisted override URI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, storeErr := openStore(cmd)
		if storeErr != nil {
			return storeErr
		}
		defer closeStore(store)

		return provider.New(store).SetOverride("")
	},
}

func init() {
	rootCmd.AddCommand(overrideCmd)
	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideGetCmd)
	overrideCmd.AddCommand(overrideClearCmd)
}
