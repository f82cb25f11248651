package cmd

import (
	"fmt"

	"github.com/sample-gallery/urigen/src/pkg/provider"
	"github.com/spf13/cobra"
)

var uriCmd = &cobra.Command{
	Use:   "uri",
	Short: "Generates sample image URIs on stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, storeErr := openStore(cmd)
		if storeErr != nil {
			return storeErr
		}
		defer closeStore(store)

		p := provider.New(store)

		if nonExisting, _ := cmd.Flags().GetBool("non-existing"); nonExisting {
			fmt.Println(p.NonExistingURI())
			return nil
		}

		rawSize, _ := cmd.Flags().GetString("size")
		size, sizeErr := provider.ParseImageSize(rawSize)
		if sizeErr != nil {
			return sizeErr
		}

		rawOrientation, _ := cmd.Flags().GetString("orientation")
		orientation, orientationErr := provider.ParseOrientation(rawOrientation)
		if orientationErr != nil {
			return orientationErr
		}

		modification := provider.ModNone
		if breakCache, _ := cmd.Flags().GetBool("cache-breaker"); breakCache {
			modification = provider.ModCacheBreaker
		}

		count, _ := cmd.Flags().GetInt("count")
		for i := 0; i < count; i++ {
			uri, uriErr := p.SampleURI(size, orientation, modification)
			if uriErr != nil {
				return uriErr
			}
			fmt.Println(uri)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uriCmd)

	uriCmd.Flags().StringP("size", "s", "m", "Image size (xs, s, m, l, xl, xxl)")
	uriCmd.Flags().StringP("orientation", "o", "any", "Orientation filter (any, portrait, landscape)")
	uriCmd.Flags().Bool("cache-breaker", false, "Append a unique cache-breaking parameter")
	uriCmd.Flags().IntP("count", "n", 1, "Number of URIs to generate")
	uriCmd.Flags().Bool("non-existing", false, "Print the constant not-found URI instead")
}
