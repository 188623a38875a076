// Command decompressor reads a picojpeg container and writes a 24-bit BMP
// raster.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dlecorfec/picojpeg"
)

func main() {
	root := &cobra.Command{
		Use:   "decompressor input_file output_image",
		Short: "Decompress a picojpeg container into a 24-bit BMP raster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()
			log := logger.Sugar()

			if err := picojpeg.Decompress(args[0], args[1], log); err != nil {
				log.Errorw("decompression failed", "error", err)
				return err
			}
			return nil
		},
	}
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
