// Command compressor reads a 24-bit BMP raster and writes a compressed
// picojpeg container.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dlecorfec/picojpeg"
)

func main() {
	root := &cobra.Command{
		Use:   "compressor input_image output_file [quality]",
		Short: "Compress a 24-bit BMP raster into a picojpeg container",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quality := 50
			if len(args) == 3 {
				q, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("quality must be an integer: %w", err)
				}
				quality = q
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()
			log := logger.Sugar()

			if err := picojpeg.Compress(args[0], args[1], quality, log); err != nil {
				log.Errorw("compression failed", "error", err)
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
