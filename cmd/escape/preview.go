package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-bitmap/pkg/bitmap"
)

func previewCmd() *cobra.Command {
	var (
		out   string
		width uint
	)

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Write a scaled-down PNG of a bitmap",
		Long: `Write a scaled-down PNG of a bitmap.

Rows are drawn in file order, so row 0 of the bitmap is the top of the PNG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == 0 {
				return fmt.Errorf("--%s must be positive", widthFlag)
			}
			cmd.SilenceUsage = true

			img, err := bitmap.ReadFile(args[0])
			if err != nil {
				return err
			}

			// A height of 0 keeps the aspect ratio.
			thumb := resize.Resize(width, 0, img.ToRGBA(), resize.NearestNeighbor)

			return writePNG(out, thumb)
		},
	}

	cmd.Flags().StringVarP(&out, outFlag, "o", "preview.png", "PNG file to write")
	cmd.Flags().UintVar(&width, widthFlag, 300, "preview width in pixels")

	return cmd
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
	}()

	return png.Encode(f, img)
}
