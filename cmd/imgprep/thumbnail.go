package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/imgprep/internal/imaging"
)

var thumbnailOutput string

var thumbnailCommand = &cobra.Command{
	Use:   "thumbnail PATH",
	Short: "Write a PNG thumbnail that fits inside --max-width x --max-height",
	Long: `Write a PNG thumbnail that fits inside --max-width x --max-height.

The aspect ratio is preserved and images that already fit are not enlarged.
Without -o the PNG bytes are written to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxWidth, err := checkBound("--max-width", c.Thumbnail.MaxWidth, c.Thumbnail.Limit)
		if err != nil {
			return err
		}
		maxHeight, err := checkBound("--max-height", c.Thumbnail.MaxHeight, c.Thumbnail.Limit)
		if err != nil {
			return err
		}

		data, err := imaging.CreateThumbnail(args[0], maxWidth, maxHeight)
		if err != nil {
			return err
		}

		if thumbnailOutput == "" || thumbnailOutput == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(thumbnailOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write thumbnail: %w", err)
		}
		return nil
	},
}

func init() {
	flags := thumbnailCommand.Flags()
	flags.StringVarP(&thumbnailOutput, "output", "o", "", "output file (default stdout)")
	flags.Int("max-width", 150, "largest thumbnail width in pixels")
	bindPFlagAs(flags, "thumbnail.max_width", "max-width")
	flags.Int("max-height", 150, "largest thumbnail height in pixels")
	bindPFlagAs(flags, "thumbnail.max_height", "max-height")
}

// checkBound rejects bounds the core would turn into a degenerate thumbnail.
func checkBound(name string, v, limit int) (uint, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	if limit > 0 && v > limit {
		return 0, fmt.Errorf("%s must be at most %d, got %d", name, limit, v)
	}
	return uint(v), nil
}
