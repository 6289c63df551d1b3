package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/imgprep/internal/imaging"
)

var dimensionsCommand = &cobra.Command{
	Use:   "dimensions PATH",
	Short: "Print WIDTHxHEIGHT of an image, read from its header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dims, err := imaging.GetDimensions(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", dims.Width, dims.Height)
		return err
	},
}
