package main

import (
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-bitmap/pkg/bitmap"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the header fields of a bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			img, err := bitmap.ReadFile(args[0])
			if err != nil {
				return err
			}

			return img.Header.Dump(cmd.OutOrStdout())
		},
	}
}
