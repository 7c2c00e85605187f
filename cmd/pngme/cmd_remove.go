package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysh86/pngme/png"
)

var cmdRemove = &cobra.Command{
	Use:   "remove <file> <chunk-type>",
	Short: "Remove the first chunk of a type",
	Args:  cobra.ExactArgs(2),
	RunE:  remove,
}

func init() {
	cmdMain.AddCommand(cmdRemove)
}

func remove(cmd *cobra.Command, args []string) error {
	chunkType, err := png.ParseChunkType(args[1])
	if err != nil {
		return err
	}

	f, err := readPNG(args[0])
	if err != nil {
		return err
	}

	c, err := f.RemoveByType(chunkType.String())
	if err != nil {
		return err
	}

	if err := writePNG(args[0], f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed: %v\n", c)
	return nil
}
