package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysh86/pngme/png"
)

var cmdDecode = &cobra.Command{
	Use:   "decode <file> <chunk-type>",
	Short: "Print the message stored in the first chunk of a type",
	Args:  cobra.ExactArgs(2),
	RunE:  decode,
}

func init() {
	cmdMain.AddCommand(cmdDecode)
}

func decode(cmd *cobra.Command, args []string) error {
	chunkType, err := png.ParseChunkType(args[1])
	if err != nil {
		return err
	}

	f, err := readPNG(args[0])
	if err != nil {
		return err
	}

	c := f.ChunkByType(chunkType.String())
	if c == nil {
		return fmt.Errorf("%w: %s", png.ErrChunkNotFound, chunkType)
	}

	fmt.Fprintln(cmd.OutOrStdout(), c.DataString())
	return nil
}
