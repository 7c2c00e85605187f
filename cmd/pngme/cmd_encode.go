package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ysh86/pngme/png"
)

var cmdEncode = &cobra.Command{
	Use:   "encode <file> <chunk-type> <message> [output]",
	Short: "Store a message in a new chunk",
	Long:  "Store a message in a new chunk, inserted ahead of IEND. The file is rewritten in place unless an output path is given.",
	Args:  cobra.RangeArgs(3, 4),
	RunE:  encode,
}

func init() {
	cmdMain.AddCommand(cmdEncode)
}

func encode(cmd *cobra.Command, args []string) error {
	chunkType, err := parseChunkType(args[1])
	if err != nil {
		return err
	}

	f, err := readPNG(args[0])
	if err != nil {
		return err
	}

	c := png.NewChunk(chunkType, []byte(args[2]))
	f.InsertBefore(png.IEND.String(), c)

	output := args[0]
	if len(args) > 3 {
		output = args[3]
	}
	if err := writePNG(output, f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Encoded %s chunk (%d bytes) into %s\n", chunkType, c.Length(), output)
	return nil
}
