package main

import (
	"fmt"

	"github.com/danwakefield/fnmatch"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ysh86/pngme/png"
)

var cmdPrint = &cobra.Command{
	Use:   "print <file>",
	Short: "List the chunks of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  printChunks,
}

type printFlags struct {
	Type    string
	Verbose bool
}

var flagPrint printFlags

var (
	criticalColor  = color.New(color.FgGreen, color.Bold)
	ancillaryColor = color.New(color.FgCyan)
	privateColor   = color.New(color.FgMagenta)
)

func init() {
	cmdMain.AddCommand(cmdPrint)

	cmdPrint.Flags().StringVarP(&flagPrint.Type, "type", "t", "*", "Only show chunk types matching this glob")
	cmdPrint.Flags().BoolVarP(&flagPrint.Verbose, "verbose", "v", false, "Decode the payload of well-known chunks")
}

func printChunks(cmd *cobra.Command, args []string) error {
	f, err := readPNG(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var shown, size int
	for i, c := range f.Chunks() {
		t := c.Type()
		if !fnmatch.Match(flagPrint.Type, t.String(), 0) {
			continue
		}
		shown++
		size += c.Size()

		if flagPrint.Verbose {
			fmt.Fprintf(w, "#%d ", i)
			c.DumpTo(w)
			continue
		}

		fmt.Fprintf(w, "#%-3d %s  %8s  crc %08x  %s\n", i, typeColor(t).Sprint(t), humanize.IBytes(uint64(c.Length())), c.CRC(), describeFlags(t))
	}

	fmt.Fprintf(w, "%d of %d chunks, %s\n", shown, f.Len(), humanize.IBytes(uint64(size)))
	return nil
}

func typeColor(t png.ChunkType) *color.Color {
	switch {
	case !t.IsPublic():
		return privateColor
	case t.IsCritical():
		return criticalColor
	default:
		return ancillaryColor
	}
}

func describeFlags(t png.ChunkType) string {
	s := "ancillary"
	if t.IsCritical() {
		s = "critical"
	}
	if t.IsPublic() {
		s += ",public"
	} else {
		s += ",private"
	}
	if t.IsSafeToCopy() {
		s += ",safe-to-copy"
	}
	if !t.IsValid() {
		s += ",reserved-bit-set"
	}
	return s
}
