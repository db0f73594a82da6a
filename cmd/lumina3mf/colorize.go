package main

import (
	"github.com/spf13/cobra"

	"lumina3mf"
	"lumina3mf/palette"
)

var colorizeCmd = &cobra.Command{
	Use:   "colorize [flags] <file.3mf>",
	Short: "Inject per-object colorgroups into a 3MF file",
	Long:  "Parse the archive's model document, detect or apply a color mode, and tag every object's triangles and build items with the matching colorgroup.",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorize,
}

func init() {
	colorizeCmd.Flags().String("mode", "auto", "color mode (rybw|cmyw|auto)")
	colorizeCmd.Flags().String("output", "", "write the result here instead of in place")
}

func runColorize(cmd *cobra.Command, args []string) error {
	inPath := args[0]

	modeStr, err := cmd.Flags().GetString("mode")
	if err != nil {
		return err
	}

	mode, err := palette.Parse(modeStr)
	if err != nil {
		return err
	}

	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = inPath
	}

	rep, err := lumina3mf.ColorizeFile(inPath, outPath, mode)
	printReport(cmd, rep)

	return err
}
