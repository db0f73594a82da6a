// Package main provides the CLI entrypoint for lumina3mf.
//
// lumina3mf edits 3MF print archives:
//   - Renames geometry objects in file order
//   - Folds multiple objects into one printable assembly
//   - Injects per-object colorgroups for slicer software
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lumina3mf/internal/report"
)

var rootCmd = &cobra.Command{
	Use:           "lumina3mf",
	Short:         "Name, assemble and color 3MF print files",
	Long:          `lumina3mf edits 3MF archives: it renames objects, folds them into one assembly, and injects per-part colorgroups for slicer software.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(colorizeCmd)
	rootCmd.AddCommand(fixNamesCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.PersistentFlags().Bool("quiet", false, "suppress report output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// printReport writes the run's events and summary line to stdout unless
// --quiet was given.
func printReport(cmd *cobra.Command, rep *report.Report) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err == nil && quiet {
		return
	}

	if rep == nil {
		return
	}

	warn := color.New(color.FgYellow)

	for _, e := range rep.Events {
		if e.Severity == report.SeverityWarning {
			warn.Printf("warning: %s\n", e)
		} else {
			fmt.Printf("info: %s\n", e)
		}
	}

	fmt.Printf("mode=%s objects=%d tagged=%d triangles=%d items=%d\n",
		rep.DetectedMode, rep.ObjectsFound, rep.ObjectsTagged, rep.TrianglesTagged, rep.ItemsTagged)
}
