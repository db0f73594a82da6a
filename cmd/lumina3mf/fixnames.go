package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumina3mf"
	"lumina3mf/internal/manifest"
	"lumina3mf/palette"
)

var fixNamesCmd = &cobra.Command{
	Use:   "fixnames [flags] <file.3mf>",
	Short: "Assign object names and optionally build an assembly",
	Long:  "Assign the given names to objects in file order, optionally fold all objects into one assembly, and optionally run the coloring pipeline. Edits the archive in place.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixNames,
}

func init() {
	fixNamesCmd.Flags().StringSlice("names", nil, "object names in file order")
	fixNamesCmd.Flags().String("manifest", "", "YAML job manifest with slots and toggles")
	fixNamesCmd.Flags().Bool("no-assembly", false, "skip assembly synthesis")
	fixNamesCmd.Flags().Bool("no-colors", false, "skip colorgroup injection")
	fixNamesCmd.Flags().String("mode", "auto", "color mode (rybw|cmyw|auto)")
}

func runFixNames(cmd *cobra.Command, args []string) error {
	path := args[0]

	manifestPath, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return err
	}

	names, err := cmd.Flags().GetStringSlice("names")
	if err != nil {
		return err
	}

	if manifestPath != "" && len(names) > 0 {
		return fmt.Errorf("--names cannot be combined with --manifest")
	}

	var (
		slots []string
		opts  lumina3mf.FixOptions
	)

	if manifestPath != "" {
		job, err := manifest.LoadFile(manifestPath)
		if err != nil {
			return err
		}

		slots = job.Slots
		opts = lumina3mf.FixOptions{
			CreateAssembly: job.Assembly,
			EnableColors:   job.Colors,
			Mode:           job.Mode,
		}
	} else {
		if len(names) == 0 {
			return fmt.Errorf("either --names or --manifest is required")
		}

		noAssembly, err := cmd.Flags().GetBool("no-assembly")
		if err != nil {
			return err
		}

		noColors, err := cmd.Flags().GetBool("no-colors")
		if err != nil {
			return err
		}

		modeStr, err := cmd.Flags().GetString("mode")
		if err != nil {
			return err
		}

		mode, err := palette.Parse(modeStr)
		if err != nil {
			return err
		}

		slots = names
		opts = lumina3mf.FixOptions{
			CreateAssembly: !noAssembly,
			EnableColors:   !noColors,
			Mode:           mode,
		}
	}

	rep, err := lumina3mf.ProcessFile(path, slots, opts)
	printReport(cmd, rep)

	return err
}
