package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lumina3mf"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <file.3mf>",
	Short: "List the objects of a 3MF file",
	Long:  "Print the object inventory of the archive's model document: ids, names, types, assembly flags and triangle counts.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Bool("dump", false, "raw dump of the object inventory")
}

func runInspect(cmd *cobra.Command, args []string) error {
	objects, err := lumina3mf.InspectFile(args[0])
	if err != nil {
		return err
	}

	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return err
	}

	if dump {
		spew.Dump(objects)
		return nil
	}

	assembly := color.New(color.FgCyan)

	fmt.Printf("%d objects\n", len(objects))

	for _, obj := range objects {
		if obj.IsAssembly {
			assembly.Printf("  id=%s name=%q type=%s (assembly)\n", obj.ID, obj.Name, obj.Type)
		} else {
			fmt.Printf("  id=%s name=%q type=%s triangles=%d\n", obj.ID, obj.Name, obj.Type, obj.Triangles)
		}
	}

	return nil
}
