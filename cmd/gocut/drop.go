package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocut/pkg/analysis"
	"github.com/philipparndt/gocut/pkg/geometry"
)

var dropX, dropY float64

var dropCmd = &cobra.Command{
	Use:   "drop [file]",
	Short: "Lower the cutter onto the mesh at one XY position",
	Long:  "Drop the cutter vertically at --x/--y and print the tip location where it rests on the mesh.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func init() {
	rootCmd.AddCommand(dropCmd)

	dropCmd.Flags().Float64Var(&dropX, "x", 0, "X coordinate of the tool axis")
	dropCmd.Flags().Float64Var(&dropY, "y", 0, "Y coordinate of the tool axis")
}

func runDrop(cmd *cobra.Command, args []string) error {
	c, err := tool.build()
	if err != nil {
		return err
	}
	_, mesh, err := loadMesh(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	start := geometry.NewVector3(dropX, dropY, mesh.Bounds().Max.Z)
	result := mesh.Nearest(c, geometry.Down, start)
	out := cmd.OutOrStdout()
	location, ok := result.Contact.Location()
	if !ok {
		fmt.Fprintln(out, "no contact")
		return nil
	}
	fmt.Fprintf(out, "Location: %s\n", analysis.FormatVector(location))
	fmt.Fprintf(out, "Triangle: %d\n", result.Triangle)
	return nil
}
