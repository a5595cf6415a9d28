package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocut/pkg/analysis"
	"github.com/philipparndt/gocut/pkg/geometry"
)

var (
	intersectStart     geometry.Vector3
	intersectDirection geometry.Vector3
	intersectExplain   bool
)

var intersectCmd = &cobra.Command{
	Use:   "intersect [file]",
	Short: "Move the cutter along a direction and report the nearest contact",
	Long: `Move the cutter tip from --start along --direction and report where it first
touches the mesh. Distances are signed: contacts behind the start are negative.
With --explain every candidate of the touched triangle is listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runIntersect,
}

func init() {
	rootCmd.AddCommand(intersectCmd)

	intersectCmd.Flags().Var(newVectorValue(geometry.Vector3{}, &intersectStart), "start", "start location of the cutter tip")
	intersectCmd.Flags().Var(newVectorValue(geometry.Down, &intersectDirection), "direction", "direction of movement")
	intersectCmd.Flags().BoolVar(&intersectExplain, "explain", false, "list every contact candidate of the touched triangle")
	_ = intersectCmd.MarkFlagRequired("start")
}

func runIntersect(cmd *cobra.Command, args []string) error {
	if intersectDirection.IsZero() {
		return fmt.Errorf("direction must not be zero")
	}
	c, err := tool.build()
	if err != nil {
		return err
	}
	_, mesh, err := loadMesh(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	result := mesh.Nearest(c, intersectDirection, intersectStart)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, analysis.FormatContact(result.Contact))
	if !result.Contact.Hit() {
		return nil
	}
	fmt.Fprintf(out, "Triangle: %d\n", result.Triangle)

	if intersectExplain {
		for _, cand := range c.Candidates(intersectDirection, mesh.Triangle(result.Triangle), intersectStart) {
			fmt.Fprintf(out, "  %-15s %s\n", cand.Label(), analysis.FormatContact(cand.Contact))
		}
	}
	return nil
}
