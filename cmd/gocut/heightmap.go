package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocut/pkg/analysis"
	"github.com/philipparndt/gocut/pkg/probe"
	"github.com/philipparndt/gocut/pkg/viewer"
	"github.com/philipparndt/gocut/pkg/watcher"
)

var (
	heightmapStep    float64
	heightmapWorkers int
	heightmapOutput  string
	heightmapWatch   bool
	heightmapImage   string
	heightmapScale   int
)

var heightmapCmd = &cobra.Command{
	Use:   "heightmap [file]",
	Short: "Drop the cutter on a regular grid over the mesh",
	Long: `Drop the cutter at every node of an XY grid covering the mesh bounds and write
the resting heights as CSV rows "x,y,z". Nodes without contact are omitted.
With --watch the map is recomputed whenever the mesh or tool library changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runHeightmap,
}

func init() {
	rootCmd.AddCommand(heightmapCmd)

	heightmapCmd.Flags().Float64Var(&heightmapStep, "step", 1, "grid spacing")
	heightmapCmd.Flags().IntVar(&heightmapWorkers, "workers", 0, "parallel workers (0 uses all CPUs)")
	heightmapCmd.Flags().StringVarP(&heightmapOutput, "output", "o", "", "CSV output file (default stdout)")
	heightmapCmd.Flags().BoolVar(&heightmapWatch, "watch", false, "recompute when input files change")
	heightmapCmd.Flags().StringVar(&heightmapImage, "image", "", "also write a shaded PNG preview")
	heightmapCmd.Flags().IntVar(&heightmapScale, "scale", 4, "preview pixels per sample")
}

func runHeightmap(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := computeHeightmap(ctx, cmd, args[0]); err != nil {
		if !heightmapWatch {
			return err
		}
		slog.Error("heightmap failed", "error", err)
	}
	if !heightmapWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(300*time.Millisecond, slog.Default())
	if err != nil {
		return err
	}
	defer fw.Close()

	files, err := inputFiles(args[0])
	if err != nil {
		return err
	}
	if tool.library != "" {
		files = append(files, tool.library)
	}
	err = fw.Watch(files, func(path string) {
		slog.Info("input changed, recomputing", "path", path)
		if err := computeHeightmap(ctx, cmd, args[0]); err != nil {
			slog.Error("heightmap failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	slog.Info("watching for changes", "files", files)
	return fw.Run(ctx)
}

func computeHeightmap(ctx context.Context, cmd *cobra.Command, filename string) error {
	c, err := tool.build()
	if err != nil {
		return err
	}
	_, mesh, err := loadMesh(ctx, filename)
	if err != nil {
		return err
	}

	grid, err := mesh.Grid(ctx, c, probe.GridOptions{
		Step:    heightmapStep,
		Workers: heightmapWorkers,
		Logger:  slog.Default(),
	})
	if err != nil {
		return err
	}

	if heightmapOutput == "" {
		if err := writeHeightmap(cmd.OutOrStdout(), grid); err != nil {
			return err
		}
	} else if err := writeHeightmapFile(heightmapOutput, grid); err != nil {
		return err
	}

	if heightmapImage != "" {
		img := viewer.Render(grid, viewer.Options{Scale: heightmapScale})
		if err := viewer.WritePNG(heightmapImage, img); err != nil {
			return err
		}
		slog.Debug("wrote preview", "file", heightmapImage)
	}

	hits := grid.Hits()
	heights := make([]float64, len(hits))
	for i, s := range hits {
		heights[i] = s.Z
	}
	fmt.Fprintln(cmd.ErrOrStderr(), analysis.Summarize(heights, len(grid.Samples)))
	return nil
}

func writeHeightmapFile(path string, grid *probe.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := writeHeightmap(file, grid); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeHeightmap(w io.Writer, grid *probe.Grid) error {
	out := csv.NewWriter(w)
	format := func(f float64) string {
		return strconv.FormatFloat(f, 'f', 6, 64)
	}
	if err := out.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, s := range grid.Hits() {
		if err := out.Write([]string{format(s.X), format(s.Y), format(s.Z)}); err != nil {
			return err
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return fmt.Errorf("failed to write heightmap: %w", err)
	}
	return nil
}
