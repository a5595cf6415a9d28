package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gocut/pkg/cutter"
	"github.com/philipparndt/gocut/pkg/geometry"
)

// MaxSamples caps the size of a single grid
const MaxSamples = 1 << 24

// ErrInvalidStep is returned for non-positive or non-finite grid steps
var ErrInvalidStep = errors.New("grid step must be a positive finite number")

// GridOptions controls a drop grid
type GridOptions struct {
	Step    float64
	Workers int          // defaults to GOMAXPROCS
	Logger  *slog.Logger // defaults to slog.Default()
}

// Sample is the drop result at one grid node
type Sample struct {
	X, Y, Z  float64
	Hit      bool
	Triangle int
}

// Grid is a row-major height map of drop results over the mesh bounds
type Grid struct {
	Origin  geometry.Vector3
	Step    float64
	Columns int
	Rows    int
	Samples []Sample
}

// At returns the sample in the given column and row
func (g *Grid) At(column, row int) Sample {
	return g.Samples[row*g.Columns+column]
}

// Hits returns the samples that touched the mesh
func (g *Grid) Hits() []Sample {
	hits := make([]Sample, 0, len(g.Samples))
	for _, s := range g.Samples {
		if s.Hit {
			hits = append(hits, s)
		}
	}
	return hits
}

// Grid drops the cutter on every node of a regular XY grid covering the mesh.
// Rows are processed in parallel; the cutter is shared read-only, so it must
// not be moved while the grid runs.
func (m *Mesh) Grid(ctx context.Context, c *cutter.Cutter, opts GridOptions) (*Grid, error) {
	if !(opts.Step > 0) || math.IsInf(opts.Step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, opts.Step)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	size := m.bounds.Size()
	columns := int(math.Floor(size.X/opts.Step+geometry.Epsilon)) + 1
	rows := int(math.Floor(size.Y/opts.Step+geometry.Epsilon)) + 1
	if float64(columns)*float64(rows) > MaxSamples {
		return nil, fmt.Errorf("grid of %dx%d samples exceeds the limit of %d", columns, rows, MaxSamples)
	}

	grid := &Grid{
		Origin:  m.bounds.Min,
		Step:    opts.Step,
		Columns: columns,
		Rows:    rows,
		Samples: make([]Sample, columns*rows),
	}
	startZ := m.bounds.Max.Z

	logger.Debug("starting drop grid", "columns", columns, "rows", rows, "workers", workers, "cutter", c.String())
	began := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for row := 0; row < rows; row++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			y := grid.Origin.Y + float64(row)*opts.Step
			for col := 0; col < columns; col++ {
				x := grid.Origin.X + float64(col)*opts.Step
				result := m.Nearest(c, geometry.Down, geometry.NewVector3(x, y, startZ))
				sample := Sample{X: x, Y: y, Triangle: result.Triangle}
				if location, ok := result.Contact.Location(); ok {
					sample.Z = location.Z
					sample.Hit = true
				}
				grid.Samples[row*columns+col] = sample
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("drop grid cancelled: %w", err)
	}

	logger.Debug("finished drop grid", "samples", len(grid.Samples), "elapsed", time.Since(began))
	return grid, nil
}
