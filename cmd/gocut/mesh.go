package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/gocut/pkg/openscad"
	"github.com/philipparndt/gocut/pkg/probe"
	"github.com/philipparndt/gocut/pkg/stl"
)

// parseModel reads an STL file, rendering OpenSCAD sources first
func parseModel(ctx context.Context, filename string) (*stl.Model, error) {
	if !openscad.IsSource(filename) {
		model, err := stl.Parse(filename)
		if err != nil {
			return nil, fmt.Errorf("error parsing STL file: %w", err)
		}
		return model, nil
	}

	tmpDir, err := os.MkdirTemp("", "gocut-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	renderer := openscad.NewRenderer(filepath.Dir(filename), slog.Default())
	stlFile, err := renderer.RenderTemp(ctx, filename, tmpDir)
	if err != nil {
		return nil, err
	}
	model, err := stl.Parse(stlFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing rendered %s: %w", filename, err)
	}
	return model, nil
}

// inputFiles lists every file the mesh in filename is built from
func inputFiles(filename string) ([]string, error) {
	if !openscad.IsSource(filename) {
		return []string{filename}, nil
	}
	return openscad.NewRenderer(filepath.Dir(filename), slog.Default()).ResolveDependencies(filepath.Base(filename))
}

func loadMesh(ctx context.Context, filename string) (*stl.Model, *probe.Mesh, error) {
	began := time.Now()
	model, err := parseModel(ctx, filename)
	if err != nil {
		return nil, nil, err
	}
	mesh, err := probe.NewMesh(model.Triangles)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	slog.Debug("loaded mesh", "file", filename, "triangles", mesh.Len(), "elapsed", time.Since(began))
	return model, mesh, nil
}
