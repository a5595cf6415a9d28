package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/philipparndt/gocut/pkg/config"
	"github.com/philipparndt/gocut/pkg/cutter"
	"github.com/philipparndt/gocut/pkg/geometry"
)

// vectorValue is a pflag.Value parsing "x,y,z"
type vectorValue struct {
	v *geometry.Vector3
}

var _ pflag.Value = (*vectorValue)(nil)

func newVectorValue(val geometry.Vector3, p *geometry.Vector3) *vectorValue {
	*p = val
	return &vectorValue{v: p}
}

func (v *vectorValue) String() string {
	return fmt.Sprintf("%g,%g,%g", v.v.X, v.v.Y, v.v.Z)
}

func (v *vectorValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected x,y,z but got %q", s)
	}
	var c [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		c[i] = f
	}
	*v.v = geometry.NewVector3(c[0], c[1], c[2])
	return nil
}

func (v *vectorValue) Type() string {
	return "x,y,z"
}

// toolFlags selects the cutter used by every command
type toolFlags struct {
	library          string
	name             string
	shape            string
	radius           float64
	height           float64
	requiredDistance float64
	flags            *pflag.FlagSet
}

var tool toolFlags

func addToolFlags(fs *pflag.FlagSet) {
	tool.flags = fs
	fs.StringVar(&tool.library, "tools", "", "tool library file (.yaml, .yml or .toml)")
	fs.StringVar(&tool.name, "tool", "", "tool name in the library (default: the library's default tool)")
	fs.StringVar(&tool.shape, "shape", "cylindrical", "cutter shape: cylindrical, spherical or circular")
	fs.Float64Var(&tool.radius, "radius", 1, "cutter radius")
	fs.Float64Var(&tool.height, "height", 0, "cutter height (0 uses the shape's default)")
	fs.Float64Var(&tool.requiredDistance, "required-distance", 0, "safety margin kept to the surface")
}

// spec resolves the tool from the library, then applies explicit flags
func (t *toolFlags) spec() (config.ToolSpec, error) {
	spec := config.ToolSpec{Name: "command line", Shape: t.shape, Radius: t.radius}
	if t.library != "" {
		lib, err := config.Load(t.library)
		if err != nil {
			return config.ToolSpec{}, err
		}
		if spec, err = lib.Find(t.name); err != nil {
			return config.ToolSpec{}, err
		}
		if t.flags.Changed("shape") {
			spec.Shape = t.shape
		}
		if t.flags.Changed("radius") {
			spec.Radius, spec.Diameter = t.radius, 0
		}
	} else if t.name != "" {
		return config.ToolSpec{}, fmt.Errorf("--tool %q needs a --tools library", t.name)
	}
	if t.flags.Changed("height") {
		spec.Height = t.height
	}
	if t.flags.Changed("required-distance") {
		spec.RequiredDistance = t.requiredDistance
	}
	return spec, nil
}

func (t *toolFlags) build() (*cutter.Cutter, error) {
	spec, err := t.spec()
	if err != nil {
		return nil, err
	}
	return spec.Build()
}
