// Package catalog loads the YAML fixture plan: one entry per fixture slot
// with its candidate identifiers, target footprint, scaling mode, axis remap
// declaration, yaw, and anchor. Validation happens here, at load time, so a
// bad declaration (e.g. exact mode with no remap) fails before any pipeline
// starts instead of silently defaulting.
package catalog

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/izgitnew/bathroom-remodel/internal/fitting"
)

// PlanVersion is the plan file version this loader accepts.
const PlanVersion = 1

// Plan is the top-level YAML document.
type Plan struct {
	Version  int          `yaml:"version"`
	Fixtures []FixtureDef `yaml:"fixtures"`
}

// FixtureDef is the YAML definition of one fixture slot.
type FixtureDef struct {
	Name       string       `yaml:"name"`
	Candidates []string     `yaml:"candidates"`
	Footprint  FootprintDef `yaml:"footprint"`
	Mode       string       `yaml:"mode"`
	Remap      *RemapDef    `yaml:"remap,omitempty"`
	YawDegrees float32      `yaml:"yaw_degrees,omitempty"`
	Anchor     AnchorDef    `yaml:"anchor"`
}

// FootprintDef is the target size in inches.
type FootprintDef struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Depth  float32 `yaml:"depth"`
}

// RemapDef is the per-asset axis convention declaration.
type RemapDef struct {
	Version int    `yaml:"version"`
	Width   string `yaml:"width"`
	Height  string `yaml:"height"`
	Depth   string `yaml:"depth"`
}

// AnchorDef names the room surface and clearance.
type AnchorDef struct {
	Surface   string  `yaml:"surface"`
	Clearance float32 `yaml:"clearance,omitempty"`
}

// Fixture is one validated plan entry ready to install.
type Fixture struct {
	Name    string
	Request fitting.Request
}

// Load reads and validates a plan file.
func Load(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates plan YAML. Any invalid entry fails the whole
// plan; a partially valid plan is never installed.
func Parse(data []byte) ([]Fixture, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("fixture plan: %w", err)
	}
	if plan.Version != PlanVersion {
		return nil, fmt.Errorf("fixture plan version %d, want %d", plan.Version, PlanVersion)
	}
	fixtures := make([]Fixture, 0, len(plan.Fixtures))
	for i, def := range plan.Fixtures {
		f, err := def.toFixture()
		if err != nil {
			name := def.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("fixture %s: %w", name, err)
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

func (d FixtureDef) toFixture() (Fixture, error) {
	if d.Name == "" {
		return Fixture{}, fmt.Errorf("missing name")
	}
	mode, err := parseMode(d.Mode)
	if err != nil {
		return Fixture{}, err
	}
	surface, err := parseSurface(d.Anchor.Surface)
	if err != nil {
		return Fixture{}, err
	}
	var remap *fitting.AxisRemap
	if d.Remap != nil {
		remap, err = d.Remap.toRemap()
		if err != nil {
			return Fixture{}, err
		}
	}
	req := fitting.Request{
		Candidates: d.Candidates,
		Footprint: fitting.Footprint{
			Width:  d.Footprint.Width,
			Height: d.Footprint.Height,
			Depth:  d.Footprint.Depth,
		},
		Mode:  mode,
		Remap: remap,
		Yaw:   d.YawDegrees * rl.Deg2rad,
		Anchor: fitting.AnchorSpec{
			Surface:   surface,
			Clearance: d.Anchor.Clearance,
		},
	}
	if err := req.Validate(); err != nil {
		return Fixture{}, err
	}
	return Fixture{Name: d.Name, Request: req}, nil
}

func (d *RemapDef) toRemap() (*fitting.AxisRemap, error) {
	w, err := parseAxis(d.Width)
	if err != nil {
		return nil, err
	}
	h, err := parseAxis(d.Height)
	if err != nil {
		return nil, err
	}
	dp, err := parseAxis(d.Depth)
	if err != nil {
		return nil, err
	}
	return &fitting.AxisRemap{Version: d.Version, Width: w, Height: h, Depth: dp}, nil
}

func parseMode(s string) (fitting.ScaleMode, error) {
	switch s {
	case "exact":
		return fitting.ExactPerAxis, nil
	case "uniform-width":
		return fitting.UniformByWidth, nil
	case "uniform-height":
		return fitting.UniformByHeight, nil
	case "uniform-depth":
		return fitting.UniformByDepth, nil
	}
	return 0, fmt.Errorf("unknown scaling mode %q", s)
}

func parseSurface(s string) (fitting.Surface, error) {
	switch s {
	case "floor-center":
		return fitting.SurfaceFloorCenter, nil
	case "back-wall":
		return fitting.SurfaceBackWall, nil
	case "front-wall":
		return fitting.SurfaceFrontWall, nil
	case "left-wall":
		return fitting.SurfaceLeftWall, nil
	case "right-wall":
		return fitting.SurfaceRightWall, nil
	}
	return 0, fmt.Errorf("unknown anchor surface %q", s)
}

func parseAxis(s string) (fitting.Axis, error) {
	switch s {
	case "x":
		return fitting.AxisX, nil
	case "y":
		return fitting.AxisY, nil
	case "z":
		return fitting.AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}
