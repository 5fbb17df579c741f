// Package fitting is the asset fitting and placement engine: it measures a
// model's true size, rescales it to a designer-specified footprint, reorients
// it, and anchors it against a room surface with guaranteed floor contact.
package fitting

import (
	"errors"
	"fmt"
)

// ScaleMode is the closed set of policies for mapping a native size onto a
// target footprint. Switches over it are exhaustive; an unrecognized value is
// an error, never a silent default.
type ScaleMode int

const (
	// ExactPerAxis maps each native axis independently onto the target
	// footprint per the declared axis remap. Hits the footprint exactly but
	// may distort native proportions.
	ExactPerAxis ScaleMode = iota
	// UniformByWidth scales all three axes by target-width / native-width.
	UniformByWidth
	// UniformByHeight scales all three axes by target-height / native-height.
	UniformByHeight
	// UniformByDepth scales all three axes by target-depth / native-depth.
	UniformByDepth
)

func (m ScaleMode) String() string {
	switch m {
	case ExactPerAxis:
		return "exact"
	case UniformByWidth:
		return "uniform-width"
	case UniformByHeight:
		return "uniform-height"
	case UniformByDepth:
		return "uniform-depth"
	}
	return fmt.Sprintf("ScaleMode(%d)", int(m))
}

// Axis identifies one native model axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// AxisRemapVersion is the declaration version this engine accepts.
const AxisRemapVersion = 1

// AxisRemap declares which native model axis carries room width, height, and
// depth. Externally authored assets disagree on axis conventions, so the
// mapping is an explicit per-asset declaration, never inferred. Required for
// ExactPerAxis; uniform modes without one fall back to the native vertical
// axis as reference.
type AxisRemap struct {
	Version int
	Width   Axis
	Height  Axis
	Depth   Axis
}

// IdentityRemap returns the remap for assets already in room convention:
// width on X, height on Y, depth on Z.
func IdentityRemap() *AxisRemap {
	return &AxisRemap{Version: AxisRemapVersion, Width: AxisX, Height: AxisY, Depth: AxisZ}
}

// Validate checks the declaration version and that the three roles name three
// distinct axes.
func (r *AxisRemap) Validate() error {
	if r.Version != AxisRemapVersion {
		return fmt.Errorf("axis remap version %d, want %d", r.Version, AxisRemapVersion)
	}
	seen := map[Axis]bool{}
	for _, a := range []Axis{r.Width, r.Height, r.Depth} {
		if a < AxisX || a > AxisZ {
			return fmt.Errorf("axis remap names unknown axis %d", int(a))
		}
		if seen[a] {
			return fmt.Errorf("axis remap maps %s twice", a)
		}
		seen[a] = true
	}
	return nil
}

// Surface identifies the room surface a fixture is anchored against.
type Surface int

const (
	// SurfaceFloorCenter leaves the fixture centered on the floor; no wall axis is anchored.
	SurfaceFloorCenter Surface = iota
	SurfaceBackWall
	SurfaceFrontWall
	SurfaceLeftWall
	SurfaceRightWall
)

func (s Surface) String() string {
	switch s {
	case SurfaceFloorCenter:
		return "floor-center"
	case SurfaceBackWall:
		return "back-wall"
	case SurfaceFrontWall:
		return "front-wall"
	case SurfaceLeftWall:
		return "left-wall"
	case SurfaceRightWall:
		return "right-wall"
	}
	return fmt.Sprintf("Surface(%d)", int(s))
}

// AnchorSpec is a room surface plus the clearance to keep between it and the
// fixture's nearest face.
type AnchorSpec struct {
	Surface   Surface
	Clearance float32
}

// Footprint is the target real-world size of a fixture, in inches.
type Footprint struct {
	Width  float32
	Height float32
	Depth  float32
}

// Request is the complete declarative description of how to locate, scale,
// and place one fixture's asset. Built once at plan load; never mutated.
type Request struct {
	Candidates []string
	Footprint  Footprint
	Mode       ScaleMode
	Remap      *AxisRemap
	Yaw        float32 // radians about the vertical axis
	Anchor     AnchorSpec
}

// Validate rejects a request that cannot be fitted. Run at plan load so a bad
// declaration fails before any pipeline starts.
func (r Request) Validate() error {
	if len(r.Candidates) == 0 {
		return errors.New("request has no candidate identifiers")
	}
	if r.Footprint.Width <= 0 || r.Footprint.Height <= 0 || r.Footprint.Depth <= 0 {
		return fmt.Errorf("footprint (%g x %g x %g) must be positive on every axis",
			r.Footprint.Width, r.Footprint.Height, r.Footprint.Depth)
	}
	if r.Anchor.Clearance < 0 {
		return fmt.Errorf("clearance %g is negative", r.Anchor.Clearance)
	}
	switch r.Mode {
	case ExactPerAxis:
		if r.Remap == nil {
			return errors.New("exact scaling requires a declared axis remap")
		}
	case UniformByWidth, UniformByHeight, UniformByDepth:
	default:
		return fmt.Errorf("unknown scaling mode %d", int(r.Mode))
	}
	if r.Remap != nil {
		if err := r.Remap.Validate(); err != nil {
			return err
		}
	}
	switch r.Anchor.Surface {
	case SurfaceFloorCenter, SurfaceBackWall, SurfaceFrontWall, SurfaceLeftWall, SurfaceRightWall:
	default:
		return fmt.Errorf("unknown anchor surface %d", int(r.Anchor.Surface))
	}
	return nil
}
