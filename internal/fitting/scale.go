package fitting

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// unitExtent substitutes for a degenerate (zero) native extent used as a
// scaling denominator, so no division can push a non-finite value into the
// scene.
const unitExtent float32 = 1

func axisValue(v rl.Vector3, a Axis) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return 0
}

func setAxis(v *rl.Vector3, a Axis, val float32) {
	switch a {
	case AxisX:
		v.X = val
	case AxisY:
		v.Y = val
	case AxisZ:
		v.Z = val
	}
}

func extentOn(size rl.Vector3, a Axis) float32 {
	e := axisValue(size, a)
	if e <= 0 {
		return unitExtent
	}
	return e
}

// ScaleFor converts a native bounding size into a scale vector per the
// request's scaling mode. Exact mode reproduces the footprint on every axis
// and may distort native proportions; uniform modes apply one reference-axis
// ratio to all three axes, preserving proportions, with the two non-reference
// target dimensions advisory only. A uniform mode with no declared remap
// references the native vertical axis.
func ScaleFor(native Bounds, req Request) (rl.Vector3, error) {
	size := native.Size()
	var s rl.Vector3
	switch req.Mode {
	case ExactPerAxis:
		remap := req.Remap
		if remap == nil {
			return rl.Vector3{}, fmt.Errorf("exact scaling requires a declared axis remap")
		}
		setAxis(&s, remap.Width, req.Footprint.Width/extentOn(size, remap.Width))
		setAxis(&s, remap.Height, req.Footprint.Height/extentOn(size, remap.Height))
		setAxis(&s, remap.Depth, req.Footprint.Depth/extentOn(size, remap.Depth))
	case UniformByWidth, UniformByHeight, UniformByDepth:
		ref := AxisY
		var target float32
		switch req.Mode {
		case UniformByWidth:
			target = req.Footprint.Width
			if req.Remap != nil {
				ref = req.Remap.Width
			}
		case UniformByHeight:
			target = req.Footprint.Height
			if req.Remap != nil {
				ref = req.Remap.Height
			}
		case UniformByDepth:
			target = req.Footprint.Depth
			if req.Remap != nil {
				ref = req.Remap.Depth
			}
		}
		r := target / extentOn(size, ref)
		s = rl.NewVector3(r, r, r)
	default:
		return rl.Vector3{}, fmt.Errorf("unknown scaling mode %d", int(req.Mode))
	}
	if err := checkScale(s); err != nil {
		return rl.Vector3{}, err
	}
	return s, nil
}

// checkScale rejects any scale component that is not strictly positive and
// finite. With validated requests and the degenerate-extent guard this cannot
// trip; tripping means a programming error, not a recoverable condition.
func checkScale(s rl.Vector3) error {
	for _, c := range []float32{s.X, s.Y, s.Z} {
		if c <= 0 || math32.IsNaN(c) || math32.IsInf(c, 0) {
			return fmt.Errorf("scale (%g, %g, %g) is not strictly positive and finite", s.X, s.Y, s.Z)
		}
	}
	return nil
}
