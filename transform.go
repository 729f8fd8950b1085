package main

// RotationDirection represents a 90 degree rotation request
type RotationDirection int

const (
	RotateClockwise RotationDirection = iota
	RotateCounterClockwise
)

// FlipAxis represents a mirror request
type FlipAxis int

const (
	FlipHorizontal FlipAxis = iota
	FlipVertical
)

// Transform describes the rotation and flips currently applied to the
// displayed image, independent of the underlying pixels. It is a value
// type: every adjustment returns a new Transform.
//
// RotationSteps counts 90 degree clockwise steps and is always kept in
// 0..3. Flips are idempotent toggles and always refer to the image's own
// unrotated frame; when rendering they are applied before the rotation.
type Transform struct {
	RotationSteps int
	FlipH         bool
	FlipV         bool
}

// Identity returns the transform that leaves an image untouched.
func Identity() Transform {
	return Transform{}
}

// IsIdentity reports whether applying t would change nothing.
func (t Transform) IsIdentity() bool {
	return t.RotationSteps == 0 && !t.FlipH && !t.FlipV
}

// Rotate adds one 90 degree step in the given direction.
func (t Transform) Rotate(dir RotationDirection) Transform {
	switch dir {
	case RotateClockwise:
		t.RotationSteps = (t.RotationSteps + 1) % 4
	case RotateCounterClockwise:
		t.RotationSteps = (t.RotationSteps + 3) % 4
	}
	return t
}

// Flip toggles the mirror state for the given axis.
func (t Transform) Flip(axis FlipAxis) Transform {
	switch axis {
	case FlipHorizontal:
		t.FlipH = !t.FlipH
	case FlipVertical:
		t.FlipV = !t.FlipV
	}
	return t
}

// String renders the transform in a compact form for the info display,
// e.g. "R90 H" or "-" for identity.
func (t Transform) String() string {
	if t.IsIdentity() {
		return "-"
	}

	s := ""
	switch t.RotationSteps {
	case 1:
		s = "R90"
	case 2:
		s = "R180"
	case 3:
		s = "R270"
	}
	if t.FlipH {
		if s != "" {
			s += " "
		}
		s += "H"
	}
	if t.FlipV {
		if s != "" {
			s += " "
		}
		s += "V"
	}
	return s
}
