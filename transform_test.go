package main

import "testing"

func TestRotateFullCircle(t *testing.T) {
	for start := 0; start < 4; start++ {
		tr := Transform{RotationSteps: start}

		for i := 0; i < 4; i++ {
			tr = tr.Rotate(RotateClockwise)
		}
		if tr.RotationSteps != start {
			t.Errorf("Four clockwise rotations from %d gave %d", start, tr.RotationSteps)
		}

		for i := 0; i < 4; i++ {
			tr = tr.Rotate(RotateCounterClockwise)
		}
		if tr.RotationSteps != start {
			t.Errorf("Four counterclockwise rotations from %d gave %d", start, tr.RotationSteps)
		}
	}
}

func TestRotateInverse(t *testing.T) {
	// Counterclockwise must be the exact inverse of clockwise at every step
	for start := 0; start < 4; start++ {
		tr := Transform{RotationSteps: start}
		if got := tr.Rotate(RotateClockwise).Rotate(RotateCounterClockwise); got != tr {
			t.Errorf("CW then CCW from %d gave %+v", start, got)
		}
		if got := tr.Rotate(RotateCounterClockwise).Rotate(RotateClockwise); got != tr {
			t.Errorf("CCW then CW from %d gave %+v", start, got)
		}
	}
}

func TestFlipToggles(t *testing.T) {
	tests := []struct {
		name string
		axis FlipAxis
	}{
		{"Horizontal", FlipHorizontal},
		{"Vertical", FlipVertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Identity()
			once := tr.Flip(tt.axis)
			twice := once.Flip(tt.axis)

			if once == tr {
				t.Error("One flip should change the transform")
			}
			if twice != tr {
				t.Errorf("Two flips should be a no-op, got %+v", twice)
			}
		})
	}
}

func TestFlipIndependentOfRotation(t *testing.T) {
	// Rotating, flipping, then rotating back must leave only the flip
	tr := Identity().
		Rotate(RotateClockwise).
		Flip(FlipHorizontal).
		Rotate(RotateCounterClockwise)

	if tr.RotationSteps != 0 {
		t.Errorf("Expected rotation back to 0, got %d", tr.RotationSteps)
	}
	if !tr.FlipH {
		t.Error("Expected horizontal flip to remain toggled")
	}
	if tr.FlipV {
		t.Error("Vertical flip should be untouched")
	}
}

func TestIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() should report IsIdentity")
	}
	if Identity().Rotate(RotateClockwise).IsIdentity() {
		t.Error("A rotated transform is not identity")
	}
	if Identity().Flip(FlipVertical).IsIdentity() {
		t.Error("A flipped transform is not identity")
	}
}

func TestTransformString(t *testing.T) {
	tests := []struct {
		name     string
		tr       Transform
		expected string
	}{
		{"Identity", Identity(), "-"},
		{"Rotation only", Transform{RotationSteps: 1}, "R90"},
		{"Half turn", Transform{RotationSteps: 2}, "R180"},
		{"Flip only", Transform{FlipH: true}, "H"},
		{"Both flips", Transform{FlipH: true, FlipV: true}, "H V"},
		{"Everything", Transform{RotationSteps: 3, FlipH: true, FlipV: true}, "R270 H V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
