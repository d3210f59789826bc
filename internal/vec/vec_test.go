package vec

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecsAlmostEqual(a, b Vec) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestAddSubScale(t *testing.T) {
	a := New(3, 4)
	b := New(-1, 2)

	if got := a.Add(b); !vecsAlmostEqual(got, New(2, 6)) {
		t.Errorf("Add = %v, want (2, 6)", got)
	}
	if got := a.Sub(b); !vecsAlmostEqual(got, New(4, 2)) {
		t.Errorf("Sub = %v, want (4, 2)", got)
	}
	if got := a.Scale(2.5); !vecsAlmostEqual(got, New(7.5, 10)) {
		t.Errorf("Scale = %v, want (7.5, 10)", got)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
		want float64
	}{
		{"zero", Vec{}, 0},
		{"unit x", New(1, 0), 1},
		{"pythagorean", New(3, 4), 5},
		{"negative components", New(-3, -4), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Length(); !almostEqual(got, tc.want) {
				t.Errorf("Length() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    Vec
	}{
		{"east", 0, New(1, 0)},
		{"south", 90, New(0, 1)},
		{"west", 180, New(-1, 0)},
		{"north", 270, New(0, -1)},
		{"north negative", -90, New(0, -1)},
		{"full turn", 360, New(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromAngle(tc.degrees)
			if !vecsAlmostEqual(got, tc.want) {
				t.Errorf("FromAngle(%v) = %v, want %v", tc.degrees, got, tc.want)
			}
			if !almostEqual(got.Length(), 1) {
				t.Errorf("FromAngle(%v) is not a unit vector: length %v", tc.degrees, got.Length())
			}
		})
	}
}

func TestRotate(t *testing.T) {
	v := New(1, 0)

	if got := v.Rotate(90); !vecsAlmostEqual(got, New(0, 1)) {
		t.Errorf("Rotate(90) = %v, want (0, 1)", got)
	}
	if got := v.Rotate(-90); !vecsAlmostEqual(got, New(0, -1)) {
		t.Errorf("Rotate(-90) = %v, want (0, -1)", got)
	}
	if got := v.Rotate(360); !vecsAlmostEqual(got, v) {
		t.Errorf("Rotate(360) = %v, want %v", got, v)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := New(3, -7)
	for _, deg := range []float64{0, 17, 90, 133, 180, 270, 359, -45} {
		if got := v.Rotate(deg).Length(); !almostEqual(got, v.Length()) {
			t.Errorf("Rotate(%v) changed length: %v, want %v", deg, got, v.Length())
		}
	}
}

func TestOrthogonal(t *testing.T) {
	v := New(2, 5)
	o := v.Orthogonal()

	if !vecsAlmostEqual(o, v.Rotate(90)) {
		t.Errorf("Orthogonal() = %v, want Rotate(90) = %v", o, v.Rotate(90))
	}
	if dot := v.X*o.X + v.Y*o.Y; !almostEqual(dot, 0) {
		t.Errorf("Orthogonal() not perpendicular: dot product %v", dot)
	}
	if !almostEqual(o.Length(), v.Length()) {
		t.Errorf("Orthogonal() changed length: %v, want %v", o.Length(), v.Length())
	}
}

func TestDist(t *testing.T) {
	a := New(1, 1)
	b := New(4, 5)

	if got := a.Dist(b); !almostEqual(got, 5) {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got, want := a.Dist(b), b.Dist(a); !almostEqual(got, want) {
		t.Errorf("Dist not symmetric: %v vs %v", got, want)
	}
}
