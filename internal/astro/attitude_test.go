package astro

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func vecDist(a, b r3.Vec) float64 {
	d := r3.Sub(a, b)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

func TestRotate_QuarterTurnAboutZ(t *testing.T) {
	q := EulerAttitude(0, 0, math.Pi/2)

	tests := []struct {
		name string
		in   r3.Vec
		want r3.Vec
	}{
		{name: "x axis to y axis", in: r3.Vec{X: 1}, want: r3.Vec{Y: 1}},
		{name: "off-axis a", in: r3.Vec{X: 1, Y: 3, Z: 5}, want: r3.Vec{X: -3, Y: 1, Z: 5}},
		{name: "off-axis b", in: r3.Vec{X: 4, Y: 6, Z: 8}, want: r3.Vec{X: -6, Y: 4, Z: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(q, tt.in)
			if vecDist(got, tt.want) > 1e-5 {
				t.Errorf("Rotate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotate_InverseRoundTrip(t *testing.T) {
	q := EulerAttitude(0.3, -1.1, 2.4)
	v := r3.Vec{X: 0.2, Y: -3.5, Z: 1.7}

	back := Rotate(quat.Inv(q), Rotate(q, v))
	if vecDist(back, v) > 1e-9 {
		t.Errorf("rotate then inverse = %v, want %v", back, v)
	}
}

func TestEulerAttitude_Unit(t *testing.T) {
	for _, angles := range [][3]float64{
		{0, 0, 0},
		{1, 2, 3},
		{-0.5, math.Pi, 0.25},
	} {
		q := EulerAttitude(angles[0], angles[1], angles[2])
		if math.Abs(quat.Abs(q)-1) > 1e-12 {
			t.Errorf("EulerAttitude(%v) has norm %v, want 1", angles, quat.Abs(q))
		}
	}
}

func TestEulerAngles_RoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		roll, pitch, yaw float64
	}{
		{name: "identity", roll: 0, pitch: 0, yaw: 0},
		{name: "single axis roll", roll: 0.7},
		{name: "single axis pitch", pitch: -0.9},
		{name: "single axis yaw", yaw: 1.3},
		{name: "combined", roll: 0.4, pitch: -0.8, yaw: 2.1},
		{name: "near gimbal", roll: 0.1, pitch: 1.5, yaw: -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := EulerAttitude(tt.roll, tt.pitch, tt.yaw)
			r, p, y := EulerAngles(q)
			if math.Abs(r-tt.roll) > 1e-9 || math.Abs(p-tt.pitch) > 1e-9 || math.Abs(y-tt.yaw) > 1e-9 {
				t.Errorf("EulerAngles = (%v, %v, %v), want (%v, %v, %v)",
					r, p, y, tt.roll, tt.pitch, tt.yaw)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	// Identical attitudes are at distance zero.
	q := EulerAttitude(0.2, 0.4, 0.6)
	if d := Distance(q, q); d > 1e-9 {
		t.Errorf("Distance(q, q) = %v, want 0", d)
	}

	// A single-axis offset measures as that angle.
	target := EulerAttitude(0, 0, 0.5)
	real := EulerAttitude(0, 0, 0)
	if d := Distance(target, real); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("Distance = %v, want 0.5", d)
	}
}

func TestRandomAttitude_UnitAndIndependent(t *testing.T) {
	q1 := RandomAttitude()
	q2 := RandomAttitude()

	if math.Abs(quat.Abs(q1)-1) > 1e-9 {
		t.Errorf("RandomAttitude norm = %v, want 1", quat.Abs(q1))
	}
	if q1 == q2 {
		t.Error("two random attitudes are identical")
	}
}
