package astro

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// EulerAttitude builds the unit quaternion for a rotation given as
// roll, pitch and yaw angles in radians, composed as yaw·pitch·roll.
func EulerAttitude(roll, pitch, yaw float64) quat.Number {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	return quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}
}

// RandomAttitude returns the attitude for three angles drawn uniformly
// from [0, 2π). The distribution is scattered enough for the game; it
// makes no claim of uniformity over the rotation group.
func RandomAttitude() quat.Number {
	return EulerAttitude(
		rand.Float64()*2*math.Pi,
		rand.Float64()*2*math.Pi,
		rand.Float64()*2*math.Pi,
	)
}

// EulerAngles decomposes a unit quaternion into roll, pitch and yaw,
// the inverse of EulerAttitude. Pitch is clamped into [-π/2, π/2].
func EulerAngles(q quat.Number) (roll, pitch, yaw float64) {
	roll = math.Atan2(2*(q.Real*q.Imag+q.Jmag*q.Kmag), 1-2*(q.Imag*q.Imag+q.Jmag*q.Jmag))
	sinp := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	pitch = math.Asin(sinp)
	yaw = math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
	return roll, pitch, yaw
}

// Rotate applies the rotation q to v via q·v·q*.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	pp := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: pp.Imag, Y: pp.Jmag, Z: pp.Kmag}
}

// Distance measures how far apart two attitudes are: the Euclidean
// norm of the Euler angles of target·real⁻¹. This is the game's
// scoring metric, not a geodesic rotation distance.
func Distance(target, real quat.Number) float64 {
	roll, pitch, yaw := EulerAngles(quat.Mul(target, quat.Inv(real)))
	return math.Sqrt(roll*roll + pitch*pitch + yaw*yaw)
}
