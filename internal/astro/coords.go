// Package astro provides the star-field math: celestial coordinate
// conversion, brightness scaling, and quaternion attitude handling.
package astro

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RARadians converts a right ascension given as hours, minutes and
// seconds into radians.
func RARadians(hh, mm int, ss float64) float64 {
	deg := float64(hh)*15 + float64(mm)/4 + ss/240
	return degToRad(deg)
}

// DecRadians converts a declination given as degrees, arcminutes and
// arcseconds into signed radians. sign is +1 or -1.
func DecRadians(sign float64, dd, mm, ss int) float64 {
	deg := float64(dd) + float64(mm)/60 + float64(ss)/3600
	return sign * degToRad(deg)
}

// Direction maps equatorial coordinates in radians onto the unit
// sphere, with right ascension as azimuth and declination as
// elevation.
func Direction(ra, dec float64) r3.Vec {
	return r3.Vec{
		X: math.Cos(ra) * math.Cos(dec),
		Y: math.Sin(ra) * math.Cos(dec),
		Z: math.Sin(dec),
	}
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
