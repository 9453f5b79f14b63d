package astro

import "math"

// ReferenceMagnitude is the visual magnitude of Sirius, the brightest
// star in the catalog. It anchors the brightness scale at 1.0.
const ReferenceMagnitude = -1.46

// BrightnessForMagnitude maps an apparent visual magnitude to a
// normalized brightness in [0,1]. Magnitudes brighter than the
// reference yield values slightly above 1.
func BrightnessForMagnitude(m float64) float64 {
	return math.Pow(0.01, (m-ReferenceMagnitude)/5)
}

// DisplayIntensity rescales a brightness to the 8-bit display range
// [128,255] used by the renderers, saturating at 255.
func DisplayIntensity(b float64) uint8 {
	v := 128 + math.Floor(b*127)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
