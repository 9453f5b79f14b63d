package sky

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/ls-skymatch/internal/astro"
)

// FoV is a field of view given as two half-angle scale factors, the
// divisors of the gnomonic projection. Smaller values mean a narrower
// view, i.e. more zoomed in.
type FoV struct {
	halfX float64
	halfY float64
}

// NewFoV builds a field of view from its two half-FoV scale factors.
// Both must be positive.
func NewFoV(halfX, halfY float64) FoV {
	return FoV{halfX: halfX, halfY: halfY}
}

// WithAngles builds a field of view from full view angles in radians.
func WithAngles(xRad, yRad float64) FoV {
	return FoV{halfX: math.Tan(xRad) / 2, halfY: math.Tan(yRad) / 2}
}

// Rescale returns the field of view with both factors multiplied by
// scale. Factors above 1 widen the view (zoom out), below 1 narrow it.
func (f FoV) Rescale(scale float64) FoV {
	return FoV{halfX: f.halfX * scale, halfY: f.halfY * scale}
}

// Zoom returns the horizontal half-FoV factor; smaller is more zoomed.
func (f FoV) Zoom() float64 {
	return f.halfX
}

// visibilityThreshold ties star visibility to the zoom level: zooming
// in reveals fainter stars. Kept exactly as the game's balancing
// mechanic.
var visibilityThreshold = math.Pow(0.01, 0.8)

// CanBeSeen reports whether a star of the given brightness clears the
// zoom-scaled visibility cut.
func (f FoV) CanBeSeen(brightness float64) bool {
	return brightness/f.halfX > visibilityThreshold
}

// Project maps a direction onto the focal plane: each axis divided by
// the forward coordinate and the half-FoV factor. The result is ±Inf
// or NaN when Z is zero; ToScreen culls those.
func (f FoV) Project(dir r3.Vec) (fx, fy float64) {
	return dir.X / dir.Z / f.halfX, dir.Y / dir.Z / f.halfY
}

// ScreenPoint is an integer screen cell. The viewport is capped at
// 256x256.
type ScreenPoint struct {
	X uint8
	Y uint8
}

// MaxViewport is the largest viewport extent a screen cell can
// address.
const MaxViewport = 256

// ToScreen maps a direction to a screen cell within a maxX by maxY
// viewport. Dimensions beyond MaxViewport are clamped so cells never
// wrap. Stars behind the observer (Z <= 0) and stars whose rounded
// focal point falls outside the viewport are not visible.
func (f FoV) ToScreen(dir r3.Vec, maxX, maxY int) (ScreenPoint, bool) {
	if maxX > MaxViewport {
		maxX = MaxViewport
	}
	if maxY > MaxViewport {
		maxY = MaxViewport
	}
	if dir.Z <= 0 {
		return ScreenPoint{}, false
	}
	fx, fy := f.Project(dir)
	x := math.Round((fx + 1) / 2 * float64(maxX))
	y := math.Round((fy + 1) / 2 * float64(maxY))
	if x < 0 || x >= float64(maxX) || y < 0 || y >= float64(maxY) {
		return ScreenPoint{}, false
	}
	return ScreenPoint{X: uint8(x), Y: uint8(y)}, true
}

// Projection is the per-star outcome of a screen pass: either a
// visible cell with its display intensity and name, or hidden.
type Projection struct {
	Visible   bool
	X         uint8
	Y         uint8
	Intensity uint8
	Name      string
}

// ProjectSky maps every star of the sky onto the viewport. The result
// is index-aligned with the sky; culled stars are marked hidden
// rather than omitted.
func (f FoV) ProjectSky(s Sky, maxX, maxY int) []Projection {
	out := make([]Projection, len(s.stars))
	for i, st := range s.stars {
		sp, ok := f.ToScreen(st.Dir, maxX, maxY)
		if !ok || !f.CanBeSeen(st.Brightness) {
			continue
		}
		out[i] = Projection{
			Visible:   true,
			X:         sp.X,
			Y:         sp.Y,
			Intensity: astro.DisplayIntensity(st.Brightness),
			Name:      st.Name,
		}
	}
	return out
}
