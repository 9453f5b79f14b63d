// Package sky holds the star field and its projection onto a screen:
// an immutable collection of star entries under rigid transforms, and
// a gnomonic field-of-view projector.
package sky

import (
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/ls-skymatch/internal/astro"
	"github.com/litescript/ls-skymatch/internal/catalog"
)

// Star is one entry of a sky: a direction vector relative to the
// observer, a normalized brightness, and a display name.
type Star struct {
	Dir        r3.Vec
	Brightness float64
	Name       string
}

// Sky is an ordered, immutable collection of stars. Transforms return
// new skies; the receiver stays valid.
type Sky struct {
	stars []Star
}

// New builds a sky from a slice of stars. The slice is copied.
func New(stars []Star) Sky {
	s := make([]Star, len(stars))
	copy(s, stars)
	return Sky{stars: s}
}

// FromEntries builds a sky from catalog entries.
func FromEntries(entries []catalog.Entry) Sky {
	stars := make([]Star, len(entries))
	for i, e := range entries {
		stars[i] = Star{Dir: e.Dir, Brightness: e.Brightness, Name: e.Name}
	}
	return Sky{stars: stars}
}

// FromCatalog loads a sky from a catalog file. The converted format
// is down-sampled to the nstars brightest entries; the original
// format loads whole.
func FromCatalog(format catalog.Format, path string, nstars int) (Sky, error) {
	var (
		entries []catalog.Entry
		err     error
	)
	if format == catalog.FormatConverted {
		entries, err = catalog.LoadBrightest(path, nstars)
	} else {
		entries, err = catalog.Load(format, path)
	}
	if err != nil {
		return Sky{}, err
	}
	return FromEntries(entries), nil
}

// Random scatters n stars uniformly through a cube of side 10 and
// re-centers the observer at the cube's middle. Brightness is uniform
// in [0,1); names cycle through the 650 prefix-letter combinations.
func Random(n int) Sky {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Dir: r3.Vec{
				X: rand.Float64() * 10,
				Y: rand.Float64() * 10,
				Z: rand.Float64() * 10,
			},
			Brightness: rand.Float64(),
			Name:       syntheticName(i),
		}
	}
	return Sky{stars: stars}.SeenFrom(r3.Vec{X: 5, Y: 5, Z: 5})
}

// syntheticName assigns the i-th name of the deterministic cycle: a
// Greek-letter-or-blank prefix paired with a Latin letter suffix,
// wrapping after 650 combinations.
func syntheticName(i int) string {
	prefixes := catalog.GreekGlyphs()
	i %= 26 * len(prefixes)
	suffix := rune('a' + i/len(prefixes))
	return prefixes[i%len(prefixes)] + string(suffix)
}

// Len returns the number of stars.
func (s Sky) Len() int {
	return len(s.stars)
}

// IsEmpty reports whether the sky has no stars.
func (s Sky) IsEmpty() bool {
	return len(s.stars) == 0
}

// Stars returns a copy of the star entries in order.
func (s Sky) Stars() []Star {
	out := make([]Star, len(s.stars))
	copy(out, s.stars)
	return out
}

// SeenFrom returns the sky as seen by an observer at offset: every
// direction vector translated by -offset. Order, brightness and names
// are unchanged.
func (s Sky) SeenFrom(offset r3.Vec) Sky {
	stars := make([]Star, len(s.stars))
	for i, st := range s.stars {
		stars[i] = Star{Dir: r3.Sub(st.Dir, offset), Brightness: st.Brightness, Name: st.Name}
	}
	return Sky{stars: stars}
}

// WithAttitude returns the sky rotated by the unit quaternion q.
func (s Sky) WithAttitude(q quat.Number) Sky {
	stars := make([]Star, len(s.stars))
	for i, st := range s.stars {
		stars[i] = Star{Dir: astro.Rotate(q, st.Dir), Brightness: st.Brightness, Name: st.Name}
	}
	return Sky{stars: stars}
}
