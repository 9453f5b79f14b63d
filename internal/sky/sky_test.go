package sky

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/ls-skymatch/internal/astro"
	"github.com/litescript/ls-skymatch/internal/catalog"
)

func testStars() []Star {
	return []Star{
		{Dir: r3.Vec{X: 0, Y: 1, Z: 2}, Brightness: 0.5, Name: "a"},
		{Dir: r3.Vec{X: 3, Y: 4, Z: 5}, Brightness: 0.25, Name: "b"},
	}
}

func vecDist(a, b r3.Vec) float64 {
	d := r3.Sub(a, b)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

func TestSeenFrom(t *testing.T) {
	s := New(testStars())
	moved := s.SeenFrom(r3.Vec{X: -1, Y: -2, Z: -3})

	if moved.Len() != 2 {
		t.Fatalf("Len = %d, want 2", moved.Len())
	}

	got := moved.Stars()
	want := []Star{
		{Dir: r3.Vec{X: 1, Y: 3, Z: 5}, Brightness: 0.5, Name: "a"},
		{Dir: r3.Vec{X: 4, Y: 6, Z: 8}, Brightness: 0.25, Name: "b"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("star %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// The original sky is untouched.
	if s.Stars()[0].Dir != testStars()[0].Dir {
		t.Error("SeenFrom mutated the receiver")
	}
}

func TestWithAttitude_QuarterTurn(t *testing.T) {
	s := New(testStars()).SeenFrom(r3.Vec{X: -1, Y: -2, Z: -3})
	rotated := s.WithAttitude(astro.EulerAttitude(0, 0, math.Pi/2))

	got := rotated.Stars()
	want := []r3.Vec{
		{X: -3, Y: 1, Z: 5},
		{X: -6, Y: 4, Z: 8},
	}
	for i := range want {
		if vecDist(got[i].Dir, want[i]) > 1e-5 {
			t.Errorf("star %d dir = %v, want %v", i, got[i].Dir, want[i])
		}
		if got[i].Brightness != s.Stars()[i].Brightness || got[i].Name != s.Stars()[i].Name {
			t.Errorf("star %d brightness/name changed under rotation", i)
		}
	}
}

func TestWithAttitude_InverseRoundTrip(t *testing.T) {
	s := New(testStars())
	q := astro.EulerAttitude(0.7, -1.2, 2.9)

	back := s.WithAttitude(q).WithAttitude(quat.Inv(q))
	for i, st := range back.Stars() {
		if vecDist(st.Dir, s.Stars()[i].Dir) > 1e-9 {
			t.Errorf("star %d did not round-trip: %v vs %v", i, st.Dir, s.Stars()[i].Dir)
		}
	}
}

func TestRandom(t *testing.T) {
	s := Random(100)
	if s.Len() != 100 {
		t.Fatalf("Len = %d, want 100", s.Len())
	}

	for i, st := range s.Stars() {
		// After re-centering, every coordinate lies in [-5, 5).
		for _, c := range []float64{st.Dir.X, st.Dir.Y, st.Dir.Z} {
			if c < -5 || c >= 5 {
				t.Errorf("star %d coordinate %v outside [-5, 5)", i, c)
			}
		}
		if st.Brightness < 0 || st.Brightness >= 1 {
			t.Errorf("star %d brightness %v outside [0, 1)", i, st.Brightness)
		}
		if st.Name == "" {
			t.Errorf("star %d has no name", i)
		}
	}
}

func TestRandom_Empty(t *testing.T) {
	s := Random(0)
	if !s.IsEmpty() {
		t.Error("Random(0) is not empty")
	}
	if got := NewFoV(1, 1).ProjectSky(s, 60, 60); len(got) != 0 {
		t.Errorf("projecting an empty sky yields %d entries, want 0", len(got))
	}
}

func TestSyntheticName_Cycle(t *testing.T) {
	// First name is a blank prefix with suffix 'a'; the 26th starts
	// the greek prefixes; the cycle wraps after 650.
	if got := syntheticName(0); got != " a" {
		t.Errorf("syntheticName(0) = %q, want %q", got, " a")
	}
	if got := syntheticName(1); got != "αa" {
		t.Errorf("syntheticName(1) = %q, want %q", got, "αa")
	}
	if got := syntheticName(25); got != "ωa" {
		t.Errorf("syntheticName(25) = %q, want %q", got, "ωa")
	}
	if got := syntheticName(26); got != " b" {
		t.Errorf("syntheticName(26) = %q, want %q", got, " b")
	}
	if got, first := syntheticName(650), syntheticName(0); got != first {
		t.Errorf("cycle does not wrap: %q vs %q", got, first)
	}
	if !strings.HasSuffix(syntheticName(649), "z") {
		t.Errorf("syntheticName(649) = %q, want a z suffix", syntheticName(649))
	}
}

func TestFromEntries(t *testing.T) {
	entries := []catalog.Entry{
		{Dir: r3.Vec{X: 1}, Brightness: 0.9, Name: "α Ori"},
	}
	s := FromEntries(entries)
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if st := s.Stars()[0]; st.Name != "α Ori" || st.Brightness != 0.9 {
		t.Errorf("unexpected star %+v", st)
	}
}

func TestFromCatalog_MissingFile(t *testing.T) {
	if _, err := FromCatalog(catalog.FormatConverted, "no/such/file.csv", 10); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
