// Package catalog reads bright-star catalogs: the original fixed-width
// astronomical format and the compact comma-separated format produced
// by Convert.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/ls-skymatch/internal/astro"
)

// Format selects the on-disk catalog layout.
type Format int

const (
	// FormatOriginal is the fixed-column astronomical catalog layout.
	FormatOriginal Format = iota
	// FormatConverted is the compact comma-separated layout written by
	// Convert.
	FormatConverted
)

// Entry is one catalog star: a unit direction vector on the celestial
// sphere, a normalized brightness, and a display name.
type Entry struct {
	Dir        r3.Vec
	Brightness float64
	Name       string
}

// minBrightness is the floor below which stars are dropped during
// loading; they would never clear the projector's visibility cut.
const minBrightness = 0.01

// ParseError reports a catalog line that does not match the expected
// layout. A parse failure aborts the whole load: a non-matching line
// means the catalog is corrupt, not skippable.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Both layouts expose the same ten groups: name, RA h/m/s, declination
// sign and d/m/s, magnitude sign and digits.
var (
	originalRe  = regexp.MustCompile(`^.{7}(.{7}).{61}(\d\d)(\d\d)(\d\d\.\d)([+-])(\d\d)(\d\d)(\d\d).{12}([+ -])([0-9. ]{4})`)
	convertedRe = regexp.MustCompile(`^(.{5}),(\d\d)(\d\d)(\d\d\.\d),([+-])(\d\d)(\d\d)(\d\d),(-?)([0-9. ]{4})`)
)

// Load reads a whole catalog file and returns the entries brighter
// than the load floor, in file order. I/O failures and parse failures
// surface as distinct error kinds; use errors.As with *ParseError to
// tell them apart.
func Load(format Format, path string) ([]Entry, error) {
	re := originalRe
	if format == FormatConverted {
		re = convertedRe
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		entry, err := parseLine(line, re)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Err: err}
		}
		if entry.Brightness > minBrightness {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// LoadBrightest reads a converted-format catalog and keeps only the n
// brightest entries. The selection is a stable sort by brightness, so
// repeated loads yield identical results; n larger than the catalog
// keeps everything.
func LoadBrightest(path string, n int) ([]Entry, error) {
	entries, err := Load(FormatConverted, path)
	if err != nil {
		return nil, err
	}
	return Brightest(entries, n), nil
}

// Brightest sorts entries ascending by brightness and returns the
// trailing n, i.e. the n brightest.
func Brightest(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Brightness < sorted[j].Brightness
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[len(sorted)-n:]
}

// parseLine extracts one star from a catalog line. The two layouts
// share the group structure, so a single decoder serves both.
func parseLine(line string, re *regexp.Regexp) (Entry, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, fmt.Errorf("line does not match catalog layout: %q", truncate(line, 40))
	}

	name := m[1]

	rahh, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, fmt.Errorf("RA hours: %w", err)
	}
	ramm, err := strconv.Atoi(m[3])
	if err != nil {
		return Entry{}, fmt.Errorf("RA minutes: %w", err)
	}
	rass, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("RA seconds: %w", err)
	}

	decSign := 1.0
	if m[5] == "-" {
		decSign = -1.0
	}
	dedd, err := strconv.Atoi(m[6])
	if err != nil {
		return Entry{}, fmt.Errorf("declination degrees: %w", err)
	}
	demm, err := strconv.Atoi(m[7])
	if err != nil {
		return Entry{}, fmt.Errorf("declination arcminutes: %w", err)
	}
	dess, err := strconv.Atoi(m[8])
	if err != nil {
		return Entry{}, fmt.Errorf("declination arcseconds: %w", err)
	}

	magSign := 1.0
	if m[9] == "-" {
		magSign = -1.0
	}
	mag, err := strconv.ParseFloat(strings.TrimSpace(m[10]), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("magnitude: %w", err)
	}

	ra := astro.RARadians(rahh, ramm, rass)
	dec := astro.DecRadians(decSign, dedd, demm, dess)

	return Entry{
		Dir:        astro.Direction(ra, dec),
		Brightness: astro.BrightnessForMagnitude(magSign * mag),
		Name:       name,
	}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
