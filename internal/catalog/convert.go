package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// greekAbbrevs maps the catalog's 3-letter Bayer prefix to its Greek
// glyph, in alphabet order. The blank prefix stays a single space so
// unnamed stars keep their alignment.
var greekAbbrevs = []struct {
	Abbrev string
	Glyph  string
}{
	{"   ", " "},
	{"Alp", "α"},
	{"Bet", "β"},
	{"Gam", "γ"},
	{"Del", "δ"},
	{"Eps", "ε"},
	{"Zet", "ζ"},
	{"Eta", "η"},
	{"The", "θ"},
	{"Iot", "ι"},
	{"Kap", "κ"},
	{"Lam", "λ"},
	{"Mu ", "μ"},
	{"Nu ", "ν"},
	{"Xi ", "ξ"},
	{"Omi", "ο"},
	{"Pi ", "π"},
	{"Rho", "ρ"},
	{"Sig", "σ"},
	{"Tau", "τ"},
	{"Ups", "υ"},
	{"Phi", "φ"},
	{"Chi", "χ"},
	{"Psi", "ψ"},
	{"Ome", "ω"},
}

var greekByAbbrev = func() map[string]string {
	m := make(map[string]string, len(greekAbbrevs))
	for _, g := range greekAbbrevs {
		m[g.Abbrev] = g.Glyph
	}
	return m
}()

// GreekGlyphs returns the glyph column of the abbreviation table in
// order: a blank, then α through ω.
func GreekGlyphs() []string {
	glyphs := make([]string, len(greekAbbrevs))
	for i, g := range greekAbbrevs {
		glyphs[i] = g.Glyph
	}
	return glyphs
}

// The converter extracts RA and declination as raw digit runs rather
// than decomposing them; the converted loader does the decomposition.
var convertRe = regexp.MustCompile(`^.{7}(.{7}).{61}(\d{6}\.\d)([+-]\d{6}).{12}([+ -][0-9. ]{4})`)

// Convert rewrites an original-format catalog into the compact
// comma-separated layout, keeping only stars with magnitude at or
// below maxMagnitude and substituting Greek glyphs for Bayer
// prefixes. The output is newline-joined with no trailing newline and
// is byte-deterministic for a given input and cutoff. It returns the
// number of stars written.
func Convert(inPath, outPath string, maxMagnitude float64) (int, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("read catalog: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		m := convertRe.FindStringSubmatch(line)
		if m == nil {
			return 0, &ParseError{Line: i + 1, Err: fmt.Errorf("line does not match catalog layout: %q", truncate(line, 40))}
		}

		name := m[1]
		if glyph, ok := greekByAbbrev[name[:3]]; ok {
			name = glyph + name[3:]
		}

		mag, err := strconv.ParseFloat(strings.TrimSpace(m[4]), 64)
		if err != nil {
			return 0, &ParseError{Line: i + 1, Err: fmt.Errorf("magnitude: %w", err)}
		}
		if mag > maxMagnitude {
			continue
		}

		out = append(out, fmt.Sprintf("%s,%s,%s,%.2f", name, m[2], m[3], mag))
	}

	if err := os.WriteFile(outPath, []byte(strings.Join(out, "\n")), 0o644); err != nil {
		return 0, fmt.Errorf("write catalog: %w", err)
	}
	return len(out), nil
}
