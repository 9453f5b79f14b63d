// Package game owns a round of the guessing game: the target and
// player attitudes, the sky being matched, scoring, and the control
// inputs that move between them.
package game

// SourceBuiltin selects the embedded bright-star catalog; an empty
// source means a randomly scattered sky, anything else is a path to a
// converted catalog file.
const SourceBuiltin = "builtin"

// Options is the consolidated front-end configuration. One renderer
// consumes it; there are no per-variant feature sets.
type Options struct {
	ShowDistance  bool
	ShowStarNames bool
	CatalogSource string
	StarCount     int
	ShowHelp      bool
	SinglePane    bool
}

// DefaultStarCount resolves a zero star count to the conventional
// default for the source: a dozen random stars, or the 1200 brightest
// catalog entries.
func (o Options) DefaultStarCount() int {
	if o.StarCount > 0 {
		return o.StarCount
	}
	if o.CatalogSource == "" {
		return 12
	}
	return 1200
}
