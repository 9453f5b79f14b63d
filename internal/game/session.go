package game

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/litescript/ls-skymatch/internal/astro"
	"github.com/litescript/ls-skymatch/internal/catalog"
	"github.com/litescript/ls-skymatch/internal/sky"
)

const (
	defaultStep = 0.5

	// stepFactor is the fourth root of 2: four step presses double or
	// halve the rotation increment.
	stepFactor = 1.1892

	// zoomFactor is applied to the FoV per zoom press.
	zoomFactor = 1.0905

	minStars = 8
)

// Session is one sitting of the game. It owns the sky, the hidden
// target attitude, the player's attitude, and the scoring. The UI
// layer holds the session and renders from read-only snapshots.
type Session struct {
	field   sky.Sky
	fov     sky.FoV
	target  quat.Number
	real    quat.Number
	step    float64
	opts    Options
	scoring Scoring

	// The non-random source the catalog toggle returns to.
	catalogSource string
}

// NewSession starts a session with a fresh target attitude and a sky
// built from the options. A catalog source that fails to load is
// reported and the session falls back to a random sky.
func NewSession(opts Options, fov sky.FoV) (*Session, error) {
	source := opts.CatalogSource
	if source == "" {
		source = SourceBuiltin
	}

	s := &Session{
		fov:           fov,
		target:        astro.RandomAttitude(),
		real:          astro.RandomAttitude(),
		step:          defaultStep,
		opts:          opts,
		catalogSource: source,
	}
	s.opts.StarCount = opts.DefaultStarCount()

	err := s.rebuildSky()
	if err != nil {
		s.opts.CatalogSource = ""
		s.opts.StarCount = 12
		_ = s.rebuildSky()
	}
	return s, err
}

// rebuildSky replaces the sky wholesale from the current options,
// applying the target attitude so a fresh round starts scrambled.
func (s *Session) rebuildSky() error {
	base, err := s.buildBase()
	if err != nil {
		return err
	}
	s.field = base.WithAttitude(s.target)
	return nil
}

func (s *Session) buildBase() (sky.Sky, error) {
	switch s.opts.CatalogSource {
	case "":
		return sky.Random(s.opts.StarCount), nil
	case SourceBuiltin:
		return sky.FromEntries(catalog.Builtin(s.opts.StarCount)), nil
	default:
		return sky.FromCatalog(catalog.FormatConverted, s.opts.CatalogSource, s.opts.StarCount)
	}
}

// Rotate applies one control input: a single-axis (or combined) delta
// in units of the current step, premultiplied onto the player
// attitude. Each call counts as a move.
func (s *Session) Rotate(roll, pitch, yaw float64) {
	delta := astro.EulerAttitude(roll*s.step, pitch*s.step, yaw*s.step)
	s.real = quat.Mul(delta, s.real)
	s.scoring.AddMove()
}

// AdjustStep scales the rotation increment up or down.
func (s *Session) AdjustStep(up bool) {
	if up {
		s.step *= stepFactor
	} else {
		s.step /= stepFactor
	}
}

// AdjustZoom widens (out) or narrows the field of view.
func (s *Session) AdjustZoom(out bool) {
	scale := zoomFactor
	if !out {
		scale = 1 / zoomFactor
	}
	s.fov = s.fov.Rescale(scale)
}

// AdjustStarCount grows or shrinks the sky by a quarter, floored at
// eight stars, and rebuilds it.
func (s *Session) AdjustStarCount(up bool) error {
	mult := 0.8
	if up {
		mult = 1.25
	}
	n := int(float64(s.opts.StarCount) * mult)
	if n < minStars {
		n = minStars
	}
	s.opts.StarCount = n
	return s.rebuildSky()
}

// ToggleCatalog switches between the random sky and the configured
// catalog source, rebuilding the sky.
func (s *Session) ToggleCatalog() error {
	if s.opts.CatalogSource == "" {
		s.opts.CatalogSource = s.catalogSource
	} else {
		s.opts.CatalogSource = ""
	}
	s.opts.StarCount = Options{CatalogSource: s.opts.CatalogSource}.DefaultStarCount()
	return s.rebuildSky()
}

// ToggleDistance flips the distance readout.
func (s *Session) ToggleDistance() { s.opts.ShowDistance = !s.opts.ShowDistance }

// ToggleStarNames flips name labels.
func (s *Session) ToggleStarNames() { s.opts.ShowStarNames = !s.opts.ShowStarNames }

// ToggleHelp flips the help overlay.
func (s *Session) ToggleHelp() { s.opts.ShowHelp = !s.opts.ShowHelp }

// ToggleSinglePane flips between the split view and the target-only
// view.
func (s *Session) ToggleSinglePane() { s.opts.SinglePane = !s.opts.SinglePane }

// Distance returns the scoring metric between the target and player
// attitudes.
func (s *Session) Distance() float64 {
	return astro.Distance(s.target, s.real)
}

// Restart banks the round at its closing distance, then starts a new
// one: fresh target, fresh sky, fresh scrambled player attitude, step
// back to its default.
func (s *Session) Restart() error {
	s.scoring.ScoreAndReset(s.Distance())
	s.target = astro.RandomAttitude()
	s.real = astro.RandomAttitude()
	s.step = defaultStep
	return s.rebuildSky()
}

// Snapshot is a read-only view of the session for rendering. The sky
// value is immutable, so sharing it is safe.
type Snapshot struct {
	Sky      sky.Sky
	FoV      sky.FoV
	Target   quat.Number
	Real     quat.Number
	Step     float64
	Options  Options
	Moves    int
	Games    int
	Score    float64
	Distance float64
}

// Snapshot captures the current state for the renderer.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Sky:      s.field,
		FoV:      s.fov,
		Target:   s.target,
		Real:     s.real,
		Step:     s.step,
		Options:  s.opts,
		Moves:    s.scoring.Moves(),
		Games:    s.scoring.Games(),
		Score:    s.scoring.Score(),
		Distance: s.Distance(),
	}
}

// Options returns the current option set.
func (s *Session) Options() Options {
	return s.opts
}

// Step returns the current rotation increment.
func (s *Session) Step() float64 {
	return s.step
}

// Zoom returns the current horizontal half-FoV.
func (s *Session) Zoom() float64 {
	return s.fov.Zoom()
}

// QuatString formats an attitude for the status line.
func QuatString(q quat.Number) string {
	clean := func(v float64) float64 {
		// Avoid -0.000 flicker in the readout.
		if math.Abs(v) < 5e-4 {
			return 0
		}
		return v
	}
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)",
		clean(q.Real), clean(q.Imag), clean(q.Jmag), clean(q.Kmag))
}
