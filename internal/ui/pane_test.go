package ui

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/ls-skymatch/internal/game"
	"github.com/litescript/ls-skymatch/internal/sky"
)

var identity = quat.Number{Real: 1}

func snapshotFor(stars []sky.Star, opts game.Options) game.Snapshot {
	return game.Snapshot{
		Sky:     sky.New(stars),
		FoV:     sky.NewFoV(1, 1),
		Options: opts,
	}
}

func TestRenderPane_StarOnAxis(t *testing.T) {
	snap := snapshotFor([]sky.Star{
		{Dir: r3.Vec{Z: 1}, Brightness: 1.0, Name: "x"},
	}, game.Options{})

	out := renderPane(snap, identity, 20, 20)

	rows := strings.Split(out, "\n")
	if len(rows) != 20 {
		t.Fatalf("got %d rows, want 20", len(rows))
	}
	// On-axis projects to the pane center.
	row := []rune(rows[10])
	if len(row) <= 10 || row[10] != '✦' {
		t.Errorf("row 10 = %q, want '✦' at column 10", rows[10])
	}
	if strings.ContainsRune(out, 'x') {
		t.Error("name rendered with ShowStarNames off")
	}
}

func TestRenderPane_Names(t *testing.T) {
	snap := snapshotFor([]sky.Star{
		{Dir: r3.Vec{Z: 1}, Brightness: 1.0, Name: "α Ori"},
	}, game.Options{ShowStarNames: true})

	out := renderPane(snap, identity, 20, 20)

	if !strings.Contains(out, "✦α Ori") {
		t.Errorf("output missing inline name, got rows:\n%s", out)
	}
}

func TestRenderPane_NameStopsAtOccupiedCell(t *testing.T) {
	// Two stars on the same row; the first star's name must not
	// overwrite the second star's glyph.
	snap := snapshotFor([]sky.Star{
		{Dir: r3.Vec{Z: 1}, Brightness: 1.0, Name: "longname"},
		{Dir: r3.Vec{X: 0.2, Z: 1}, Brightness: 1.0, Name: "b"},
	}, game.Options{ShowStarNames: true})

	out := renderPane(snap, identity, 20, 20)

	if strings.Count(out, "✦") != 2 {
		t.Errorf("expected both star glyphs to survive, got:\n%s", out)
	}
}

func TestRenderPane_EmptyAndClamped(t *testing.T) {
	snap := snapshotFor(nil, game.Options{})

	if got := renderPane(snap, identity, 0, 10); got != "" {
		t.Errorf("zero width: got %q, want empty", got)
	}

	out := renderPane(snap, identity, 1000, 2)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if len([]rune(rows[0])) != maxPaneDim {
		t.Errorf("row width = %d, want clamped to %d", len([]rune(rows[0])), maxPaneDim)
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		intensity uint8
		want      rune
	}{
		{255, '✦'},
		{224, '✦'},
		{200, '*'},
		{176, '*'},
		{175, '·'},
		{128, '·'},
	}
	for _, tt := range tests {
		if got := starGlyph(tt.intensity); got != tt.want {
			t.Errorf("starGlyph(%d) = %q, want %q", tt.intensity, got, tt.want)
		}
	}
}

func TestStarColor_Grayscale(t *testing.T) {
	if got := starColor(255); got != "#ffffff" {
		t.Errorf("starColor(255) = %q, want #ffffff", got)
	}
	if got := starColor(0); got != "#000000" {
		t.Errorf("starColor(0) = %q, want #000000", got)
	}
}
