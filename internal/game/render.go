package game

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/num/quat"

	"github.com/litescript/ls-skymatch/internal/sky"
)

// glyphForIntensity buckets the 8-bit display intensity into four
// ASCII weights for headless output.
func glyphForIntensity(v uint8) rune {
	switch {
	case v >= 224:
		return '@'
	case v >= 192:
		return '*'
	case v >= 160:
		return '+'
	default:
		return '.'
	}
}

// WriteSkyText renders one projection pass of the sky under attitude
// q as a plain-text grid, one row per line. Intended for scripting
// and debugging; the TUI has its own renderer.
func WriteSkyText(w io.Writer, field sky.Sky, fov sky.FoV, q quat.Number, width, height int, withNames bool) error {
	// Screen cells are 8-bit; a wider grid would wrap star columns.
	if width > sky.MaxViewport {
		width = sky.MaxViewport
	}
	if height > sky.MaxViewport {
		height = sky.MaxViewport
	}
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	visible := 0
	for _, p := range fov.ProjectSky(field.WithAttitude(q), width, height) {
		if !p.Visible {
			continue
		}
		visible++
		x, y := int(p.X), int(p.Y)
		grid[y][x] = glyphForIntensity(p.Intensity)
		if withNames {
			nx := x
			for _, r := range p.Name {
				nx++
				if nx >= width {
					break
				}
				grid[y][nx] = r
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("%d stars of %d visible, zoom %.3f\n", visible, field.Len(), fov.Zoom()))

	_, err := io.WriteString(w, b.String())
	return err
}
