package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/num/quat"

	"github.com/litescript/ls-skymatch/internal/game"
)

// Screen coordinates are 8-bit; a pane never exceeds this.
const maxPaneDim = 256

// paneCell is one star placed on the pane grid.
type paneCell struct {
	glyph rune
	color lipgloss.Color
}

// starColor maps an 8-bit display intensity onto a grayscale
// terminal color.
func starColor(intensity uint8) lipgloss.Color {
	g := float64(intensity) / 255
	c := colorful.Color{R: g, G: g, B: g}
	return lipgloss.Color(c.Hex())
}

// starGlyph picks a marker by display intensity.
func starGlyph(intensity uint8) rune {
	switch {
	case intensity >= 224:
		return '✦'
	case intensity >= 176:
		return '*'
	default:
		return '·'
	}
}

// renderPane draws the sky under attitude q into a width x height
// cell grid and returns it as styled terminal lines.
func renderPane(snap game.Snapshot, q quat.Number, width, height int) string {
	if width > maxPaneDim {
		width = maxPaneDim
	}
	if height > maxPaneDim {
		height = maxPaneDim
	}
	if width < 1 || height < 1 {
		return ""
	}

	cells := make(map[[2]int]paneCell)
	for _, p := range snap.FoV.ProjectSky(snap.Sky.WithAttitude(q), width, height) {
		if !p.Visible {
			continue
		}
		x, y := int(p.X), int(p.Y)
		cells[[2]int{x, y}] = paneCell{glyph: starGlyph(p.Intensity), color: starColor(p.Intensity)}
		if snap.Options.ShowStarNames {
			nx := x
			for _, r := range p.Name {
				nx++
				if nx >= width {
					break
				}
				if _, taken := cells[[2]int{nx, y}]; taken {
					break
				}
				cells[[2]int{nx, y}] = paneCell{glyph: r, color: starColor(p.Intensity)}
			}
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		run := make([]rune, 0, width)
		flush := func(color lipgloss.Color) {
			if len(run) == 0 {
				return
			}
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(run)))
			run = run[:0]
		}

		var runColor lipgloss.Color
		for x := 0; x < width; x++ {
			cell, ok := cells[[2]int{x, y}]
			if !ok {
				cell = paneCell{glyph: ' '}
			}
			if cell.color != runColor {
				flush(runColor)
				runColor = cell.color
			}
			run = append(run, cell.glyph)
		}
		flush(runColor)
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
