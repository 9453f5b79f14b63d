package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/ls-skymatch/internal/sky"
)

func TestWriteSkyText(t *testing.T) {
	field := sky.New([]sky.Star{
		{Dir: r3.Vec{X: 0, Y: 0, Z: 1}, Brightness: 0.9, Name: "center"},
	})

	var b strings.Builder
	identity := quat.Number{Real: 1}
	err := WriteSkyText(&b, field, sky.NewFoV(1, 1), identity, 20, 10, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	// Ten grid rows plus the footer.
	require.Len(t, lines, 11)

	// The on-axis star lands mid-screen with the brightest glyph.
	assert.Equal(t, '@', rune(lines[5][10]))
	assert.Contains(t, lines[10], "1 stars of 1 visible")
}

func TestWriteSkyText_Names(t *testing.T) {
	field := sky.New([]sky.Star{
		{Dir: r3.Vec{X: 0, Y: 0, Z: 1}, Brightness: 0.9, Name: "x"},
	})

	var b strings.Builder
	err := WriteSkyText(&b, field, sky.NewFoV(1, 1), quat.Number{Real: 1}, 20, 10, true)
	require.NoError(t, err)
	assert.Contains(t, b.String(), "@x")
}

func TestWriteSkyText_WideGridClamped(t *testing.T) {
	field := sky.New([]sky.Star{
		{Dir: r3.Vec{X: 0.8, Y: 0, Z: 1}, Brightness: 0.9, Name: "edge"},
	})

	var b strings.Builder
	err := WriteSkyText(&b, field, sky.NewFoV(1, 1), quat.Number{Real: 1}, 300, 10, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 11)

	// The grid clamps to the 8-bit viewport, so the star lands at
	// column 230 of a 256-wide row rather than wrapping around.
	row := []rune(lines[5])
	require.Len(t, row, 231)
	assert.Equal(t, '@', row[230])
	for _, line := range lines[:10] {
		assert.LessOrEqual(t, len([]rune(line)), sky.MaxViewport)
	}
}

func TestGlyphForIntensity(t *testing.T) {
	assert.Equal(t, '.', glyphForIntensity(128))
	assert.Equal(t, '+', glyphForIntensity(160))
	assert.Equal(t, '*', glyphForIntensity(200))
	assert.Equal(t, '@', glyphForIntensity(255))
}
