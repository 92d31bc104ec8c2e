package vennplot

import (
	"image/color"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#456f01")
	require.NoError(t, err)
	expect.EQ(t, c, color.NRGBA{R: 0x45, G: 0x6f, B: 0x01, A: 0xff})

	c, err = ParseColor("#FFAC12")
	require.NoError(t, err)
	expect.EQ(t, c, color.NRGBA{R: 0xff, G: 0xac, B: 0x12, A: 0xff})

	// Short form expands per digit.
	c, err = ParseColor("#f0a")
	require.NoError(t, err)
	expect.EQ(t, c, color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff})
}

func TestParseColorLegacyAliases(t *testing.T) {
	// The R alias table wins over the SVG names so legacy invocations keep
	// their exact hues.
	c, err := ParseColor("deepskyblue4")
	require.NoError(t, err)
	expect.EQ(t, c, color.NRGBA{R: 0x00, G: 0x68, B: 0x8B, A: 0xff})

	c, err = ParseColor("dodgerblue1")
	require.NoError(t, err)
	expect.EQ(t, c, color.NRGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0xff})
}

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("Steelblue")
	require.NoError(t, err)
	expect.EQ(t, c, color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff})
}

func TestParseColorBad(t *testing.T) {
	for _, s := range []string{"", "#12345", "#xyzxyz", "notacolor"} {
		_, err := ParseColor(s)
		assert.Errorf(t, err, "color %q", s)
	}
}

func TestWithAlpha(t *testing.T) {
	c := withAlpha(color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, 0.5)
	expect.EQ(t, c.A, uint8(128))
	expect.EQ(t, withAlpha(c, 0).A, uint8(0))
	expect.EQ(t, withAlpha(c, 1).A, uint8(255))
}
