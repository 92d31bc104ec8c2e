package vennplot

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"golang.org/x/image/colornames"
)

// rColorAliases remaps the R color names that older plotting scripts in the
// comparison pipeline used, so existing invocations keep producing the same
// hues.  The table is fixed; anything else goes through the SVG color names.
var rColorAliases = map[string]string{
	"deepskyblue4": "#00688B",
	"deepskyblue3": "#009ACD",
	"deepskyblue2": "#00B2EE",
	"deepskyblue1": "#00BFFF",
	"deepskyblue":  "#00BFFF",
	"skyblue4":     "#4A708B",
	"skyblue3":     "#6CA6CD",
	"skyblue2":     "#7EC0EE",
	"skyblue1":     "#87CEFF",
	"steelblue4":   "#36648B",
	"steelblue3":   "#4F94CD",
	"steelblue2":   "#5CACEE",
	"steelblue1":   "#63B8FF",
	"dodgerblue4":  "#104E8B",
	"dodgerblue3":  "#1874CD",
	"dodgerblue2":  "#1C86EE",
	"dodgerblue1":  "#1E90FF",
}

// ParseColor resolves a user-supplied color: "#rgb" or "#rrggbb" hex, a
// legacy R color alias, or an SVG color name (case-insensitive).
func ParseColor(s string) (color.NRGBA, error) {
	if hex, ok := rColorAliases[s]; ok {
		s = hex
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}
	return color.NRGBA{}, errors.E("unrecognized color:", s)
}

func parseHex(s string) (color.NRGBA, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, errors.E("malformed hex color:", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.E(err, "malformed hex color:", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(alpha*255 + 0.5)
	return c
}
