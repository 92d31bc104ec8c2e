package vennplot

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Opts contains the cosmetic rendering options.  Every field is
// presentation-only; none of them affects the counted values.
type Opts struct {
	// Color1, Color2, Color3 are the circle fill colors, one per caller in
	// selection order.  Hex ("#456f01"), SVG color names, and the legacy R
	// color names (see rColorAliases) are accepted.
	Color1 string
	Color2 string
	Color3 string
	// Outline is the circle outline style: none, solid, dashed, or dotted.
	Outline string
	// OutlineWidth is the outline stroke width in points.
	OutlineWidth float64
	// FontSize, Font, Style control the numeric region labels.
	FontSize float64
	Font     string
	Style    string
	// LabelFontSize, LabelFont, LabelStyle control the caller-name labels,
	// independently of the numeric labels.
	LabelFontSize float64
	LabelFont     string
	LabelStyle    string
	// FigWidth, FigHeight are the figure dimensions in inches.
	FigWidth  float64
	FigHeight float64
	// DPI is the resolution for raster output formats.
	DPI int
	// Alpha is the fill opacity in [0,1].  Overlap regions show the
	// canvas's own alpha blending of the circle colors.
	Alpha float64
}

// DefaultOpts is the default set of rendering options.
var DefaultOpts = Opts{
	Color1:        "#456f01",
	Color2:        "#00688B",
	Color3:        "#ffac12",
	Outline:       "solid",
	OutlineWidth:  2.0,
	FontSize:      12.0,
	Font:          "sans-serif",
	Style:         "normal",
	LabelFontSize: 14.0,
	LabelFont:     "sans-serif",
	LabelStyle:    "normal",
	FigWidth:      10,
	FigHeight:     8,
	DPI:           300,
	Alpha:         0.5,
}

// Validate checks option ranges and enumerations.  It reports the first
// problem found.
func (o *Opts) Validate() error {
	for _, c := range []string{o.Color1, o.Color2, o.Color3} {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	if _, _, err := outlineDashes(o.Outline, 1); err != nil {
		return err
	}
	if o.OutlineWidth <= 0 {
		return errors.E(fmt.Sprintf("outline width must be positive, got %v", o.OutlineWidth))
	}
	if o.FontSize <= 0 || o.LabelFontSize <= 0 {
		return errors.E(fmt.Sprintf("font sizes must be positive, got %v and %v", o.FontSize, o.LabelFontSize))
	}
	if _, err := textFont(o.Font, o.Style, o.FontSize); err != nil {
		return err
	}
	if _, err := textFont(o.LabelFont, o.LabelStyle, o.LabelFontSize); err != nil {
		return err
	}
	if o.FigWidth <= 0 || o.FigHeight <= 0 {
		return errors.E(fmt.Sprintf("figure size must be positive, got %vx%v", o.FigWidth, o.FigHeight))
	}
	if o.DPI <= 0 {
		return errors.E(fmt.Sprintf("dpi must be positive, got %d", o.DPI))
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return errors.E(fmt.Sprintf("alpha must be in [0,1], got %v", o.Alpha))
	}
	return nil
}
