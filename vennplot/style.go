package vennplot

import (
	"github.com/grailbio/base/errors"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// fontVariants maps the advertised font-family names onto the Liberation
// typeface variants shipped with the plotting backend.  Arial/Helvetica are
// metrically compatible with Liberation Sans, Times/Palatino with Liberation
// Serif, Courier with Liberation Mono.
var fontVariants = map[string]font.Variant{
	"sans-serif":      "Sans",
	"serif":           "Serif",
	"monospace":       "Mono",
	"Arial":           "Sans",
	"Helvetica":       "Sans",
	"Times New Roman": "Serif",
	"Courier":         "Mono",
	"Palatino":        "Serif",
}

func textFont(family, style string, size float64) (font.Font, error) {
	variant, ok := fontVariants[family]
	if !ok {
		return font.Font{}, errors.E("unknown font family:", family)
	}
	fs, fw, err := fontStyle(style)
	if err != nil {
		return font.Font{}, err
	}
	return font.Font{
		Typeface: "Liberation",
		Variant:  variant,
		Style:    fs,
		Weight:   fw,
		Size:     vg.Points(size),
	}, nil
}

func fontStyle(style string) (xfont.Style, xfont.Weight, error) {
	switch style {
	case "normal":
		return xfont.StyleNormal, xfont.WeightNormal, nil
	case "bold":
		return xfont.StyleNormal, xfont.WeightBold, nil
	case "italic":
		return xfont.StyleItalic, xfont.WeightNormal, nil
	case "bold-italic":
		return xfont.StyleItalic, xfont.WeightBold, nil
	}
	return 0, 0, errors.E("unknown font style:", style)
}

// outlineDashes maps an outline style name to a vg dash pattern.  ok is
// false for "none": the stroke pass is skipped entirely rather than drawn
// with an empty pattern.
func outlineDashes(outline string, width vg.Length) (dashes []vg.Length, ok bool, err error) {
	switch outline {
	case "none":
		return nil, false, nil
	case "solid":
		return nil, true, nil
	case "dashed":
		return []vg.Length{vg.Points(6), vg.Points(4)}, true, nil
	case "dotted":
		return []vg.Length{width, 2 * width}, true, nil
	}
	return nil, false, errors.E("unknown outline style:", outline)
}
