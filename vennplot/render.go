package vennplot

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/vcfvenn/overlap"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var supportedFormats = []string{"eps", "jpeg", "jpg", "pdf", "png", "svg", "tif", "tiff"}

var fontCache = font.NewCache(liberation.Collection())

// SupportedFormat checks that the output path's extension names a format the
// rendering backend can produce.  It is the capability gate run before any
// input is read, so a bad -output never wastes a counting pass.
func SupportedFormat(path string) error {
	ext := formatOf(path)
	if ext == "" {
		return errors.E(fmt.Sprintf("output path %q has no extension; supported formats: %s",
			path, strings.Join(supportedFormats, ", ")))
	}
	for _, f := range supportedFormats {
		if f == ext {
			return nil
		}
	}
	return errors.E(fmt.Sprintf("unsupported output format %q; supported formats: %s",
		ext, strings.Join(supportedFormats, ", ")))
}

func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ImbalanceRescale reports whether the readability rescale applies: a
// three-caller diagram whose largest bucket exceeds 10x its smallest
// non-zero bucket gets sqrt-compressed region areas so the small regions
// stay legible.
func ImbalanceRescale(res overlap.Result) bool {
	if res.NumCallers() != 3 {
		return false
	}
	max, minNonzero := 0, 0
	for _, c := range res.Counts {
		if c > max {
			max = c
		}
		if c > 0 && (minNonzero == 0 || c < minNonzero) {
			minNonzero = c
		}
	}
	return minNonzero > 0 && max > 10*minNonzero
}

// Render draws the Venn diagram for res and writes it to path, with the
// format chosen by the path's extension.  A nil opts means DefaultOpts.
func Render(ctx context.Context, res overlap.Result, path string, opts *Opts) (err error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if err = opts.Validate(); err != nil {
		return err
	}
	if err = SupportedFormat(path); err != nil {
		return err
	}
	n := res.NumCallers()
	if n < 2 || n > overlap.MaxCallers {
		return errors.E(fmt.Sprintf("can only draw 2- or 3-set diagrams, got %d callers", n))
	}

	rescale := ImbalanceRescale(res)
	if rescale {
		log.Printf("bucket sizes differ by more than 10x; rescaling region areas for readability")
	}
	lay := buildLayout(res, rescale)

	w := vg.Length(opts.FigWidth) * vg.Inch
	h := vg.Length(opts.FigHeight) * vg.Inch
	dc, wt, err := newCanvas(formatOf(path), w, h, opts.DPI)
	if err != nil {
		return err
	}
	if err = drawDiagram(dc, res, lay, opts); err != nil {
		return err
	}

	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "creating diagram file:", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if _, err = wt.WriteTo(out.Writer(ctx)); err != nil {
		return errors.E(err, "writing diagram:", path)
	}
	return nil
}

// newCanvas picks the vg backend for the format.  Raster backends honor the
// requested DPI; vector backends have no resolution to set.
func newCanvas(format string, w, h vg.Length, dpi int) (draw.Canvas, io.WriterTo, error) {
	switch format {
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		return draw.New(c), vgimg.PngCanvas{Canvas: c}, nil
	case "jpg", "jpeg":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		return draw.New(c), vgimg.JpegCanvas{Canvas: c}, nil
	case "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
		return draw.New(c), vgimg.TiffCanvas{Canvas: c}, nil
	case "pdf":
		c := vgpdf.New(w, h)
		return draw.New(c), c, nil
	case "svg":
		c := vgsvg.New(w, h)
		return draw.New(c), c, nil
	case "eps":
		c := vgeps.New(w, h)
		return draw.New(c), c, nil
	}
	return draw.Canvas{}, nil, errors.E("unsupported output format:", format)
}

func drawDiagram(dc draw.Canvas, res overlap.Result, lay layout, opts *Opts) error {
	n := res.NumCallers()
	fills := make([]color.NRGBA, n)
	for i, s := range []string{opts.Color1, opts.Color2, opts.Color3}[:n] {
		c, err := ParseColor(s)
		if err != nil {
			return err
		}
		fills[i] = withAlpha(c, opts.Alpha)
	}
	numFont, err := textFont(opts.Font, opts.Style, opts.FontSize)
	if err != nil {
		return err
	}
	labelFont, err := textFont(opts.LabelFont, opts.LabelStyle, opts.LabelFontSize)
	if err != nil {
		return err
	}
	dashes, stroke, err := outlineDashes(opts.Outline, vg.Points(opts.OutlineWidth))
	if err != nil {
		return err
	}

	tr := unitToCanvas(dc, lay)

	// Background.
	var bg vg.Path
	bg.Move(dc.Min)
	bg.Line(vg.Point{X: dc.Max.X, Y: dc.Min.Y})
	bg.Line(dc.Max)
	bg.Line(vg.Point{X: dc.Min.X, Y: dc.Max.Y})
	bg.Close()
	dc.SetColor(color.White)
	dc.Fill(bg)

	// Fill pass first so that later outlines stay crisp; overlap regions get
	// the canvas's alpha compositing of the fills.
	for i, circ := range lay.circles {
		dc.SetColor(fills[i])
		dc.Fill(circlePath(tr.point(circ.c), tr.length(circ.r)))
	}
	if stroke {
		dc.SetColor(color.Black)
		dc.SetLineWidth(vg.Points(opts.OutlineWidth))
		dc.SetLineDash(dashes, 0)
		for _, circ := range lay.circles {
			dc.Stroke(circlePath(tr.point(circ.c), tr.length(circ.r)))
		}
		dc.SetLineDash(nil, 0)
	}

	handler := text.Plain{Fonts: fontCache}
	numStyle := text.Style{
		Color:   color.Black,
		Font:    numFont,
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: handler,
	}
	for _, p := range overlap.Patterns(n) {
		dc.FillText(numStyle, tr.point(lay.regions[p]), strconv.Itoa(res.Counts[p]))
	}
	labelStyle := text.Style{
		Color:   color.Black,
		Font:    labelFont,
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: handler,
	}
	for i, pos := range lay.setLabels {
		dc.FillText(labelStyle, tr.point(pos), res.Callers[i])
	}
	return nil
}

// transform maps the unit layout space onto the canvas, preserving aspect
// ratio and centering the diagram.
type transform struct {
	scale      vg.Length
	ox, oy     vg.Length
	minx, miny float64
}

func (t transform) point(p point) vg.Point {
	return vg.Point{
		X: t.ox + vg.Length(p.x-t.minx)*t.scale,
		Y: t.oy + vg.Length(p.y-t.miny)*t.scale,
	}
}

func (t transform) length(l float64) vg.Length { return vg.Length(l) * t.scale }

func unitToCanvas(dc draw.Canvas, lay layout) transform {
	minx, miny := math.Inf(1), math.Inf(1)
	maxx, maxy := math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minx, miny = math.Min(minx, x), math.Min(miny, y)
		maxx, maxy = math.Max(maxx, x), math.Max(maxy, y)
	}
	for _, circ := range lay.circles {
		grow(circ.c.x-circ.r, circ.c.y-circ.r)
		grow(circ.c.x+circ.r, circ.c.y+circ.r)
	}
	for _, p := range lay.setLabels {
		grow(p.x, p.y)
	}
	// Margin for the set-label text extents.
	mx, my := 0.12*(maxx-minx), 0.12*(maxy-miny)
	minx, miny, maxx, maxy = minx-mx, miny-my, maxx+mx, maxy+my

	bw, bh := maxx-minx, maxy-miny
	cw := dc.Max.X - dc.Min.X
	ch := dc.Max.Y - dc.Min.Y
	scale := cw / vg.Length(bw)
	if s := ch / vg.Length(bh); s < scale {
		scale = s
	}
	return transform{
		scale: scale,
		ox:    dc.Min.X + (cw-vg.Length(bw)*scale)/2,
		oy:    dc.Min.Y + (ch-vg.Length(bh)*scale)/2,
		minx:  minx,
		miny:  miny,
	}
}

func circlePath(c vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: c.X + r, Y: c.Y})
	p.Arc(c, r, 0, 2*math.Pi)
	p.Close()
	return p
}
