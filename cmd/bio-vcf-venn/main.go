// Copyright 2026 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

// See doc.go for documentation.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/vcfvenn/overlap"
	"github.com/grailbio/vcfvenn/vennplot"
)

var (
	inputPath  = flag.String("i", "", "Input TSV file from VCF comparison (required)")
	outputPath = flag.String("o", "", "Output path for the Venn diagram; format from extension: png, pdf, svg, jpg, tiff, eps (required)")
	countsOut  = flag.String("counts-out", "", "Optional TSV path for the per-pattern counts")

	color1       = flag.String("color1", vennplot.DefaultOpts.Color1, "Color for the first caller circle (hex recommended)")
	color2       = flag.String("color2", vennplot.DefaultOpts.Color2, "Color for the second caller circle (hex recommended)")
	color3       = flag.String("color3", vennplot.DefaultOpts.Color3, "Color for the third caller circle (hex recommended)")
	outline      = flag.String("outline", vennplot.DefaultOpts.Outline, "Circle outline style: none, solid, dashed, or dotted")
	outlineWidth = flag.Float64("outline-width", vennplot.DefaultOpts.OutlineWidth, "Circle outline width")
	fontSize     = flag.Float64("fontsize", vennplot.DefaultOpts.FontSize, "Font size for the numbers in the circles")
	fontFamily   = flag.String("font", vennplot.DefaultOpts.Font, "Font family for the numbers: sans-serif, serif, monospace, Arial, Helvetica, Times New Roman, Courier, or Palatino")
	fontStyle    = flag.String("style", vennplot.DefaultOpts.Style, "Font style for the numbers: normal, bold, italic, or bold-italic")
	labelSize    = flag.Float64("label-fontsize", vennplot.DefaultOpts.LabelFontSize, "Font size for the caller labels")
	labelFamily  = flag.String("label-font", vennplot.DefaultOpts.LabelFont, "Font family for the caller labels")
	labelStyle   = flag.String("label-style", vennplot.DefaultOpts.LabelStyle, "Font style for the caller labels")
	figSize      = flag.String("figsize", "10,8", "Figure size in inches as width,height")
	dpi          = flag.Int("dpi", vennplot.DefaultOpts.DPI, "DPI for raster image formats")
	alpha        = flag.Float64("alpha", vennplot.DefaultOpts.Alpha, "Circle opacity in [0,1]; overlap regions show color blending")
)

func init() {
	flag.StringVar(inputPath, "input", "", "Alias for -i")
	flag.StringVar(outputPath, "output", "", "Alias for -o")
}

func bioVcfVennUsage() {
	fmt.Printf("Usage: %s -i summary.tsv -o venn.png [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func parseFigSize(s string) (w, h float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-figsize must be width,height, got %q", s)
	}
	if w, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("-figsize width: %v", err)
	}
	if h, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("-figsize height: %v", err)
	}
	return w, h, nil
}

func printSummary(res overlap.Result, path string) {
	fmt.Printf("Venn diagram saved to: %s\n", path)
	fmt.Printf("\nVariant counts:\n")
	if res.NumCallers() == 2 {
		fmt.Printf("  Unique to %s: %d\n", res.Callers[0], res.Counts[0b01])
		fmt.Printf("  Unique to %s: %d\n", res.Callers[1], res.Counts[0b10])
		fmt.Printf("  Common to both: %d\n", res.Counts[0b11])
		return
	}
	fmt.Printf("  Unique to %s: %d\n", res.Callers[0], res.Counts[0b001])
	fmt.Printf("  Unique to %s: %d\n", res.Callers[1], res.Counts[0b010])
	fmt.Printf("  Unique to %s: %d\n", res.Callers[2], res.Counts[0b100])
	fmt.Printf("  %s & %s only: %d\n", res.Callers[0], res.Callers[1], res.Counts[0b011])
	fmt.Printf("  %s & %s only: %d\n", res.Callers[0], res.Callers[2], res.Counts[0b101])
	fmt.Printf("  %s & %s only: %d\n", res.Callers[1], res.Callers[2], res.Counts[0b110])
	fmt.Printf("  Common to all three: %d\n", res.Counts[0b111])
}

func main() {
	flag.Usage = bioVcfVennUsage
	shutdown := grail.Init()
	defer shutdown()

	if *inputPath == "" || *outputPath == "" {
		flag.Usage()
		log.Fatalf("both -i/-input and -o/-output are required")
	}
	opts := vennplot.Opts{
		Color1:        *color1,
		Color2:        *color2,
		Color3:        *color3,
		Outline:       *outline,
		OutlineWidth:  *outlineWidth,
		FontSize:      *fontSize,
		Font:          *fontFamily,
		Style:         *fontStyle,
		LabelFontSize: *labelSize,
		LabelFont:     *labelFamily,
		LabelStyle:    *labelStyle,
		DPI:           *dpi,
		Alpha:         *alpha,
	}
	var err error
	if opts.FigWidth, opts.FigHeight, err = parseFigSize(*figSize); err != nil {
		log.Fatalf("%v", err)
	}
	if err = opts.Validate(); err != nil {
		log.Fatalf("%v", err)
	}
	// Validate the output format before touching the input so a bad -o never
	// wastes a counting pass.
	if err = vennplot.SupportedFormat(*outputPath); err != nil {
		log.Fatalf("%v", err)
	}

	ctx := vcontext.Background()
	log.Printf("reading %s", *inputPath)
	res, err := overlap.Count(ctx, *inputPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("found %d callers: %s", res.NumCallers(), strings.Join(res.Callers, ", "))
	if res.Unclassified > 0 {
		log.Printf("%d of %d rows called by no recognized tool; excluded from the diagram", res.Unclassified, res.TotalRows)
	}
	if *countsOut != "" {
		if err = overlap.WriteCounts(ctx, *countsOut, res); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("wrote counts to %s", *countsOut)
	}
	log.Printf("creating %d-way Venn diagram", res.NumCallers())
	if err = vennplot.Render(ctx, res, *outputPath, &opts); err != nil {
		log.Fatalf("%v", err)
	}
	printSummary(res, *outputPath)
}
