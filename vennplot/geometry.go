package vennplot

import (
	"math"

	"github.com/grailbio/vcfvenn/overlap"
)

// The diagram is laid out area-proportionally in an abstract unit space and
// mapped onto the canvas later: circle areas are proportional to set sizes,
// and pairwise center distances are solved so that each lens area matches
// the pairwise intersection.  Region areas are normalized to sum to 1
// before solving, so all coordinates here are O(1).

type point struct{ x, y float64 }

func (p point) add(q point) point     { return point{p.x + q.x, p.y + q.y} }
func (p point) sub(q point) point     { return point{p.x - q.x, p.y - q.y} }
func (p point) scale(k float64) point { return point{p.x * k, p.y * k} }
func (p point) norm() float64         { return math.Hypot(p.x, p.y) }

// unit returns p scaled to length 1, or fallback if p is (near) zero.
func (p point) unit(fallback point) point {
	n := p.norm()
	if n < 1e-12 {
		return fallback
	}
	return p.scale(1 / n)
}

type circle struct {
	c point
	r float64
}

// layout is the geometric plan of a diagram: the circles, one label anchor
// per non-empty membership pattern, and one anchor per caller-name label.
type layout struct {
	circles   []circle
	regions   map[overlap.Pattern]point
	setLabels []point
}

// minRadius keeps empty or tiny sets visible.  Areas are normalized to sum
// to 1, so this is relative to the whole diagram.
const minRadius = 0.05

// lensArea returns the intersection area of two circles with radii r1, r2
// whose centers are d apart.
func lensArea(r1, r2, d float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		rm := math.Min(r1, r2)
		return math.Pi * rm * rm
	}
	d2 := d * d
	a1 := r1 * r1 * math.Acos((d2+r1*r1-r2*r2)/(2*d*r1))
	a2 := r2 * r2 * math.Acos((d2+r2*r2-r1*r1)/(2*d*r2))
	return a1 + a2 - 0.5*math.Sqrt((-d+r1+r2)*(d+r1-r2)*(d-r1+r2)*(d+r1+r2))
}

// solveDistance finds the center distance at which two circles of radii r1,
// r2 intersect in the given area.  lensArea is strictly decreasing in d on
// the open interval, so bisection converges.
func solveDistance(r1, r2, area float64) float64 {
	lo, hi := math.Abs(r1-r2), r1+r2
	if area <= 0 {
		return hi
	}
	if area >= lensArea(r1, r2, lo) {
		return lo
	}
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if lensArea(r1, r2, mid) > area {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// buildLayout computes the diagram geometry for the given counts.  With
// rescale set, region areas derive from sqrt-compressed counts; the counts
// themselves (and hence the printed labels) are untouched.
func buildLayout(res overlap.Result, rescale bool) layout {
	n := res.NumCallers()
	area := make(map[overlap.Pattern]float64, len(res.Counts))
	total := 0.0
	for _, p := range overlap.Patterns(n) {
		v := float64(res.Counts[p])
		if rescale {
			v = math.Sqrt(v)
		}
		area[p] = v
		total += v
	}
	if total == 0 {
		// Nothing to size by; render equal overlapping unit circles so the
		// all-zero table still gets a diagram.
		for _, p := range overlap.Patterns(n) {
			area[p] = 1.0 / float64(len(area))
		}
	} else {
		for p := range area {
			area[p] /= total
		}
	}
	if n == 2 {
		return layout2(area)
	}
	return layout3(area)
}

func setRadius(size float64) float64 {
	return math.Max(math.Sqrt(size/math.Pi), minRadius)
}

func layout2(a map[overlap.Pattern]float64) layout {
	r1 := setRadius(a[0b01] + a[0b11])
	r2 := setRadius(a[0b10] + a[0b11])
	d := solveDistance(r1, r2, a[0b11])
	c1 := point{0, 0}
	c2 := point{d, 0}
	pad := 0.15 * math.Max(r1, r2)
	return layout{
		circles: []circle{{c1, r1}, {c2, r2}},
		regions: map[overlap.Pattern]point{
			// Lone parts and lens, midpoints along the center axis.
			0b01: {(-r1 + d - r2) / 2, 0},
			0b10: {(d + r2 + r1) / 2, 0},
			0b11: {(d - r2 + r1) / 2, 0},
		},
		setLabels: []point{
			{c1.x, c1.y - r1 - pad},
			{c2.x, c2.y - r2 - pad},
		},
	}
}

func layout3(a map[overlap.Pattern]float64) layout {
	r1 := setRadius(a[0b001] + a[0b011] + a[0b101] + a[0b111])
	r2 := setRadius(a[0b010] + a[0b011] + a[0b110] + a[0b111])
	r3 := setRadius(a[0b100] + a[0b101] + a[0b110] + a[0b111])
	d12 := solveDistance(r1, r2, a[0b011]+a[0b111])
	d13 := solveDistance(r1, r3, a[0b101]+a[0b111])
	d23 := solveDistance(r2, r3, a[0b110]+a[0b111])

	c1 := point{0, 0}
	c2 := point{d12, 0}
	// Triangulate the third center below the axis.  A degenerate triangle
	// (distances that cannot close) is clamped onto the axis.
	var c3 point
	if d12 > 0 {
		c3.x = (d12*d12 + d13*d13 - d23*d23) / (2 * d12)
	}
	if dy := d13*d13 - c3.x*c3.x; dy > 0 {
		c3.y = -math.Sqrt(dy)
	}

	mid12 := c1.add(c2).scale(0.5)
	mid13 := c1.add(c3).scale(0.5)
	mid23 := c2.add(c3).scale(0.5)
	centroid := c1.add(c2).add(c3).scale(1.0 / 3)
	rmin := math.Min(r1, math.Min(r2, r3))

	singleton := func(c point, r float64, others point) point {
		return c.add(c.sub(others).unit(point{0, 1}).scale(0.55 * r))
	}
	pair := func(mid, away point) point {
		return mid.add(mid.sub(away).unit(point{0, 1}).scale(0.3 * rmin))
	}

	pad := 0.15 * math.Max(r1, math.Max(r2, r3))
	return layout{
		circles: []circle{{c1, r1}, {c2, r2}, {c3, r3}},
		regions: map[overlap.Pattern]point{
			0b001: singleton(c1, r1, mid23),
			0b010: singleton(c2, r2, mid13),
			0b100: singleton(c3, r3, mid12),
			0b011: pair(mid12, c3),
			0b101: pair(mid13, c2),
			0b110: pair(mid23, c1),
			0b111: centroid,
		},
		setLabels: []point{
			{c1.x, c1.y + r1 + pad},
			{c2.x, c2.y + r2 + pad},
			{c3.x, c3.y - r3 - pad},
		},
	}
}
