package qr

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// FinderPattern is a finder pattern region in cell units. X runs along
// columns and Y along rows; X1 and Y1 are exclusive.
type FinderPattern struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether the cell lies inside the pattern.
func (p FinderPattern) Contains(row, col int) bool {
	return p.X0 <= col && col < p.X1 && p.Y0 <= row && row < p.Y1
}

// FinderPatterns returns the top-left, bottom-left and top-right finder
// regions of a matrix of the given size.
func FinderPatterns(border, size int) []FinderPattern {
	far := size - border - finderSize
	return []FinderPattern{
		{X0: border, Y0: border, X1: border + finderSize, Y1: border + finderSize},
		{X0: border, Y0: far, X1: border + finderSize, Y1: size - border},
		{X0: far, Y0: border, X1: size - border, Y1: border + finderSize},
	}
}

// IsFinderPattern reports whether the cell belongs to any finder region.
func IsFinderPattern(row, col, border, size int) bool {
	return inAny(FinderPatterns(border, size), row, col)
}

func inAny(patterns []FinderPattern, row, col int) bool {
	for _, p := range patterns {
		if p.Contains(row, col) {
			return true
		}
	}
	return false
}

// distance returns how far the pixel point (x, y) lies from the pattern
// drawn with cells of box pixels. Points inside give 0.
func (p FinderPattern) distance(x, y, box float64) float64 {
	dx := math.Max(0, math.Max(float64(p.X0)*box-x, x-float64(p.X1)*box))
	dy := math.Max(0, math.Max(float64(p.Y0)*box-y, y-float64(p.Y1)*box))
	return math.Hypot(dx, dy)
}

// finderStyle describes the three concentric layers of a finder pattern.
type finderStyle struct {
	finder      color.Color
	back        color.Color
	outerRadius float64
	innerRadius float64
}

func drawFinderPatterns(dc *gg.Context, patterns []FinderPattern, box float64, style finderStyle) {
	for _, p := range patterns {
		layers := []struct {
			inset  int
			fill   color.Color
			radius float64
		}{
			{0, style.finder, style.outerRadius},
			{1, style.back, style.innerRadius},
			{2, style.finder, style.innerRadius},
		}
		for _, l := range layers {
			x := float64(p.X0+l.inset) * box
			y := float64(p.Y0+l.inset) * box
			w := float64(p.X1-p.X0-2*l.inset) * box
			h := float64(p.Y1-p.Y0-2*l.inset) * box

			dc.SetColor(l.fill)
			drawRoundedRectangle(dc, x, y, w, h, l.radius)
			dc.Fill()
		}
	}
}

// drawRoundedRectangle clamps r to half of the shorter side. A non-positive
// radius gives a plain rectangle.
func drawRoundedRectangle(dc *gg.Context, x, y, w, h, r float64) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}
	dc.DrawRoundedRectangle(x, y, w, h, r)
}
