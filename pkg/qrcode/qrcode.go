package qr

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// Config holds the parameters shared by every renderer.
type Config struct {
	Content         string
	Version         int // 0 picks the smallest version that fits
	ErrorCorrection ErrorCorrection
	BoxSize         int // pixel edge length of one cell
	Border          int // empty cells around the symbol
	FillColor       color.Color
	BackColor       color.Color
	FinderColor     color.Color
	Logo            image.Image // optional, drawn in the center
	LogoScale       float64     // logo width relative to the image width
}

func (c Config) validate() error {
	if _, err := c.ErrorCorrection.RecoveryLevel(); err != nil {
		return err
	}
	if c.BoxSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBoxSize, c.BoxSize)
	}
	if c.Border < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBorder, c.Border)
	}
	if c.BackColor == nil {
		return fmt.Errorf("%w: background color is required", ErrInvalidColor)
	}
	if c.FinderColor == nil {
		return fmt.Errorf("%w: finder color is required", ErrInvalidColor)
	}
	if c.Logo != nil && (c.LogoScale <= 0 || c.LogoScale > 1) {
		return fmt.Errorf("%w: %v (want 0 < scale <= 1)", ErrInvalidLogoScale, c.LogoScale)
	}
	return nil
}

// canvas is a drawing context sized for an encoded matrix.
type canvas struct {
	dc     *gg.Context
	matrix Matrix
	box    float64
	border int
}

func newCanvas(c Config) (*canvas, error) {
	matrix, err := NewMatrix(c.Content, c.Version, c.ErrorCorrection, c.Border)
	if err != nil {
		return nil, err
	}

	imgSize := matrix.Size() * c.BoxSize
	dc := gg.NewContext(imgSize, imgSize)
	dc.SetColor(c.BackColor)
	dc.Clear()

	return &canvas{
		dc:     dc,
		matrix: matrix,
		box:    float64(c.BoxSize),
		border: c.Border,
	}, nil
}

// eachModule calls fn with the pixel origin of every dark cell outside the
// finder regions.
func (cv *canvas) eachModule(fn func(row, col int, x0, y0 float64)) {
	size := cv.matrix.Size()
	patterns := FinderPatterns(cv.border, size)

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !cv.matrix.At(r, c) || inAny(patterns, r, c) {
				continue
			}
			fn(r, c, float64(c)*cv.box, float64(r)*cv.box)
		}
	}
}

func (cv *canvas) drawFinders(style finderStyle) {
	drawFinderPatterns(cv.dc, FinderPatterns(cv.border, cv.matrix.Size()), cv.box, style)
}

// logoMargin keeps antialiased disc edges and anchor rounding off the
// finder patterns.
const logoMargin = 2

// logoClearance is the largest disc radius around the image center that
// stays clear of every finder pattern and of the image edge.
func (cv *canvas) logoClearance() float64 {
	center := float64(cv.dc.Width()) / 2
	clearance := center
	for _, p := range FinderPatterns(cv.border, cv.matrix.Size()) {
		clearance = math.Min(clearance, p.distance(center, center, cv.box)-logoMargin)
	}
	return clearance
}

// drawLogo places logo on a background disc in the center of the image.
// Oversized logos shrink until the disc no longer reaches a finder pattern.
func (cv *canvas) drawLogo(logo image.Image, scale float64, back color.Color) {
	width := cv.dc.Width()
	center := float64(width) / 2

	radius := math.Min(float64(width)*scale/2*math.Sqrt2, cv.logoClearance())
	logoSize := int(2 * radius / math.Sqrt2)
	if logoSize <= 0 {
		return
	}
	resized := resize.Resize(uint(logoSize), uint(logoSize), logo, resize.Lanczos3)

	cv.dc.SetColor(back)
	cv.dc.DrawCircle(center, center, radius)
	cv.dc.Fill()

	cv.dc.DrawImageAnchored(resized, int(center), int(center), 0.5, 0.5)
}

func (cv *canvas) finish(c Config) *Image {
	if c.Logo != nil {
		cv.drawLogo(c.Logo, c.LogoScale, c.BackColor)
	}
	return newImage(cv.dc.Image())
}
