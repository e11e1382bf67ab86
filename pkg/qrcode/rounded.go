package qr

import (
	"fmt"
	"math"
)

// RoundedConfig configures CreateRoundedQR.
type RoundedConfig struct {
	Config
	// FinderRadius is the finder corner radius in cells. The outer layer
	// uses twice this value.
	FinderRadius float64
}

// CreateRoundedQR renders each dark module as a dot and bridges it to its
// dark neighbours, so runs of modules merge into rounded blobs.
func CreateRoundedQR(c RoundedConfig) (*Image, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.FillColor == nil {
		return nil, fmt.Errorf("%w: fill color is required", ErrInvalidColor)
	}
	if c.FinderRadius < 0 || math.IsNaN(c.FinderRadius) {
		return nil, fmt.Errorf("%w: finder radius %v", ErrInvalidRadius, c.FinderRadius)
	}

	cv, err := newCanvas(c.Config)
	if err != nil {
		return nil, err
	}

	box := cv.box
	half := math.Floor(box / 2)
	m := cv.matrix

	cv.dc.SetColor(c.FillColor)
	cv.eachModule(func(r, col int, x0, y0 float64) {
		cv.dc.DrawEllipse(x0+box/2, y0+box/2, box/2, box/2)
		cv.dc.Fill()

		if m.At(r-1, col) {
			cv.dc.DrawRectangle(x0, y0, box, half)
		}
		if m.At(r+1, col) {
			cv.dc.DrawRectangle(x0, y0+box-half, box, half)
		}
		if m.At(r, col-1) {
			cv.dc.DrawRectangle(x0, y0, half, box)
		}
		if m.At(r, col+1) {
			cv.dc.DrawRectangle(x0+box-half, y0, half, box)
		}
		cv.dc.Fill()
	})

	cv.drawFinders(finderStyle{
		finder:      c.FinderColor,
		back:        c.BackColor,
		outerRadius: box * c.FinderRadius * 2,
		innerRadius: box * c.FinderRadius,
	})

	return cv.finish(c.Config), nil
}
