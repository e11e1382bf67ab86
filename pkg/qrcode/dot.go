package qr

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"
)

// DotConfig configures CreateDotQR.
type DotConfig struct {
	Config
	// FillColors is sampled per module. When empty, Config.FillColor is used.
	FillColors []color.Color
	// DotSizes is sampled per module, each a fraction of the cell in [0, 1].
	DotSizes []float64
	// DotRadius is the corner radius as a fraction of half a cell:
	// 1 draws circles, 0 draws squares.
	DotRadius    float64
	FinderRadius float64
	// Rand drives the per-module choices. Nil uses a time seeded source.
	Rand *rand.Rand
}

func (c DotConfig) fillColors() []color.Color {
	if len(c.FillColors) == 0 && c.FillColor != nil {
		return []color.Color{c.FillColor}
	}
	return c.FillColors
}

func (c DotConfig) validate() error {
	if err := c.Config.validate(); err != nil {
		return err
	}

	colors := c.fillColors()
	if len(colors) == 0 {
		return fmt.Errorf("%w: at least one fill color is required", ErrInvalidColor)
	}
	for i, fill := range colors {
		if fill == nil {
			return fmt.Errorf("%w: fill color %d is nil", ErrInvalidColor, i)
		}
	}

	if len(c.DotSizes) == 0 {
		return fmt.Errorf("%w: at least one dot size is required", ErrInvalidDotSize)
	}
	for _, size := range c.DotSizes {
		if size < 0 || size > 1 || math.IsNaN(size) {
			return fmt.Errorf("%w: %v (want 0..1)", ErrInvalidDotSize, size)
		}
	}

	if c.DotRadius < 0 || math.IsNaN(c.DotRadius) {
		return fmt.Errorf("%w: dot radius %v", ErrInvalidRadius, c.DotRadius)
	}
	if c.FinderRadius < 0 || math.IsNaN(c.FinderRadius) {
		return fmt.Errorf("%w: finder radius %v", ErrInvalidRadius, c.FinderRadius)
	}
	return nil
}

// CreateDotQR renders each dark module as a rounded square whose size and
// color are picked at random from the configured lists. Finder patterns are
// never randomized.
func CreateDotQR(c DotConfig) (*Image, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cv, err := newCanvas(c.Config)
	if err != nil {
		return nil, err
	}

	box := cv.box
	colors := c.fillColors()
	radius := box * c.DotRadius / 2

	cv.eachModule(func(_, _ int, x0, y0 float64) {
		size := c.DotSizes[rng.Intn(len(c.DotSizes))]
		fill := colors[rng.Intn(len(colors))]

		inset := box * (1 - size) / 2
		cv.dc.SetColor(fill)
		drawRoundedRectangle(cv.dc, x0+inset, y0+inset, box-2*inset, box-2*inset, radius)
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
