package qr

import "fmt"

// CreateQR renders every dark module as a plain square. Finder patterns are
// drawn as three concentric squares.
func CreateQR(c Config) (*Image, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.FillColor == nil {
		return nil, fmt.Errorf("%w: fill color is required", ErrInvalidColor)
	}

	cv, err := newCanvas(c)
	if err != nil {
		return nil, err
	}

	cv.dc.SetColor(c.FillColor)
	cv.eachModule(func(_, _ int, x0, y0 float64) {
		cv.dc.DrawRectangle(x0, y0, cv.box, cv.box)
		cv.dc.Fill()
	})

	cv.drawFinders(finderStyle{
		finder: c.FinderColor,
		back:   c.BackColor,
	})

	return cv.finish(c), nil
}
