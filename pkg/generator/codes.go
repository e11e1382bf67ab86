package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/fogleman/gg"

	qr "github.com/Badsnus/prettyqr/pkg/qrcode"
)

const (
	KindSquare  = "square"
	KindRounded = "rounded"
	KindDot     = "dot"
)

var (
	ErrUnknownKind = errors.New("unknown qr style kind")
	ErrInvalidName = errors.New("invalid qr style name")
)

// Style is a string-typed description of one QR image, as found in config
// files. Empty fields take the renderer defaults.
type Style struct {
	Name            string    `mapstructure:"name"`
	Kind            string    `mapstructure:"kind"`
	Data            string    `mapstructure:"data"`
	Version         int       `mapstructure:"version"`
	ErrorCorrection string    `mapstructure:"error-correction"`
	BoxSize         int       `mapstructure:"box-size"`
	Border          *int      `mapstructure:"border"`
	FillColor       []string  `mapstructure:"fill-color"` // more than one only for dot
	BackColor       string    `mapstructure:"back-color"`
	FinderColor     string    `mapstructure:"finder-color"`
	FinderRadius    *float64  `mapstructure:"finder-radius"`
	DotRadius       *float64  `mapstructure:"dot-radius"`
	DotSize         []float64 `mapstructure:"dot-size"`
	LogoPath        string    `mapstructure:"logo-path"`
	LogoScale       float64   `mapstructure:"logo-scale"`
	Size            int       `mapstructure:"size"` // final pixel size, 0 keeps the rendered size
}

func (s Style) baseConfig() (qr.Config, error) {
	c := qr.DefaultConfig(s.Data)
	c.Version = s.Version
	if s.ErrorCorrection != "" {
		c.ErrorCorrection = qr.ErrorCorrection(s.ErrorCorrection)
	}
	if s.BoxSize != 0 {
		c.BoxSize = s.BoxSize
	}
	if s.Border != nil {
		c.Border = *s.Border
	}

	var err error
	if s.BackColor != "" {
		if c.BackColor, err = qr.ParseColor(s.BackColor); err != nil {
			return c, fmt.Errorf("back color: %w", err)
		}
	}
	if s.FinderColor != "" {
		if c.FinderColor, err = qr.ParseColor(s.FinderColor); err != nil {
			return c, fmt.Errorf("finder color: %w", err)
		}
	}
	if s.Kind != KindDot && len(s.FillColor) > 1 {
		return c, fmt.Errorf("%w: %s style takes a single fill color", qr.ErrInvalidColor, s.kind())
	}
	if len(s.FillColor) == 1 {
		if c.FillColor, err = qr.ParseColor(s.FillColor[0]); err != nil {
			return c, fmt.Errorf("fill color: %w", err)
		}
	}

	if s.LogoPath != "" {
		if c.Logo, err = gg.LoadImage(s.LogoPath); err != nil {
			return c, fmt.Errorf("failed to load logo: %w", err)
		}
		if s.LogoScale != 0 {
			c.LogoScale = s.LogoScale
		}
	}
	return c, nil
}

func (s Style) kind() string {
	if s.Kind == "" {
		return KindSquare
	}
	return s.Kind
}

// Render draws the style. rng drives the dot renderer and may be nil.
func (s Style) Render(rng *rand.Rand) (*qr.Image, error) {
	switch s.kind() {
	case KindSquare, KindRounded, KindDot:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	base, err := s.baseConfig()
	if err != nil {
		return nil, err
	}

	var img *qr.Image
	switch s.kind() {
	case KindSquare:
		img, err = qr.CreateQR(base)
	case KindRounded:
		c := qr.DefaultRoundedConfig(s.Data)
		c.Config = base
		if s.FinderRadius != nil {
			c.FinderRadius = *s.FinderRadius
		}
		img, err = qr.CreateRoundedQR(c)
	case KindDot:
		c := qr.DefaultDotConfig(s.Data)
		c.Config = base
		c.Rand = rng
		if len(s.FillColor) > 1 {
			if c.FillColors, err = qr.ParseColors(s.FillColor); err != nil {
				return nil, fmt.Errorf("fill color: %w", err)
			}
		}
		if len(s.DotSize) > 0 {
			c.DotSizes = s.DotSize
		}
		if s.DotRadius != nil {
			c.DotRadius = *s.DotRadius
		}
		if s.FinderRadius != nil {
			c.FinderRadius = *s.FinderRadius
		}
		img, err = qr.CreateDotQR(c)
	}
	if err != nil {
		return nil, err
	}

	return img.Resize(s.Size), nil
}
