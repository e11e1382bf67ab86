package qr

import "image/color"

const (
	defaultBoxSize      = 20
	defaultBorder       = 4
	defaultFinderRadius = 1.0
	defaultDotRadius    = 1.0
	defaultDotSize      = 0.8
	defaultLogoScale    = 0.2
)

// DefaultConfig returns black modules on white, level L, 20px cells and a
// four cell border.
func DefaultConfig(content string) Config {
	return Config{
		Content:         content,
		ErrorCorrection: ErrorCorrectionL,
		BoxSize:         defaultBoxSize,
		Border:          defaultBorder,
		FillColor:       color.Black,
		BackColor:       color.White,
		FinderColor:     color.Black,
		LogoScale:       defaultLogoScale,
	}
}

func DefaultRoundedConfig(content string) RoundedConfig {
	return RoundedConfig{
		Config:       DefaultConfig(content),
		FinderRadius: defaultFinderRadius,
	}
}

func DefaultDotConfig(content string) DotConfig {
	return DotConfig{
		Config:       DefaultConfig(content),
		DotSizes:     []float64{defaultDotSize},
		DotRadius:    defaultDotRadius,
		FinderRadius: defaultFinderRadius,
	}
}
