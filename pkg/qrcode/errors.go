package qr

import "errors"

var (
	ErrInvalidErrorCorrection = errors.New("invalid error correction level")
	ErrInvalidVersion         = errors.New("invalid qr version")
	ErrInvalidBorder          = errors.New("invalid border")
	ErrInvalidBoxSize         = errors.New("invalid box size")
	ErrInvalidColor           = errors.New("invalid color")
	ErrInvalidDotSize         = errors.New("invalid dot size")
	ErrInvalidRadius          = errors.New("invalid radius")
	ErrInvalidLogoScale       = errors.New("invalid logo scale")
	ErrContentTooLong         = errors.New("content too long to encode")
)
