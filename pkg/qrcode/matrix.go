package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	maxVersion = 40
	// finderSize is the edge length of a finder pattern in cells.
	finderSize = 7
)

// ErrorCorrection is one of the four QR error correction levels.
type ErrorCorrection string

const (
	ErrorCorrectionL ErrorCorrection = "L"
	ErrorCorrectionM ErrorCorrection = "M"
	ErrorCorrectionQ ErrorCorrection = "Q"
	ErrorCorrectionH ErrorCorrection = "H"
)

var recoveryLevels = map[ErrorCorrection]qrcode.RecoveryLevel{
	ErrorCorrectionL: qrcode.Low,
	ErrorCorrectionM: qrcode.Medium,
	ErrorCorrectionQ: qrcode.High,
	ErrorCorrectionH: qrcode.Highest,
}

// RecoveryLevel returns the encoder level for e.
func (e ErrorCorrection) RecoveryLevel() (qrcode.RecoveryLevel, error) {
	level, ok := recoveryLevels[e]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidErrorCorrection, string(e))
	}
	return level, nil
}

// Matrix is the module grid of an encoded symbol including its border.
// A true cell is a dark module.
type Matrix struct {
	cells [][]bool
}

// NewMatrix encodes content and pads the resulting symbol with border empty
// cells on every side.
//
// A zero version picks the smallest version that fits. A positive version is
// the starting point: if the content does not fit, larger versions are tried.
func NewMatrix(content string, version int, level ErrorCorrection, border int) (Matrix, error) {
	recovery, err := level.RecoveryLevel()
	if err != nil {
		return Matrix{}, err
	}
	if version < 0 || version > maxVersion {
		return Matrix{}, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidVersion, version, maxVersion)
	}
	if border < 0 {
		return Matrix{}, fmt.Errorf("%w: %d", ErrInvalidBorder, border)
	}

	code, err := encode(content, version, recovery)
	if err != nil {
		return Matrix{}, err
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()

	size := len(bitmap) + 2*border
	cells := make([][]bool, size)
	for r := range cells {
		cells[r] = make([]bool, size)
	}
	for r, row := range bitmap {
		copy(cells[r+border][border:], row)
	}

	return Matrix{cells: cells}, nil
}

func encode(content string, version int, level qrcode.RecoveryLevel) (*qrcode.QRCode, error) {
	if version == 0 {
		code, err := qrcode.New(content, level)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentTooLong, err)
		}
		return code, nil
	}

	var lastErr error
	for v := version; v <= maxVersion; v++ {
		code, err := qrcode.NewWithForcedVersion(content, v, level)
		if err == nil {
			return code, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrContentTooLong, lastErr)
}

// Size returns the number of cells along one edge, border included.
func (m Matrix) Size() int {
	return len(m.cells)
}

// At reports whether the cell is dark. Cells outside the grid are light.
func (m Matrix) At(row, col int) bool {
	if row < 0 || row >= len(m.cells) || col < 0 || col >= len(m.cells) {
		return false
	}
	return m.cells[row][col]
}

// Bitmap returns a copy of the grid.
func (m Matrix) Bitmap() [][]bool {
	out := make([][]bool, len(m.cells))
	for r, row := range m.cells {
		out[r] = append([]bool(nil), row...)
	}
	return out
}
