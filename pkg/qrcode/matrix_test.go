package qr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContent = "https://example.com"

func TestNewMatrix(t *testing.T) {
	for _, level := range []ErrorCorrection{ErrorCorrectionL, ErrorCorrectionM, ErrorCorrectionQ, ErrorCorrectionH} {
		t.Run(string(level), func(t *testing.T) {
			m, err := NewMatrix(testContent, 0, level, 4)
			require.NoError(t, err)

			symbol := m.Size() - 8
			assert.GreaterOrEqual(t, symbol, 21)
			assert.Zero(t, (symbol-17)%4, "symbol size %d is not a QR size", symbol)
		})
	}
}

func TestNewMatrixInvalidErrorCorrection(t *testing.T) {
	for _, level := range []ErrorCorrection{"", "l", "X", "LM"} {
		_, err := NewMatrix(testContent, 0, level, 4)
		assert.ErrorIs(t, err, ErrInvalidErrorCorrection, "level %q", level)
	}
}

func TestNewMatrixBorderIsEmpty(t *testing.T) {
	const border = 3
	m, err := NewMatrix(testContent, 0, ErrorCorrectionM, border)
	require.NoError(t, err)

	size := m.Size()
	for i := 0; i < size; i++ {
		for b := 0; b < border; b++ {
			assert.False(t, m.At(b, i))
			assert.False(t, m.At(size-1-b, i))
			assert.False(t, m.At(i, b))
			assert.False(t, m.At(i, size-1-b))
		}
	}
}

func TestNewMatrixFinderCells(t *testing.T) {
	const border = 2
	m, err := NewMatrix(testContent, 0, ErrorCorrectionL, border)
	require.NoError(t, err)

	for _, p := range FinderPatterns(border, m.Size()) {
		assert.True(t, m.At(p.Y0, p.X0), "outer ring")
		assert.False(t, m.At(p.Y0+1, p.X0+1), "separator ring")
		assert.True(t, m.At(p.Y0+3, p.X0+3), "center")
	}
}

func TestNewMatrixVersion(t *testing.T) {
	m, err := NewMatrix(testContent, 5, ErrorCorrectionL, 0)
	require.NoError(t, err)
	assert.Equal(t, 17+4*5, m.Size())

	// Content that does not fit version 1 grows to a larger version.
	long := strings.Repeat("prettyqr", 20)
	m, err = NewMatrix(long, 1, ErrorCorrectionH, 0)
	require.NoError(t, err)
	assert.Greater(t, m.Size(), 21)
}

func TestNewMatrixErrors(t *testing.T) {
	_, err := NewMatrix(testContent, 41, ErrorCorrectionL, 4)
	assert.ErrorIs(t, err, ErrInvalidVersion)

	_, err = NewMatrix(testContent, -1, ErrorCorrectionL, 4)
	assert.ErrorIs(t, err, ErrInvalidVersion)

	_, err = NewMatrix(testContent, 0, ErrorCorrectionL, -1)
	assert.ErrorIs(t, err, ErrInvalidBorder)

	_, err = NewMatrix(strings.Repeat("x", 8000), 0, ErrorCorrectionH, 4)
	assert.ErrorIs(t, err, ErrContentTooLong)

	_, err = NewMatrix(strings.Repeat("x", 8000), 39, ErrorCorrectionH, 4)
	assert.ErrorIs(t, err, ErrContentTooLong)
}

func TestMatrixAtOutOfRange(t *testing.T) {
	m, err := NewMatrix(testContent, 0, ErrorCorrectionL, 0)
	require.NoError(t, err)

	assert.False(t, m.At(-1, 0))
	assert.False(t, m.At(0, -1))
	assert.False(t, m.At(m.Size(), 0))
	assert.False(t, m.At(0, m.Size()))
}

func TestMatrixBitmapIsCopy(t *testing.T) {
	m, err := NewMatrix(testContent, 0, ErrorCorrectionL, 0)
	require.NoError(t, err)

	bitmap := m.Bitmap()
	require.True(t, bitmap[0][0])
	bitmap[0][0] = false
	assert.True(t, m.At(0, 0))
}
