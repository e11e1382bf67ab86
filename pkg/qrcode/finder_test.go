package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinderPatterns(t *testing.T) {
	got := FinderPatterns(4, 29)
	assert.Equal(t, []FinderPattern{
		{X0: 4, Y0: 4, X1: 11, Y1: 11},
		{X0: 4, Y0: 18, X1: 11, Y1: 25},
		{X0: 18, Y0: 4, X1: 25, Y1: 11},
	}, got)
}

func TestIsFinderPattern(t *testing.T) {
	const border, size = 4, 29

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"top-left corner", 4, 4, true},
		{"top-left last cell", 10, 10, true},
		{"right of top-left", 4, 11, false},
		{"below top-left", 11, 4, false},
		{"top-right", 4, 24, true},
		{"bottom-left", 24, 4, true},
		{"bottom-right is not a finder", 24, 24, false},
		{"border", 3, 3, false},
		{"center", 14, 14, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFinderPattern(tt.row, tt.col, border, size))
		})
	}
}
