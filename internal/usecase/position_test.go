package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionForIndex(t *testing.T) {
	tests := []struct {
		name      string
		positions []float64
		index     int
		expected  float64
		renorm    bool
	}{
		{"empty sequence", nil, 0, positionStep, false},
		{"drop at head", []float64{1024, 2048}, 0, 512, false},
		{"drop at tail", []float64{1024, 2048}, 2, 3072, false},
		{"drop between", []float64{1024, 2048}, 1, 1536, false},
		{"index clamped low", []float64{1024}, -3, 512, false},
		{"index clamped high", []float64{1024}, 9, 2048, false},
		{"collapsed gap needs renorm", []float64{1024, 1024 + 1e-7}, 1, 0, true},
		{"collapsed head needs renorm", []float64{1e-8}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, renorm := positionForIndex(tt.positions, tt.index)
			assert.Equal(t, tt.renorm, renorm)
			if !tt.renorm {
				assert.Equal(t, tt.expected, pos)
			}
		})
	}
}

func TestPositionForIndex_OrderPreserved(t *testing.T) {
	positions := []float64{1024, 2048, 3072, 4096}

	for index := 0; index <= len(positions); index++ {
		pos, renorm := positionForIndex(positions, index)
		assert.False(t, renorm)
		if index > 0 {
			assert.Greater(t, pos, positions[index-1])
		}
		if index < len(positions) {
			assert.Less(t, pos, positions[index])
		}
	}
}

func TestRenormalisePositions(t *testing.T) {
	got := renormalisePositions([]string{"L1", "L2", "L3"})

	assert.Equal(t, map[string]float64{
		"L1": 1024,
		"L2": 2048,
		"L3": 3072,
	}, got)
}
