package exportsales

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/export-sales-api/internal/domain"
)

func TestCumulativeChange(t *testing.T) {
	tests := []struct {
		name     string
		window   []domain.MonthlyPoint
		expected float64
		isNaN    bool
	}{
		{
			// Cronológico 1,2,4,8: variações [0,1,1,1] já normalizadas
			name:     "crescimento constante",
			window:   points(8, 4, 2, 1),
			expected: 0.75,
		},
		{
			// Cronológico 0,5: anterior zero usa denominador 1
			name:     "mês anterior com vendas zero",
			window:   points(5, 0),
			expected: 0.5,
		},
		{
			name:     "queda seguida de recuperação",
			window:   points(100, 50, 100),
			expected: 4.0 / 9.0,
		},
		{
			name:   "um único mês",
			window: points(42),
			isNaN:  true,
		},
		{
			name:   "janela vazia",
			window: points(),
			isNaN:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CumulativeChange(tt.window)

			if tt.isNaN {
				assert.True(t, math.IsNaN(result), "esperado NaN, obtido %v", result)
				return
			}
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestCumulativeChange_BoundedAndPure(t *testing.T) {
	window := points(300, 120, 80, 95, 10, 60)
	original := make([]domain.MonthlyPoint, len(window))
	copy(original, window)

	result := CumulativeChange(window)

	assert.GreaterOrEqual(t, result, 0.0)
	assert.LessOrEqual(t, result, 1.0)
	assert.Equal(t, original, window)
}
