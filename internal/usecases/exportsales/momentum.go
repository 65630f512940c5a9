package exportsales

import (
	"github.com/vfg2006/export-sales-api/internal/domain"
)

// CumulativeChange resume a tendência recente de uma janela ordenada do mais recente para o
// mais antigo: média das variações percentuais mês a mês normalizadas por min-max.
//
// Quando todas as variações são iguais (inclusive com um único ponto) a normalização
// divide zero por zero e o resultado é NaN. Esse caso não é corrigido aqui.
func CumulativeChange(points []domain.MonthlyPoint) float64 {
	return mean(normalize(percentChanges(chronological(points))))
}

// chronological devolve uma cópia invertida, do mais antigo para o mais recente
func chronological(points []domain.MonthlyPoint) []domain.MonthlyPoint {
	reversed := make([]domain.MonthlyPoint, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

// percentChanges calcula a variação de cada ponto em relação ao anterior.
// Um valor anterior igual a zero usa denominador 1.
func percentChanges(points []domain.MonthlyPoint) []float64 {
	changes := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		prev := points[i-1].GrossNewSales
		denominator := prev
		if denominator == 0 {
			denominator = 1
		}
		changes[i] = (points[i].GrossNewSales - prev) / denominator
	}
	return changes
}

func normalize(values []float64) []float64 {
	if len(values) == 0 {
		return values
	}

	lowest, highest := values[0], values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}

	spread := highest - lowest
	normalized := make([]float64, len(values))
	for i, v := range values {
		normalized[i] = (v - lowest) / spread
	}
	return normalized
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
