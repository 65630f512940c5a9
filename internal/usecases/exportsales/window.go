package exportsales

import (
	"sort"

	"github.com/vfg2006/export-sales-api/internal/domain"
)

// WindowSize é o número máximo de meses devolvidos por commodity
const WindowSize = 6

// Window ordena os baldes do mais recente para o mais antigo e seleciona até WindowSize
// meses a partir de offset. Com offset 1 o mês mais recente, normalmente parcial, é descartado.
func Window(buckets map[domain.MonthKey]*domain.MonthlyBucket, offset int) []domain.MonthlyPoint {
	sorted := make([]*domain.MonthlyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		sorted = append(sorted, bucket)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key.Start().After(sorted[j].Key.Start())
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(sorted) {
		return []domain.MonthlyPoint{}
	}

	end := offset + WindowSize
	if end > len(sorted) {
		end = len(sorted)
	}

	points := make([]domain.MonthlyPoint, 0, end-offset)
	for _, bucket := range sorted[offset:end] {
		points = append(points, domain.MonthlyPoint{
			Date:          bucket.Key.String(),
			GrossNewSales: bucket.TotalSales,
			UnitName:      bucket.UnitName,
		})
	}

	return points
}
