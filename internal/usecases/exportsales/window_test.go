package exportsales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/export-sales-api/internal/domain"
)

func bucketsFor(months ...domain.MonthKey) map[domain.MonthKey]*domain.MonthlyBucket {
	buckets := make(map[domain.MonthKey]*domain.MonthlyBucket, len(months))
	for i, key := range months {
		buckets[key] = &domain.MonthlyBucket{Key: key, TotalSales: float64(i + 1), UnitName: "Metric Tons"}
	}
	return buckets
}

func monthsOf(year int, from, to int) []domain.MonthKey {
	keys := make([]domain.MonthKey, 0, to-from+1)
	for m := from; m <= to; m++ {
		keys = append(keys, domain.MonthKey{Year: year, Month: time.Month(m)})
	}
	return keys
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name          string
		months        []domain.MonthKey
		offset        int
		expectedDates []string
	}{
		{
			name:          "offset 0 com sete meses devolve os seis mais recentes",
			months:        monthsOf(2023, 1, 7),
			offset:        0,
			expectedDates: []string{"2023-7", "2023-6", "2023-5", "2023-4", "2023-3", "2023-2"},
		},
		{
			name:          "offset 1 descarta o mês mais recente",
			months:        monthsOf(2023, 1, 7),
			offset:        1,
			expectedDates: []string{"2023-6", "2023-5", "2023-4", "2023-3", "2023-2", "2023-1"},
		},
		{
			name:          "menos meses que a janela",
			months:        monthsOf(2023, 3, 5),
			offset:        1,
			expectedDates: []string{"2023-4", "2023-3"},
		},
		{
			name:          "offset maior que o número de meses",
			months:        monthsOf(2023, 3, 3),
			offset:        1,
			expectedDates: []string{},
		},
		{
			name: "ordenação atravessa a virada do ano",
			months: []domain.MonthKey{
				{Year: 2022, Month: 11},
				{Year: 2023, Month: 1},
				{Year: 2022, Month: 12},
			},
			offset:        0,
			expectedDates: []string{"2023-1", "2022-12", "2022-11"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Window(bucketsFor(tt.months...), tt.offset)

			require.NotNil(t, result)
			dates := make([]string, 0, len(result))
			for _, p := range result {
				dates = append(dates, p.Date)
				assert.Equal(t, "Metric Tons", p.UnitName)
			}
			assert.Equal(t, tt.expectedDates, dates)
		})
	}
}

func TestWindow_LengthRule(t *testing.T) {
	for n := 0; n <= 9; n++ {
		for _, offset := range []int{0, 1} {
			buckets := bucketsFor(monthsOf(2023, 1, n)...)
			expected := n - offset
			if expected > WindowSize {
				expected = WindowSize
			}
			if expected < 0 {
				expected = 0
			}
			assert.Len(t, Window(buckets, offset), expected, "n=%d offset=%d", n, offset)
		}
	}
}
