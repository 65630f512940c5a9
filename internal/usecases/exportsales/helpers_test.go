package exportsales

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/export-sales-api/internal/catalog"
	"github.com/vfg2006/export-sales-api/internal/domain"
)

func testCatalog(t *testing.T, codes ...int) *catalog.Catalog {
	t.Helper()

	units := []catalog.Unit{{ID: 1, Name: "Metric Tons"}, {ID: 2, Name: "Running Bales"}}
	commodities := make([]catalog.Commodity, 0, len(codes))
	for _, code := range codes {
		commodities = append(commodities, catalog.Commodity{Code: code, Name: fmt.Sprintf("Commodity %d", code), UnitID: 1})
	}

	cat, err := catalog.New(commodities, units)
	require.NoError(t, err)
	return cat
}

func weekly(code int, date string, sales float64) domain.WeeklyRecord {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return domain.WeeklyRecord{
		CommodityCode:  code,
		WeekEndingDate: t,
		GrossNewSales:  sales,
		UnitID:         1,
	}
}

func points(values ...float64) []domain.MonthlyPoint {
	result := make([]domain.MonthlyPoint, 0, len(values))
	for _, v := range values {
		result = append(result, domain.MonthlyPoint{GrossNewSales: v, UnitName: "Metric Tons"})
	}
	return result
}
