package exportsales

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/internal/catalog"
	"github.com/vfg2006/export-sales-api/internal/domain"
)

// Aggregate agrupa os registros semanais de uma commodity em baldes mensais.
//
// O código da commodity do primeiro registro é tratado como autoritativo; registros de
// outra commodity são somados mesmo assim e apenas geram um aviso. O nome da unidade de
// cada balde vem do primeiro registro que o criou.
func Aggregate(records []domain.WeeklyRecord, units catalog.UnitNamer) (map[domain.MonthKey]*domain.MonthlyBucket, error) {
	if len(records) == 0 {
		return nil, NewEmptyRecordSetError(0)
	}

	commodityCode := records[0].CommodityCode
	buckets := make(map[domain.MonthKey]*domain.MonthlyBucket)
	totals := make(map[domain.MonthKey]decimal.Decimal)
	mismatched := 0

	for _, record := range records {
		if record.CommodityCode != commodityCode {
			mismatched++
		}

		key := domain.MonthKeyOf(record.WeekEndingDate)
		if _, ok := buckets[key]; !ok {
			buckets[key] = &domain.MonthlyBucket{
				Key:      key,
				UnitName: units.UnitName(record.UnitID),
			}
			totals[key] = decimal.Zero
		}

		totals[key] = totals[key].Add(decimal.NewFromFloat(record.GrossNewSales))
	}

	for key, total := range totals {
		buckets[key].TotalSales = total.InexactFloat64()
	}

	if mismatched > 0 {
		logrus.WithFields(logrus.Fields{
			"commodity_code": commodityCode,
			"mismatched":     mismatched,
		}).Warn("export-sales: registros com código de commodity diferente do primeiro foram agregados")
	}

	return buckets, nil
}
