package usda

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/infrastructure/integrator/usda/esrclient"
	"github.com/vfg2006/export-sales-api/internal/domain"
	"github.com/vfg2006/export-sales-api/pkg/utils"
)

// USDAIntegrator converte as linhas da API ESR em registros semanais do domínio
type USDAIntegrator struct {
	Client esrclient.Client
}

func New(client esrclient.Client) *USDAIntegrator {
	return &USDAIntegrator{
		Client: client,
	}
}

// FetchWeeklyRecords busca as vendas de uma commodity. Cada linha corresponde a um país;
// a soma por mês acontece no agregador.
func (s *USDAIntegrator) FetchWeeklyRecords(ctx context.Context, commodityCode int, marketYear string) ([]domain.WeeklyRecord, error) {
	rows, err := s.Client.GetExportsByCommodity(ctx, commodityCode, marketYear)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar vendas da commodity %d para o ano %s", commodityCode, marketYear)
	}

	records := make([]domain.WeeklyRecord, 0, len(rows))
	for _, row := range rows {
		weekEnding, err := utils.ParseDate(row.WeekEndingDate)
		if err != nil {
			return nil, errors.Wrapf(err, "data de fim de semana inválida para a commodity %d: %q", commodityCode, row.WeekEndingDate)
		}

		records = append(records, domain.WeeklyRecord{
			CommodityCode:  row.CommodityCode,
			WeekEndingDate: weekEnding,
			GrossNewSales:  row.GrossNewSales,
			UnitID:         row.UnitID,
		})
	}

	logrus.WithFields(logrus.Fields{
		"commodity_code": commodityCode,
		"market_year":    marketYear,
		"records":        len(records),
	}).Debug("esr: registros semanais obtidos")

	return records, nil
}
