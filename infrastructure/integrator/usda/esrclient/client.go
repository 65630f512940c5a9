package esrclient

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

import (
	"context"
	"net/http"
	"time"

	usdadomain "github.com/vfg2006/export-sales-api/infrastructure/integrator/usda/domain"
	"github.com/vfg2006/export-sales-api/internal/config"
)

type Client interface {
	GetExportsByCommodity(ctx context.Context, commodityCode int, marketYear string) ([]usdadomain.ExportRecord, error)
}

type ESRClient struct {
	httpClient *http.Client
	config     config.ESR
	wait       func(ctx context.Context, d time.Duration) error
}

// NewClient cria uma nova instância do cliente da API ESR
func NewClient(cfg *config.Config) Client {
	return &ESRClient{
		httpClient: &http.Client{
			Timeout: cfg.ESR.Timeout,
		},
		config: cfg.ESR,
		wait:   sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
