package exportsales

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/export-sales-api/internal/domain"
)

// Fetcher busca os registros semanais de uma commodity para um ano de mercado.
// A política de retentativas é responsabilidade de quem implementa.
type Fetcher interface {
	FetchWeeklyRecords(ctx context.Context, commodityCode int, marketYear string) ([]domain.WeeklyRecord, error)
}

// JobRunRecorder registra os metadados de cada execução
type JobRunRecorder interface {
	SaveJobRun(entry *domain.JobRunEntry) error
}

// Runner é o ponto de entrada comum a todos os adaptadores de transporte (HTTP, CLI)
type Runner interface {
	// HandleRequest decodifica e valida o corpo bruto e executa o job
	HandleRequest(ctx context.Context, body []byte) (int, domain.JobResponse)

	// Execute valida uma requisição já decodificada e executa o job
	Execute(ctx context.Context, payload RequestPayload) (int, domain.JobResponse)
}
