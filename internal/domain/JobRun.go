package domain

import "time"

const (
	JobStatusSuccess = "success"
	JobStatusErrored = "errored"

	// DefaultJobRunID é usado quando a requisição não informa o id do job
	DefaultJobRunID = "1"
)

// JobRequest é a entrada já validada de uma execução
type JobRequest struct {
	JobRunID   string
	MarketYear string
}

// ErrorDetails descreve a falha devolvida no envelope de erro
type ErrorDetails struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// JobResponse é o envelope devolvido para todas as execuções, com sucesso ou erro
type JobResponse struct {
	JobRunID string            `json:"jobRunID"`
	Status   string            `json:"status"`
	Data     []CommodityResult `json:"data,omitempty"`
	Error    *ErrorDetails     `json:"error,omitempty"`
}

// JobRunEntry representa o registro de auditoria de uma execução armazenado no banco.
// Guarda apenas metadados da execução, nunca as séries calculadas.
type JobRunEntry struct {
	ID          string    `json:"id"`
	JobRunID    string    `json:"job_run_id"`
	MarketYear  string    `json:"market_year"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	Commodities int       `json:"commodities"`
	DurationMS  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}
