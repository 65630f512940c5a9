// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/export-sales-api/internal/domain"
)

const (
	jobRunsTable = "job_runs"

	saveTimeout = 5 * time.Second
)

//go:generate mockgen -source=job_run.go -destination=mocks/mock_job_run.go -package=mocks

type JobRunRepository interface {
	SaveJobRun(entry *domain.JobRunEntry) error
	ListRecent(ctx context.Context, limit uint64) ([]*domain.JobRunEntry, error)
}

type jobRunRepository struct {
	conn postgres.Queryer
}

func NewJobRunRepository(conn postgres.Queryer) JobRunRepository {
	return &jobRunRepository{
		conn: conn,
	}
}

// SaveJobRun grava os metadados de uma execução. CreatedAt é preenchido quando vazio.
func (r *jobRunRepository) SaveJobRun(entry *domain.JobRunEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	sqlQuery, args, err := insertJobRunQuery(entry)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução %s: %w", entry.JobRunID, err)
	}

	logrus.WithFields(logrus.Fields{
		"id":         entry.ID,
		"job_run_id": entry.JobRunID,
		"status":     entry.Status,
	}).Debug("repository: execução registrada")

	return nil
}

// ListRecent devolve as últimas execuções, da mais recente para a mais antiga
func (r *jobRunRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.JobRunEntry, error) {
	sqlQuery, args, err := listRecentJobRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.JobRunEntry, 0)
	for rows.Next() {
		entry := &domain.JobRunEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.JobRunID,
			&entry.MarketYear,
			&entry.Status,
			&entry.Error,
			&entry.Commodities,
			&entry.DurationMS,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler execução: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar execuções: %w", err)
	}

	return entries, nil
}

func insertJobRunQuery(entry *domain.JobRunEntry) (string, []interface{}, error) {
	return squirrel.
		Insert(jobRunsTable).
		Columns(
			"id",
			"job_run_id",
			"market_year",
			"status",
			"error",
			"commodities",
			"duration_ms",
			"created_at",
		).
		Values(
			entry.ID,
			entry.JobRunID,
			entry.MarketYear,
			entry.Status,
			entry.Error,
			entry.Commodities,
			entry.DurationMS,
			entry.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func listRecentJobRunsQuery(limit uint64) (string, []interface{}, error) {
	if limit == 0 {
		limit = 20
	}

	return squirrel.
		Select(
			"id",
			"job_run_id",
			"market_year",
			"status",
			"error",
			"commodities",
			"duration_ms",
			"created_at",
		).
		From(jobRunsTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// NoopJobRunRepository descarta os registros quando o banco está desabilitado
type NoopJobRunRepository struct{}

func NewNoopJobRunRepository() *NoopJobRunRepository {
	return &NoopJobRunRepository{}
}

func (NoopJobRunRepository) SaveJobRun(*domain.JobRunEntry) error { return nil }

func (NoopJobRunRepository) ListRecent(context.Context, uint64) ([]*domain.JobRunEntry, error) {
	return []*domain.JobRunEntry{}, nil
}
