package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/export-sales-api/internal/config"
	"github.com/vfg2006/export-sales-api/pkg/log"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS job_runs (
		id           VARCHAR(32) PRIMARY KEY,
		job_run_id   VARCHAR(128) NOT NULL,
		market_year  VARCHAR(8) NOT NULL DEFAULT '',
		status       VARCHAR(16) NOT NULL,
		error        TEXT NOT NULL DEFAULT '',
		commodities  INTEGER NOT NULL DEFAULT 0,
		duration_ms  BIGINT NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_runs_created_at ON job_runs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_job_runs_job_run_id ON job_runs (job_run_id)`,
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("erro ao carregar configuração: %v", err)
	}
	log.Configure(cfg.App.LogLevel)

	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("erro ao conectar ao banco: %v", err)
	}
	defer conn.Close()

	for i, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			logrus.Fatalf("erro ao executar statement %d/%d: %v", i+1, len(statements), err)
		}
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída")
}
