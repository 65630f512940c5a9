package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/export-sales-api/infrastructure/integrator/usda"
	"github.com/vfg2006/export-sales-api/infrastructure/integrator/usda/esrclient"
	"github.com/vfg2006/export-sales-api/infrastructure/repository"
	"github.com/vfg2006/export-sales-api/internal/api"
	"github.com/vfg2006/export-sales-api/internal/catalog"
	"github.com/vfg2006/export-sales-api/internal/config"
	"github.com/vfg2006/export-sales-api/internal/observability/metrics"
	"github.com/vfg2006/export-sales-api/internal/scheduler"
	"github.com/vfg2006/export-sales-api/internal/usecases/exportsales"
	"github.com/vfg2006/export-sales-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := catalog.Default()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o catálogo de commodities")
	}

	jobRunRepo, closeDB := jobRunRepository(ctx, cfg)
	defer closeDB()

	esrClient := esrclient.NewClient(cfg)
	usdaIntegrator := usda.New(esrClient)

	exportSalesService := exportsales.NewService(cfg, cat, usdaIntegrator, jobRunRepo)

	upstreamProbeService := scheduler.NewUpstreamProbeService(usdaIntegrator, cfg)
	if err := upstreamProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação do ESR")
	}

	server, err := api.New(cfg, exportSalesService, jobRunRepo, upstreamProbeService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	// Aguarda as gravações de auditoria antes de fechar o banco
	exportSalesService.Wait()
}

// jobRunRepository devolve o repositório de auditoria; sem banco habilitado usa o noop
func jobRunRepository(ctx context.Context, cfg *config.Config) (repository.JobRunRepository, func()) {
	if !cfg.Database.Enabled {
		logrus.Info("Banco de dados desabilitado, auditoria das execuções não será gravada")
		return repository.NewNoopJobRunRepository(), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	return repository.NewJobRunRepository(conn), func() { _ = conn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
