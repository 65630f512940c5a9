package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/infrastructure/repository"
	"github.com/vfg2006/export-sales-api/internal/api/handler"
	"github.com/vfg2006/export-sales-api/internal/api/handler/router"
	"github.com/vfg2006/export-sales-api/internal/config"
	"github.com/vfg2006/export-sales-api/internal/observability/metrics"
	"github.com/vfg2006/export-sales-api/internal/scheduler"
	"github.com/vfg2006/export-sales-api/internal/usecases/exportsales"
	"github.com/vfg2006/export-sales-api/pkg/apiErrors"
	"github.com/vfg2006/export-sales-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	runner exportsales.Runner,
	jobRunRepo repository.JobRunRepository,
	upstreamProbeService *scheduler.UpstreamProbeService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if upstreamProbeService != nil {
		cronServices.UpstreamProbeService = upstreamProbeService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(metrics.Handler())...),
		router.WithRoutes(handler.ExportSales(runner)...),
		router.WithRoutes(handler.JobRuns(jobRunRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithFallbacks(apiErrors.NotFoundHandler(), apiErrors.MethodNotAllowedHandler()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Buscas em andamento no ESR podem levar vários segundos com retentativas
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "30s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
