package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/internal/config"
	"github.com/vfg2006/export-sales-api/internal/usecases/exportsales"
)

// UpstreamProbeConfig representa a configuração da verificação periódica da API ESR
type UpstreamProbeConfig struct {
	CronSchedule  string
	CommodityCode int
	MarketYear    string
	Enabled       bool
}

// UpstreamProbeService consulta uma commodity do ESR periodicamente para acompanhar a
// disponibilidade da API. O resultado não é usado pelo pipeline.
type UpstreamProbeService struct {
	scheduler *gocron.Scheduler
	config    UpstreamProbeConfig
	fetcher   exportsales.Fetcher

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastRecords     int
	lastError       string
}

// NewUpstreamProbeService cria uma nova instância do serviço de verificação
func NewUpstreamProbeService(fetcher exportsales.Fetcher, appConfig *config.Config) *UpstreamProbeService {
	probeConfig := UpstreamProbeConfig{
		CronSchedule:  appConfig.UpstreamProbe.CronSchedule,
		CommodityCode: appConfig.UpstreamProbe.CommodityCode,
		MarketYear:    appConfig.UpstreamProbe.MarketYear,
		Enabled:       appConfig.UpstreamProbe.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  probeConfig.CronSchedule,
		"commodity_code": probeConfig.CommodityCode,
		"market_year":    probeConfig.MarketYear,
		"enabled":        probeConfig.Enabled,
	}).Info("Configuração da verificação do ESR carregada")

	return &UpstreamProbeService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    probeConfig,
		fetcher:   fetcher,
	}
}

// Start inicia o agendador; não faz nada quando a verificação está desabilitada
func (s *UpstreamProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação do ESR desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação do ESR")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.probe(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do ESR: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação do ESR")
		s.scheduler.Stop()
	}()

	return nil
}

// probe executa uma busca; chamadas concorrentes são ignoradas
func (s *UpstreamProbeService) probe(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Verificação do ESR já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	records, err := s.fetcher.FetchWeeklyRecords(context.WithoutCancel(ctx), s.config.CommodityCode, s.config.MarketYear)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastRecords = len(records)
	s.lastError = ""

	logger := logrus.WithFields(logrus.Fields{
		"commodity_code": s.config.CommodityCode,
		"market_year":    s.config.MarketYear,
		"duration":       s.lastCompletedAt.Sub(s.lastStartedAt).String(),
	})

	if err != nil {
		s.lastError = err.Error()
		logger.WithError(err).Warn("Verificação do ESR falhou")
		return
	}

	logger.WithField("records", len(records)).Info("Verificação do ESR concluída")
}

// TriggerManualSync dispara uma verificação fora do agendamento
func (s *UpstreamProbeService) TriggerManualSync(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Verificação do ESR já em andamento, ignorando solicitação manual")
		return
	}
	s.mu.Unlock()

	logrus.Info("Iniciando verificação manual do ESR")
	go s.probe(ctx)
}

// GetStatus retorna o status atual do agendador e da última verificação
func (s *UpstreamProbeService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"probe_enabled":           s.config.Enabled,
		"probe_cron":              s.config.CronSchedule,
		"probe_commodity_code":    s.config.CommodityCode,
		"probe_market_year":       s.config.MarketYear,
		"probe_running":           s.running,
		"last_probe_started_at":   s.lastStartedAt,
		"last_probe_completed_at": s.lastCompletedAt,
		"last_probe_records":      s.lastRecords,
		"last_probe_error":        s.lastError,
	}
}
