package exportsales

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/internal/catalog"
	"github.com/vfg2006/export-sales-api/internal/config"
	"github.com/vfg2006/export-sales-api/internal/domain"
	"github.com/vfg2006/export-sales-api/internal/observability/metrics"
	"github.com/vfg2006/export-sales-api/pkg/log"
	"github.com/vfg2006/export-sales-api/pkg/utils"
)

// Service orquestra a busca paralela e o pipeline de agregação de cada commodity
type Service struct {
	catalog     catalog.Reader
	fetcher     Fetcher
	recorder    JobRunRecorder
	monthOffset int

	// Gravações de auditoria em andamento
	pending sync.WaitGroup
}

type fetchResult struct {
	index   int
	code    int
	records []domain.WeeklyRecord
	err     error
}

// NewService cria uma nova instância do serviço de vendas de exportação
func NewService(
	cfg *config.Config,
	cat catalog.Reader,
	fetcher Fetcher,
	recorder JobRunRecorder,
) *Service {
	return &Service{
		catalog:     cat,
		fetcher:     fetcher,
		recorder:    recorder,
		monthOffset: cfg.Pipeline.MonthOffset,
	}
}

// HandleRequest decodifica o corpo bruto e executa o job
func (s *Service) HandleRequest(ctx context.Context, body []byte) (int, domain.JobResponse) {
	payload, err := DecodeRequest(body)
	if err != nil {
		return s.finish(ctx, domain.JobRequest{JobRunID: domain.DefaultJobRunID}, time.Now(), nil, err)
	}

	return s.Execute(ctx, payload)
}

// Execute valida o payload e executa o job; falhas de validação não disparam nenhuma busca
func (s *Service) Execute(ctx context.Context, payload RequestPayload) (int, domain.JobResponse) {
	req, err := ParseRequest(payload)
	if err != nil {
		return s.finish(ctx, req, time.Now(), nil, err)
	}

	return s.Run(ctx, req)
}

// Run busca todas as commodities do catálogo em paralelo e aplica o pipeline a cada uma.
//
// A primeira falha encerra a execução imediatamente. As buscas ainda em andamento não são
// canceladas nem aguardadas; seus resultados são descartados.
func (s *Service) Run(ctx context.Context, req domain.JobRequest) (int, domain.JobResponse) {
	startTime := time.Now()
	logger := log.ForContext(ctx)

	codes := s.catalog.CommodityCodes()

	logger.WithFields(log.Fields{
		"job_run_id":  req.JobRunID,
		"market_year": req.MarketYear,
		"commodities": len(codes),
	}).Info("export-sales: iniciando busca das commodities")

	// Buffer do tamanho total para que buscas tardias nunca fiquem bloqueadas
	results := make(chan fetchResult, len(codes))
	fetchCtx := context.WithoutCancel(ctx)

	for i, code := range codes {
		go func(index, code int) {
			records, err := s.fetch(fetchCtx, code, req.MarketYear)
			results <- fetchResult{index: index, code: code, records: records, err: err}
		}(i, code)
	}

	collected := make([][]domain.WeeklyRecord, len(codes))
	for range codes {
		res := <-results
		if res.err != nil {
			logger.WithError(res.err).WithFields(log.Fields{
				"job_run_id":     req.JobRunID,
				"commodity_code": res.code,
			}).Error("export-sales: falha na busca, abortando execução")

			return s.finish(ctx, req, startTime, nil, res.err)
		}
		collected[res.index] = res.records
	}

	data := make([]domain.CommodityResult, 0, len(codes))
	for i, code := range codes {
		result, err := s.buildResult(code, collected[i])
		if err != nil {
			return s.finish(ctx, req, startTime, nil, err)
		}
		data = append(data, result)
	}

	return s.finish(ctx, req, startTime, data, nil)
}

func (s *Service) fetch(ctx context.Context, code int, marketYear string) ([]domain.WeeklyRecord, error) {
	commodity := strconv.Itoa(code)

	records, err := s.fetcher.FetchWeeklyRecords(ctx, code, marketYear)
	if err != nil {
		metrics.ObserveFetch(commodity, metrics.ResultError)
		var pipelineErr *Error
		if errors.As(err, &pipelineErr) {
			return nil, err
		}
		return nil, NewFetchError(code, err)
	}

	if len(records) == 0 {
		metrics.ObserveFetch(commodity, metrics.ResultError)
		return nil, NewEmptyRecordSetError(code)
	}

	metrics.ObserveFetch(commodity, metrics.ResultSuccess)
	return records, nil
}

// buildResult aplica agregação, janela e momento a uma commodity
func (s *Service) buildResult(code int, records []domain.WeeklyRecord) (domain.CommodityResult, error) {
	buckets, err := Aggregate(records, s.catalog)
	if err != nil {
		var pipelineErr *Error
		if errors.As(err, &pipelineErr) {
			pipelineErr.CommodityCode = code
		}
		return domain.CommodityResult{}, err
	}

	points := Window(buckets, s.monthOffset)

	return domain.CommodityResult{
		CommodityCode:    code,
		CommodityName:    s.catalog.CommodityName(code),
		Data:             points,
		CumulativeChange: domain.Metric(CumulativeChange(points)),
	}, nil
}

// finish monta o envelope, registra métricas e a auditoria da execução
func (s *Service) finish(
	ctx context.Context,
	req domain.JobRequest,
	startTime time.Time,
	data []domain.CommodityResult,
	err error,
) (int, domain.JobResponse) {
	duration := time.Since(startTime)
	logger := log.ForContext(ctx)

	statusCode := http.StatusOK
	response := domain.JobResponse{
		JobRunID: req.JobRunID,
		Status:   domain.JobStatusSuccess,
		Data:     data,
	}
	result := metrics.ResultSuccess

	if err != nil {
		statusCode = http.StatusInternalServerError
		response = domain.JobResponse{
			JobRunID: req.JobRunID,
			Status:   domain.JobStatusErrored,
			Error: &domain.ErrorDetails{
				Name:    string(KindOf(err)),
				Message: err.Error(),
			},
		}
		result = metrics.ResultError
	}

	metrics.ObserveJob(result, duration)
	s.record(req, response, duration)

	logger.WithFields(log.Fields{
		"job_run_id":  req.JobRunID,
		"status":      response.Status,
		"duration_ms": duration.Milliseconds(),
	}).Info("export-sales: execução finalizada")

	return statusCode, response
}

// record grava a auditoria em segundo plano; um banco lento não atrasa a resposta
func (s *Service) record(req domain.JobRequest, response domain.JobResponse, duration time.Duration) {
	if s.recorder == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("export-sales: erro ao gerar id do registro de auditoria")
		return
	}

	entry := &domain.JobRunEntry{
		ID:          id,
		JobRunID:    req.JobRunID,
		MarketYear:  req.MarketYear,
		Status:      response.Status,
		Commodities: len(response.Data),
		DurationMS:  duration.Milliseconds(),
	}
	if response.Error != nil {
		entry.Error = response.Error.Message
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		if err := s.recorder.SaveJobRun(entry); err != nil {
			logrus.WithError(err).WithField("job_run_id", entry.JobRunID).
				Warn("export-sales: erro ao salvar auditoria da execução")
		}
	}()
}

// Wait bloqueia até que as gravações de auditoria pendentes terminem
func (s *Service) Wait() {
	s.pending.Wait()
}
