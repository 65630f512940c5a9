package esrclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	usdadomain "github.com/vfg2006/export-sales-api/infrastructure/integrator/usda/domain"
	"github.com/vfg2006/export-sales-api/internal/observability/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrRetriesExhausted indica que todas as tentativas falharam com erros temporários
var ErrRetriesExhausted = errors.New("esr: retries exhausted")

// retryableError marca falhas que justificam uma nova tentativa
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// GetExportsByCommodity busca as vendas semanais de todos os países para uma commodity.
// Falhas de transporte, status 429/5xx e corpos {"Response":"Error"} são tentados novamente
// com espera exponencial.
func (c *ESRClient) GetExportsByCommodity(ctx context.Context, commodityCode int, marketYear string) ([]usdadomain.ExportRecord, error) {
	endpoint, err := c.exportsURL(commodityCode, marketYear)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.config.RetryDelay * time.Duration(1<<uint(attempt-1))
			logrus.WithError(lastErr).WithFields(logrus.Fields{
				"commodity_code": commodityCode,
				"attempt":        attempt + 1,
				"backoff":        backoff.String(),
			}).Warn("esr: requisição falhou, tentando novamente")

			if err := c.wait(ctx, backoff); err != nil {
				return nil, fmt.Errorf("esr: espera interrompida: %w", err)
			}
		}

		records, err := c.doRequest(ctx, endpoint)
		if err == nil {
			return records, nil
		}

		var retryable *retryableError
		if !errors.As(err, &retryable) {
			return nil, err
		}
		lastErr = retryable.err
	}

	return nil, fmt.Errorf("%w após %d tentativas: %v", ErrRetriesExhausted, c.config.MaxRetries+1, lastErr)
}

func (c *ESRClient) exportsURL(commodityCode int, marketYear string) (string, error) {
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	endpoint.Path = path.Join(
		"/", endpoint.Path,
		"api/esr/exports/commodityCode", strconv.Itoa(commodityCode),
		"allCountries/marketYear", url.PathEscape(marketYear),
	)

	return endpoint.String(), nil
}

func (c *ESRClient) doRequest(ctx context.Context, endpoint string) ([]usdadomain.ExportRecord, error) {
	metrics.ObserveFetchAttempt()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("API_KEY", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
		}
		return nil, &retryableError{err: fmt.Errorf("erro ao executar a requisição: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("erro ao ler a resposta: %w", err)}
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return nil, &retryableError{err: fmt.Errorf("requisição falhou com status: %s", resp.Status)}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var errorResponse usdadomain.ErrorResponse
		if err := json.Unmarshal(trimmed, &errorResponse); err == nil && errorResponse.IsRetryable() {
			return nil, &retryableError{err: fmt.Errorf("api devolveu erro: %s", errorResponse.Message)}
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var records []usdadomain.ExportRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return records, nil
}
