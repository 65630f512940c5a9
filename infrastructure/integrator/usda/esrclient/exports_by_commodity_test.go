package esrclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/export-sales-api/internal/config"
)

const sampleBody = `[
	{"commodityCode":101,"countryCode":5700,"weeklyExports":100,"grossNewSales":1500.5,"unitId":1,"weekEndingDate":"2023-01-05T00:00:00"},
	{"commodityCode":101,"countryCode":1220,"weeklyExports":0,"grossNewSales":250,"unitId":1,"weekEndingDate":"2023-01-05T00:00:00"}
]`

func newTestClient(baseURL string, maxRetries int) *ESRClient {
	cfg := &config.Config{
		ESR: config.ESR{
			BaseURL:    baseURL,
			APIKey:     "secret",
			Timeout:    2 * time.Second,
			MaxRetries: maxRetries,
			RetryDelay: time.Millisecond,
		},
	}
	return NewClient(cfg).(*ESRClient)
}

func TestESRClient_GetExportsByCommodity(t *testing.T) {
	tests := []struct {
		name      string
		responses []func(w http.ResponseWriter)
		retries   int
		validate  func(t *testing.T, calls int32, err error, rows int)
	}{
		{
			name: "sucesso na primeira tentativa",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) { w.Write([]byte(sampleBody)) },
			},
			retries: 3,
			validate: func(t *testing.T, calls int32, err error, rows int) {
				require.NoError(t, err)
				assert.Equal(t, int32(1), calls)
				assert.Equal(t, 2, rows)
			},
		},
		{
			name: "corpo de erro do ESR é tentado novamente",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) { w.Write([]byte(`{"Response":"Error"}`)) },
				func(w http.ResponseWriter) { w.WriteHeader(http.StatusBadGateway) },
				func(w http.ResponseWriter) { w.Write([]byte(sampleBody)) },
			},
			retries: 3,
			validate: func(t *testing.T, calls int32, err error, rows int) {
				require.NoError(t, err)
				assert.Equal(t, int32(3), calls)
				assert.Equal(t, 2, rows)
			},
		},
		{
			name: "retentativas esgotadas",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) { w.WriteHeader(http.StatusServiceUnavailable) },
			},
			retries: 2,
			validate: func(t *testing.T, calls int32, err error, rows int) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrRetriesExhausted))
				assert.Equal(t, int32(3), calls)
			},
		},
		{
			name: "erro do cliente não é tentado novamente",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) { w.WriteHeader(http.StatusUnauthorized) },
			},
			retries: 3,
			validate: func(t *testing.T, calls int32, err error, rows int) {
				require.Error(t, err)
				assert.False(t, errors.Is(err, ErrRetriesExhausted))
				assert.Contains(t, err.Error(), "401")
				assert.Equal(t, int32(1), calls)
			},
		},
		{
			name: "lista vazia é sucesso",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) { w.Write([]byte(`[]`)) },
			},
			retries: 3,
			validate: func(t *testing.T, calls int32, err error, rows int) {
				require.NoError(t, err)
				assert.Equal(t, 0, rows)
			},
		},
		{
			name: "corpo inválido",
			responses: []func(w http.ResponseWriter){
				func(w http.ResponseWriter) { w.Write([]byte(`not json`)) },
			},
			retries: 3,
			validate: func(t *testing.T, calls int32, err error, rows int) {
				require.Error(t, err)
				assert.Equal(t, int32(1), calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&calls, 1)

				assert.Equal(t, "/OpenData/api/esr/exports/commodityCode/101/allCountries/marketYear/2023", r.URL.Path)
				assert.Equal(t, "secret", r.Header.Get("API_KEY"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				idx := int(n) - 1
				if idx >= len(tt.responses) {
					idx = len(tt.responses) - 1
				}
				tt.responses[idx](w)
			}))
			defer server.Close()

			client := newTestClient(server.URL+"/OpenData", tt.retries)
			rows, err := client.GetExportsByCommodity(context.Background(), 101, "2023")

			tt.validate(t, atomic.LoadInt32(&calls), err, len(rows))
		})
	}
}

func TestESRClient_BackoffRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5)

	var waits []time.Duration
	client.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		if len(waits) == 3 {
			return context.Canceled
		}
		return nil
	}

	_, err := client.GetExportsByCommodity(context.Background(), 801, "2023")

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, waits)
}
