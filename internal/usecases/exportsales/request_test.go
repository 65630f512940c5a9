package exportsales

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/export-sales-api/internal/domain"
)

func TestDecodeAndParseRequest(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedReq   domain.JobRequest
		expectedError error
	}{
		{
			name:        "ano em data.year",
			body:        `{"id":"abc","data":{"year":"2023"}}`,
			expectedReq: domain.JobRequest{JobRunID: "abc", MarketYear: "2023"},
		},
		{
			name:        "ano em data.marketYear",
			body:        `{"id":"abc","data":{"marketYear":"2022"}}`,
			expectedReq: domain.JobRequest{JobRunID: "abc", MarketYear: "2022"},
		},
		{
			name:        "id ausente usa o padrão",
			body:        `{"data":{"year":" 2023 "}}`,
			expectedReq: domain.JobRequest{JobRunID: domain.DefaultJobRunID, MarketYear: "2023"},
		},
		{
			name:        "campos desconhecidos são ignorados",
			body:        `{"id":"1","data":{"code":"101","year":"2023"}}`,
			expectedReq: domain.JobRequest{JobRunID: "1", MarketYear: "2023"},
		},
		{
			name:          "corpo vazio",
			body:          "",
			expectedError: ErrInvalidRequest,
		},
		{
			name:          "json inválido",
			body:          `{"id":`,
			expectedError: ErrInvalidRequest,
		},
		{
			name:          "sem data",
			body:          `{}`,
			expectedReq:   domain.JobRequest{JobRunID: domain.DefaultJobRunID},
			expectedError: ErrMissingYear,
		},
		{
			name:          "data sem ano",
			body:          `{"id":"7","data":{}}`,
			expectedReq:   domain.JobRequest{JobRunID: "7"},
			expectedError: ErrMissingYear,
		},
		{
			name:          "ano não numérico",
			body:          `{"id":"7","data":{"year":"twenty"}}`,
			expectedReq:   domain.JobRequest{JobRunID: "7", MarketYear: "TWENTY"},
			expectedError: ErrInvalidYear,
		},
		{
			name:          "ano com ponto decimal",
			body:          `{"id":"7","data":{"year":"1.23"}}`,
			expectedReq:   domain.JobRequest{JobRunID: "7", MarketYear: "1.23"},
			expectedError: ErrInvalidYear,
		},
		{
			name:          "ano com sinal negativo",
			body:          `{"id":"7","data":{"year":"-202"}}`,
			expectedReq:   domain.JobRequest{JobRunID: "7", MarketYear: "-202"},
			expectedError: ErrInvalidYear,
		},
		{
			name:          "ano com sinal positivo",
			body:          `{"id":"7","data":{"year":"+202"}}`,
			expectedReq:   domain.JobRequest{JobRunID: "7", MarketYear: "+202"},
			expectedError: ErrInvalidYear,
		},
		{
			name:          "ano com tamanho errado",
			body:          `{"id":"7","data":{"year":"23"}}`,
			expectedReq:   domain.JobRequest{JobRunID: "7", MarketYear: "23"},
			expectedError: ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := DecodeRequest([]byte(tt.body))
			if err == nil {
				var req domain.JobRequest
				req, err = ParseRequest(payload)
				assert.Equal(t, tt.expectedReq, req)
			}

			if tt.expectedError == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedError), "erro inesperado: %v", err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}
