package handler

import (
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/export-sales-api/internal/domain"
	"github.com/vfg2006/export-sales-api/internal/usecases/exportsales"
	"github.com/vfg2006/export-sales-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxRequestBody limita o corpo aceito; o payload real tem poucas dezenas de bytes
const maxRequestBody = 1 << 20

// RunExportSales lê o corpo bruto e devolve o envelope com o status decidido pelo job
func RunExportSales(runner exportsales.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
		if err != nil {
			logger.WithError(err).Warn("export-sales: erro ao ler o corpo da requisição")
			body = nil
		}

		status, response := runner.HandleRequest(r.Context(), body)
		writeJobResponse(w, status, response)
	}
}

func writeJobResponse(w http.ResponseWriter, status int, response domain.JobResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		logrus.WithError(err).Error("export-sales: erro ao serializar a resposta")
		status = http.StatusInternalServerError
		payload = []byte(`{"jobRunID":` + strconv.Quote(response.JobRunID) + `,"status":"errored","error":{"name":"SerializationError","message":"erro ao serializar a resposta"}}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		logrus.WithError(err).Warn("export-sales: erro ao escrever a resposta")
	}
}
