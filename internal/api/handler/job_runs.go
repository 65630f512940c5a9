package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/export-sales-api/infrastructure/repository"
	"github.com/vfg2006/export-sales-api/pkg/apiErrors"
	"github.com/vfg2006/export-sales-api/pkg/log"
)

const maxJobRunsLimit = 100

// ListJobRuns devolve os metadados das últimas execuções registradas
func ListJobRuns(repo repository.JobRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(20)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 || parsed > maxJobRunsLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit deve estar entre 1 e 100", nil)
				return
			}
			limit = parsed
		}

		entries, err := repo.ListRecent(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("job-runs: erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao listar execuções", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}
