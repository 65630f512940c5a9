package handler

import (
	"net/http"

	"github.com/vfg2006/export-sales-api/infrastructure/repository"
	"github.com/vfg2006/export-sales-api/internal/api/handler/router"
	"github.com/vfg2006/export-sales-api/internal/usecases/exportsales"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

// ExportSales expõe o job na raiz, como o adaptador original, e em um caminho versionado
func ExportSales(runner exportsales.Runner) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodPost,
			Handler: RunExportSales(runner),
		},
		{
			Path:    "/v1/export-sales",
			Method:  http.MethodPost,
			Handler: RunExportSales(runner),
		},
	}
}

func JobRuns(repo repository.JobRunRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/job-runs",
			Method:  http.MethodGet,
			Handler: ListJobRuns(repo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
