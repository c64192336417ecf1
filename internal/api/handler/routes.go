package handler

import (
	"net/http"

	"github.com/turviagens/ads-manager-api/internal/api/handler/router"
	"github.com/turviagens/ads-manager-api/internal/usecases/aggregating"
	"github.com/turviagens/ads-manager-api/internal/usecases/reporting"
	"github.com/turviagens/ads-manager-api/pkg/middleware"
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

func CronJobs(services CronJobServices, adminAPIKey string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(adminAPIKey)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(adminAPIKey)},
		},
	}
}

func AdStats(reportingService reporting.ReportingService, aggregator aggregating.AdAggregator, adminAPIKey string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads/:id/stats",
			Method:  http.MethodGet,
			Handler: GetAdDailyStats(reportingService),
		},
		{
			Path:        "/v1/ads/:id/stats/aggregate",
			Method:      http.MethodPost,
			Handler:     AggregateAdStats(aggregator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(adminAPIKey)},
		},
	}
}

func AdAudit(reportingService reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads/:id/audit",
			Method:  http.MethodGet,
			Handler: GetAdAuditTrail(reportingService),
		},
	}
}
