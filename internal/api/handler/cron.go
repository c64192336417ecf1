package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/internal/scheduler"
	"github.com/turviagens/ads-manager-api/pkg/apiErrors"
	"github.com/turviagens/ads-manager-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeLifecycle = "lifecycle"
	CronJobTypeAnalytics = "analytics"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AdLifecycleSyncService *scheduler.AdLifecycleSyncService
	AdAnalyticsSyncService *scheduler.AdAnalyticsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// O escopo da agregação pode ser restringido via query string
		date, err := parseDateParam(r, "date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		adID := r.URL.Query().Get("ad_id")

		switch cronType {
		case CronJobTypeLifecycle:
			if services.AdLifecycleSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrJobUnavailable, "Serviço do ciclo de vida de anúncios não disponível", nil)
				return
			}
			services.AdLifecycleSyncService.TriggerManualSync()

		case CronJobTypeAnalytics:
			if services.AdAnalyticsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrJobUnavailable, "Serviço de agregação diária não disponível", nil)
				return
			}
			services.AdAnalyticsSyncService.TriggerManualSync(date, adID)

		case CronJobTypeAll:
			if services.AdLifecycleSyncService != nil {
				services.AdLifecycleSyncService.TriggerManualSync()
			}
			if services.AdAnalyticsSyncService != nil {
				services.AdAnalyticsSyncService.TriggerManualSync(date, adID)
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: lifecycle, analytics, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}

		if services.AdLifecycleSyncService != nil {
			status["lifecycle"] = services.AdLifecycleSyncService.GetStatus()
		}
		if services.AdAnalyticsSyncService != nil {
			status["analytics"] = services.AdAnalyticsSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Erro ao enviar status das cron jobs:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// parseDateParam lê um parâmetro de data opcional da query string.
// Ausente vira time.Time zero (o job aplica o default de "ontem").
func parseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	date, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}

	return *date, nil
}
