package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/internal/usecases/aggregating"
	"github.com/turviagens/ads-manager-api/internal/usecases/reporting"
	"github.com/turviagens/ads-manager-api/pkg/apiErrors"
)

// GetAdDailyStats retorna as estatísticas diárias de um anúncio em um período
func GetAdDailyStats(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não especificado", nil)
			return
		}

		endDate, err := parseDateParam(r, "end_date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		if endDate.IsZero() {
			endDate = time.Now().AddDate(0, 0, -1)
		}

		startDate, err := parseDateParam(r, "start_date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		if startDate.IsZero() {
			// Janela padrão: últimos 30 dias
			startDate = endDate.AddDate(0, 0, -29)
		}

		stats, err := service.GetDailyStats(r.Context(), adID, startDate, endDate)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrAdNotFound):
				apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)
			case errors.Is(err, reporting.ErrInvalidPeriod):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido", nil)
			default:
				logrus.Error("Erro ao buscar estatísticas diárias:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar estatísticas diárias", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error("Erro ao enviar estatísticas diárias:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// AggregateAdStats reagrega de forma síncrona as estatísticas de um
// anúncio para uma data específica
func AggregateAdStats(aggregator aggregating.AdAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não especificado", nil)
			return
		}

		date, err := parseDateParam(r, "date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if err := aggregator.AggregateForDate(r.Context(), adID, date); err != nil {
			switch {
			case errors.Is(err, aggregating.ErrAdNotFound):
				apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)
			case errors.Is(err, aggregating.ErrFutureDate), errors.Is(err, aggregating.ErrInvalidDate):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de agregação inválida", err.Error())
			default:
				logrus.Error("Erro ao reagregar estatísticas do anúncio:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao reagregar estatísticas", nil)
			}
			return
		}

		response := map[string]any{
			"message": "Agregação concluída com sucesso",
			"ad_id":   adID,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
