package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/internal/usecases/reporting"
	"github.com/turviagens/ads-manager-api/pkg/apiErrors"
)

// GetAdAuditTrail retorna a trilha de auditoria de um anúncio, do registro
// mais recente para o mais antigo
func GetAdAuditTrail(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio não especificado", nil)
			return
		}

		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.GetAuditTrail(r.Context(), adID, limit)
		if err != nil {
			if errors.Is(err, reporting.ErrAdNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)
				return
			}
			logrus.Error("Erro ao buscar trilha de auditoria:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar trilha de auditoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error("Erro ao enviar trilha de auditoria:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
