package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/turviagens/ads-manager-api/pkg/apiErrors"
)

const adminKeyHeader = "X-Admin-Api-Key"

// AdminOnly protege as rotas operacionais (disparo manual de jobs, status)
// com uma chave estática de administrador. Uma chave vazia na configuração
// desabilita as rotas protegidas.
func AdminOnly(adminAPIKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminAPIKey == "" {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Rotas administrativas desabilitadas", nil)
				return
			}

			provided := r.Header.Get(adminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(adminAPIKey)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Chave de administrador inválida", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
