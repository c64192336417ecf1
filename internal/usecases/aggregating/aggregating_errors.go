package aggregating

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de validação de escopo
var (
	ErrAdIDRequired = errors.New("ID do anúncio é obrigatório")
	ErrAdNotFound   = errors.New("anúncio não encontrado")
	ErrInvalidDate  = errors.New("data de agregação inválida")
	ErrFutureDate   = errors.New("data de agregação no futuro")
)

// PartialBatchError indica que parte dos anúncios falhou durante a
// agregação de escopo completo enquanto os demais foram processados.
type PartialBatchError struct {
	Failed    int
	FailedIDs []string // primeiros identificadores com falha, para diagnóstico
}

func (e *PartialBatchError) Error() string {
	if len(e.FailedIDs) == 0 {
		return fmt.Sprintf("%d anúncios falharam na agregação", e.Failed)
	}
	return fmt.Sprintf("%d anúncios falharam na agregação (ex.: %s)", e.Failed, strings.Join(e.FailedIDs, ", "))
}
