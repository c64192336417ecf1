package domain

import (
	"time"
)

// AuditAction identifica a transição registrada na trilha de auditoria
type AuditAction string

const (
	AuditActionAutoActivated   AuditAction = "auto_activated"
	AuditActionAutoExpired     AuditAction = "auto_expired"
	AuditActionAutoDeactivated AuditAction = "auto_deactivated"
)

// AdAuditEntry é um registro imutável de uma transição de estado de anúncio.
// Actor nulo indica transição iniciada pelo sistema.
type AdAuditEntry struct {
	ID        string         `json:"id"`
	AdID      string         `json:"ad_id"`
	Action    AuditAction    `json:"action"`
	Actor     *string        `json:"actor"`
	Detail    map[string]any `json:"detail"`
	CreatedAt time.Time      `json:"created_at"`
}
