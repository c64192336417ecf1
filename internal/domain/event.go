package domain

import (
	"time"
)

type AdEventType string

const (
	AdEventImpression AdEventType = "impression"
	AdEventClick      AdEventType = "click"
)

// AdEvent é um evento bruto de veiculação (impressão ou clique), gravado
// pelo caminho de serving. Este serviço apenas lê esses registros.
type AdEvent struct {
	ID         int64       `json:"id"`
	AdID       string      `json:"ad_id"`
	EventType  AdEventType `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// AdEventTotals agrega os totais de um anúncio em um dia de calendário
type AdEventTotals struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
}
