package domain

import (
	"time"
)

// AdStatus representa o status editorial de um anúncio
type AdStatus string

const (
	AdStatusDraft    AdStatus = "draft"
	AdStatusPending  AdStatus = "pending"
	AdStatusApproved AdStatus = "approved"
	AdStatusRejected AdStatus = "rejected"
	AdStatusArchived AdStatus = "archived"
)

// Ad representa um anúncio de pacote de viagem veiculado na plataforma.
// Os contadores impressions_count e clicks_count são incrementados pelo
// caminho de veiculação; aqui eles são somente leitura.
type Ad struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Status           AdStatus   `json:"status"`
	IsActive         bool       `json:"is_active"`
	StartAt          *time.Time `json:"start_at"`
	EndAt            *time.Time `json:"end_at"`
	MaxImpressions   *int64     `json:"max_impressions"`
	MaxClicks        *int64     `json:"max_clicks"`
	ImpressionsCount int64      `json:"impressions_count"`
	ClicksCount      int64      `json:"clicks_count"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// AdCriteria é o predicado tipado consumido pelo repositório de anúncios.
// Cada campo nil é ignorado na montagem da query.
type AdCriteria struct {
	Status   *AdStatus
	IsActive *bool

	// StartAtBefore seleciona anúncios com start_at definido e <= ao instante
	StartAtBefore *time.Time
	// EndAtAfterOrUnset seleciona anúncios com end_at nulo ou > ao instante
	EndAtAfterOrUnset *time.Time
	// EndAtBefore seleciona anúncios com end_at definido e <= ao instante
	EndAtBefore *time.Time

	// ImpressionsExhausted seleciona anúncios com max_impressions definido
	// e impressions_count >= max_impressions
	ImpressionsExhausted bool
	// ClicksExhausted seleciona anúncios com max_clicks definido
	// e clicks_count >= max_clicks
	ClicksExhausted bool
}
