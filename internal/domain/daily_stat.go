package domain

import (
	"time"
)

// AdDailyStat é a projeção diária materializada dos eventos brutos de um
// anúncio. Existe no máximo uma linha por par (anúncio, data); a
// reagregação substitui a linha inteira.
type AdDailyStat struct {
	AdID        string    `json:"ad_id"`
	StatDate    time.Time `json:"stat_date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CTR         float64   `json:"ctr"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
