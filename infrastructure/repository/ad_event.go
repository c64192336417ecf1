package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/turviagens/ads-manager-api/infrastructure/database/postgres"
	"github.com/turviagens/ads-manager-api/internal/domain"
)

const (
	adEventsTable = "ad_events ae"
)

// AdEventRepository lê os eventos brutos gravados pelo caminho de
// veiculação. Este serviço nunca escreve nessa tabela.
type AdEventRepository interface {
	TotalsForDay(ctx context.Context, adID string, dayStart, dayEnd time.Time) (*domain.AdEventTotals, error)
}

type adEventRepository struct {
	conn *postgres.Connection
}

func NewAdEventRepository(conn *postgres.Connection) AdEventRepository {
	return &adEventRepository{
		conn: conn,
	}
}

// TotalsForDay soma impressões e cliques do anúncio no intervalo
// [dayStart, dayEnd). Os limites do dia são calculados pelo chamador para
// manter a política de fuso horário em um único lugar.
func (r *adEventRepository) TotalsForDay(ctx context.Context, adID string, dayStart, dayEnd time.Time) (*domain.AdEventTotals, error) {
	query, args, err := squirrel.
		Select(
			fmt.Sprintf("COUNT(*) FILTER (WHERE ae.event_type = '%s') AS impressions", domain.AdEventImpression),
			fmt.Sprintf("COUNT(*) FILTER (WHERE ae.event_type = '%s') AS clicks", domain.AdEventClick),
		).
		From(adEventsTable).
		Where(squirrel.Eq{"ae.ad_id": adID}).
		Where(squirrel.GtOrEq{"ae.occurred_at": dayStart}).
		Where(squirrel.Lt{"ae.occurred_at": dayEnd}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.AdEventTotals{}

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&totals.Impressions, &totals.Clicks); err != nil {
		return nil, fmt.Errorf("erro ao somar eventos do anúncio: %w", err)
	}

	return totals, nil
}
