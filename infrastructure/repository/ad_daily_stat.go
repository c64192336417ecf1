package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/turviagens/ads-manager-api/infrastructure/database/postgres"
	"github.com/turviagens/ads-manager-api/internal/domain"
)

const (
	adDailyStatsTable = "ad_daily_stats ads"
)

type AdDailyStatRepository interface {
	SaveOrUpdate(ctx context.Context, stat *domain.AdDailyStat) error
	GetByAdAndDate(ctx context.Context, adID string, date time.Time) (*domain.AdDailyStat, error)
	ListByAdAndPeriod(ctx context.Context, adID string, startDate, endDate time.Time) ([]*domain.AdDailyStat, error)
}

type adDailyStatRepository struct {
	conn *postgres.Connection
}

func NewAdDailyStatRepository(conn *postgres.Connection) AdDailyStatRepository {
	return &adDailyStatRepository{
		conn: conn,
	}
}

// SaveOrUpdate substitui integralmente a linha do par (anúncio, data).
// Reagregar o mesmo dia duas vezes produz os mesmos valores armazenados.
func (r *adDailyStatRepository) SaveOrUpdate(ctx context.Context, stat *domain.AdDailyStat) error {
	query := squirrel.StatementBuilder.
		Insert("ad_daily_stats").
		Columns("ad_id", "stat_date", "impressions", "clicks", "ctr").
		Values(
			stat.AdID,
			stat.StatDate.Format(time.DateOnly),
			stat.Impressions,
			stat.Clicks,
			stat.CTR,
		).
		Suffix(`
			ON CONFLICT (ad_id, stat_date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adDailyStatRepository) GetByAdAndDate(ctx context.Context, adID string, date time.Time) (*domain.AdDailyStat, error) {
	query, args, err := squirrel.
		Select("ads.ad_id, ads.stat_date, ads.impressions, ads.clicks, ads.ctr, ads.created_at, ads.updated_at").
		From(adDailyStatsTable).
		Where(squirrel.Eq{"ads.ad_id": adID, "ads.stat_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	stat, err := r.scanStat(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear estatística diária: %w", err)
	}

	return stat, nil
}

func (r *adDailyStatRepository) ListByAdAndPeriod(ctx context.Context, adID string, startDate, endDate time.Time) ([]*domain.AdDailyStat, error) {
	query, args, err := squirrel.
		Select("ads.ad_id, ads.stat_date, ads.impressions, ads.clicks, ads.ctr, ads.created_at, ads.updated_at").
		From(adDailyStatsTable).
		Where(squirrel.Eq{"ads.ad_id": adID}).
		Where(squirrel.GtOrEq{"ads.stat_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ads.stat_date": endDate.Format(time.DateOnly)}).
		OrderBy("ads.stat_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.AdDailyStat, 0)
	for rows.Next() {
		stat := &domain.AdDailyStat{}
		err := rows.Scan(
			&stat.AdID,
			&stat.StatDate,
			&stat.Impressions,
			&stat.Clicks,
			&stat.CTR,
			&stat.CreatedAt,
			&stat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estatísticas diárias: %w", err)
		}
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *adDailyStatRepository) scanStat(row *sql.Row) (*domain.AdDailyStat, error) {
	stat := &domain.AdDailyStat{}

	err := row.Scan(
		&stat.AdID,
		&stat.StatDate,
		&stat.Impressions,
		&stat.Clicks,
		&stat.CTR,
		&stat.CreatedAt,
		&stat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return stat, nil
}
