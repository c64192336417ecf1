package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/turviagens/ads-manager-api/infrastructure/database/postgres"
	"github.com/turviagens/ads-manager-api/internal/domain"
)

const (
	adsTable = "ads a"
)

type AdRepository interface {
	GetAdByID(ctx context.Context, adID string) (*domain.Ad, error)
	ListAds(ctx context.Context) ([]*domain.Ad, error)
	ListAdsByCriteria(ctx context.Context, criteria domain.AdCriteria) ([]*domain.Ad, error)
	ApplyTransition(ctx context.Context, adID string, active bool, entry *domain.AdAuditEntry) error
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

const adColumns = "a.id, a.title, a.status, a.is_active, a.start_at, a.end_at, " +
	"a.max_impressions, a.max_clicks, a.impressions_count, a.clicks_count, a.created_at, a.updated_at"

func (r *adRepository) GetAdByID(ctx context.Context, adID string) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns).
		From(adsTable).
		Where(squirrel.Eq{"a.id": adID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	ad, err := r.scanAd(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}

func (r *adRepository) ListAds(ctx context.Context) ([]*domain.Ad, error) {
	return r.listAds(ctx, nil)
}

func (r *adRepository) ListAdsByCriteria(ctx context.Context, criteria domain.AdCriteria) ([]*domain.Ad, error) {
	return r.listAds(ctx, CriteriaToSqlizer(criteria))
}

func (r *adRepository) listAds(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Ad, error) {
	builder := squirrel.
		Select(adColumns).
		From(adsTable).
		OrderBy("a.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := r.scanAdRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncios: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

// ApplyTransition atualiza is_active e grava o registro de auditoria na
// mesma transação. A transição é idempotente: se is_active já tem o valor
// desejado, o UPDATE não afeta linhas e a auditoria ainda é gravada.
func (r *adRepository) ApplyTransition(ctx context.Context, adID string, active bool, entry *domain.AdAuditEntry) error {
	updateSQL, updateArgs, err := squirrel.
		Update("ads").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": adID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	auditSQL, auditArgs, err := buildAuditInsert(entry)
	if err != nil {
		return fmt.Errorf("erro ao construir insert de auditoria: %w", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar anúncio: %w", err)
		}
		if _, err := tx.ExecContext(ctx, auditSQL, auditArgs...); err != nil {
			return fmt.Errorf("erro ao gravar auditoria: %w", err)
		}
		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}

// CriteriaToSqlizer traduz o predicado tipado das varreduras do ciclo de
// vida para cláusulas squirrel. Campos nil são ignorados.
func CriteriaToSqlizer(criteria domain.AdCriteria) squirrel.Sqlizer {
	clauses := squirrel.And{}

	if criteria.Status != nil {
		clauses = append(clauses, squirrel.Eq{"a.status": *criteria.Status})
	}

	if criteria.IsActive != nil {
		clauses = append(clauses, squirrel.Eq{"a.is_active": *criteria.IsActive})
	}

	if criteria.StartAtBefore != nil {
		clauses = append(clauses,
			squirrel.NotEq{"a.start_at": nil},
			squirrel.LtOrEq{"a.start_at": *criteria.StartAtBefore},
		)
	}

	if criteria.EndAtAfterOrUnset != nil {
		clauses = append(clauses, squirrel.Or{
			squirrel.Eq{"a.end_at": nil},
			squirrel.Gt{"a.end_at": *criteria.EndAtAfterOrUnset},
		})
	}

	if criteria.EndAtBefore != nil {
		clauses = append(clauses,
			squirrel.NotEq{"a.end_at": nil},
			squirrel.LtOrEq{"a.end_at": *criteria.EndAtBefore},
		)
	}

	if criteria.ImpressionsExhausted {
		clauses = append(clauses,
			squirrel.NotEq{"a.max_impressions": nil},
			squirrel.Expr("a.impressions_count >= a.max_impressions"),
		)
	}

	if criteria.ClicksExhausted {
		clauses = append(clauses,
			squirrel.NotEq{"a.max_clicks": nil},
			squirrel.Expr("a.clicks_count >= a.max_clicks"),
		)
	}

	return clauses
}

func (r *adRepository) scanAd(row *sql.Row) (*domain.Ad, error) {
	ad := &domain.Ad{}

	err := row.Scan(
		&ad.ID,
		&ad.Title,
		&ad.Status,
		&ad.IsActive,
		&ad.StartAt,
		&ad.EndAt,
		&ad.MaxImpressions,
		&ad.MaxClicks,
		&ad.ImpressionsCount,
		&ad.ClicksCount,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return ad, nil
}

func (r *adRepository) scanAdRows(rows *sql.Rows) (*domain.Ad, error) {
	ad := &domain.Ad{}

	err := rows.Scan(
		&ad.ID,
		&ad.Title,
		&ad.Status,
		&ad.IsActive,
		&ad.StartAt,
		&ad.EndAt,
		&ad.MaxImpressions,
		&ad.MaxClicks,
		&ad.ImpressionsCount,
		&ad.ClicksCount,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return ad, nil
}
