package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/turviagens/ads-manager-api/infrastructure/database/postgres"
	"github.com/turviagens/ads-manager-api/internal/domain"
	"github.com/turviagens/ads-manager-api/pkg/utils"
)

const (
	adAuditLogsTable = "ad_audit_logs aal"
)

// AdAuditRepository grava e consulta a trilha de auditoria de anúncios.
// Registros nunca são atualizados ou removidos.
type AdAuditRepository interface {
	Append(ctx context.Context, entry *domain.AdAuditEntry) error
	ListByAdID(ctx context.Context, adID string, limit uint64) ([]*domain.AdAuditEntry, error)
}

type adAuditRepository struct {
	conn *postgres.Connection
}

func NewAdAuditRepository(conn *postgres.Connection) AdAuditRepository {
	return &adAuditRepository{
		conn: conn,
	}
}

func (r *adAuditRepository) Append(ctx context.Context, entry *domain.AdAuditEntry) error {
	query, args, err := buildAuditInsert(entry)
	if err != nil {
		return fmt.Errorf("erro ao construir insert de auditoria: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adAuditRepository) ListByAdID(ctx context.Context, adID string, limit uint64) ([]*domain.AdAuditEntry, error) {
	builder := squirrel.
		Select("aal.id, aal.ad_id, aal.action, aal.actor, aal.detail, aal.created_at").
		From(adAuditLogsTable).
		Where(squirrel.Eq{"aal.ad_id": adID}).
		OrderBy("aal.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
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

	entries := make([]*domain.AdAuditEntry, 0)
	for rows.Next() {
		entry := &domain.AdAuditEntry{}
		var detailJSON []byte

		err := rows.Scan(
			&entry.ID,
			&entry.AdID,
			&entry.Action,
			&entry.Actor,
			&detailJSON,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear auditoria: %w", err)
		}

		if len(detailJSON) > 0 {
			if err := json.Unmarshal(detailJSON, &entry.Detail); err != nil {
				return nil, fmt.Errorf("erro ao deserializar detail da auditoria: %w", err)
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// buildAuditInsert monta o INSERT da trilha de auditoria. É compartilhado
// com AdRepository.ApplyTransition, que grava a auditoria na mesma
// transação da mudança de estado.
func buildAuditInsert(entry *domain.AdAuditEntry) (string, []any, error) {
	var detailJSON []byte
	var err error

	if entry.Detail != nil {
		detailJSON, err = json.Marshal(entry.Detail)
		if err != nil {
			return "", nil, fmt.Errorf("erro ao serializar detail para JSON: %w", err)
		}
	}

	id := entry.ID
	if id == "" {
		id, err = utils.GenerateID()
		if err != nil {
			return "", nil, fmt.Errorf("erro ao gerar ID da auditoria: %w", err)
		}
	}

	return squirrel.StatementBuilder.
		Insert("ad_audit_logs").
		Columns("id", "ad_id", "action", "actor", "detail").
		Values(
			id,
			entry.AdID,
			entry.Action,
			entry.Actor,
			detailJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
