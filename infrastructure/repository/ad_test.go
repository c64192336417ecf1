package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/turviagens/ads-manager-api/internal/domain"
)

func TestCriteriaToSqlizer(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	approved := domain.AdStatusApproved
	active := true
	inactive := false

	tests := []struct {
		name     string
		criteria domain.AdCriteria
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "Critério de ativação por janela de exibição",
			criteria: domain.AdCriteria{
				Status:            &approved,
				IsActive:          &inactive,
				StartAtBefore:     &now,
				EndAtAfterOrUnset: &now,
			},
			wantSQL:  "(a.status = ? AND a.is_active = ? AND a.start_at IS NOT NULL AND a.start_at <= ? AND (a.end_at IS NULL OR a.end_at > ?))",
			wantArgs: []any{approved, false, now, now},
		},
		{
			name: "Critério de expiração por fim da janela",
			criteria: domain.AdCriteria{
				Status:      &approved,
				IsActive:    &active,
				EndAtBefore: &now,
			},
			wantSQL:  "(a.status = ? AND a.is_active = ? AND a.end_at IS NOT NULL AND a.end_at <= ?)",
			wantArgs: []any{approved, true, now},
		},
		{
			name: "Critério de limite de impressões esgotado",
			criteria: domain.AdCriteria{
				Status:               &approved,
				IsActive:             &active,
				ImpressionsExhausted: true,
			},
			wantSQL:  "(a.status = ? AND a.is_active = ? AND a.max_impressions IS NOT NULL AND a.impressions_count >= a.max_impressions)",
			wantArgs: []any{approved, true},
		},
		{
			name: "Critério de limite de cliques esgotado",
			criteria: domain.AdCriteria{
				Status:          &approved,
				IsActive:        &active,
				ClicksExhausted: true,
			},
			wantSQL:  "(a.status = ? AND a.is_active = ? AND a.max_clicks IS NOT NULL AND a.clicks_count >= a.max_clicks)",
			wantArgs: []any{approved, true},
		},
		{
			name:     "Critério vazio não filtra nada",
			criteria: domain.AdCriteria{},
			wantSQL:  "(1=1)",
			wantArgs: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := CriteriaToSqlizer(tt.criteria).ToSql()

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildAuditInsert(t *testing.T) {
	t.Run("Deve gerar ID quando a entrada não tem um", func(t *testing.T) {
		entry := &domain.AdAuditEntry{
			AdID:   "AD0007",
			Action: domain.AuditActionAutoActivated,
			Detail: map[string]any{"reason": "Scheduled start time reached"},
		}

		sql, args, err := buildAuditInsert(entry)

		assert.NoError(t, err)
		assert.Equal(t, "INSERT INTO ad_audit_logs (id,ad_id,action,actor,detail) VALUES ($1,$2,$3,$4,$5)", sql)
		assert.Len(t, args, 5)
		assert.NotEmpty(t, args[0])
		assert.Equal(t, "AD0007", args[1])
		assert.Equal(t, domain.AuditActionAutoActivated, args[2])
		assert.JSONEq(t, `{"reason":"Scheduled start time reached"}`, string(args[4].([]byte)))
	})

	t.Run("Deve preservar o ID quando já informado", func(t *testing.T) {
		entry := &domain.AdAuditEntry{
			ID:     "AUD001",
			AdID:   "AD0007",
			Action: domain.AuditActionAutoExpired,
		}

		_, args, err := buildAuditInsert(entry)

		assert.NoError(t, err)
		assert.Equal(t, "AUD001", args[0])
	})

	t.Run("Entrada sem detail serializa detail nulo", func(t *testing.T) {
		entry := &domain.AdAuditEntry{
			AdID:   "AD0012",
			Action: domain.AuditActionAutoDeactivated,
		}

		_, args, err := buildAuditInsert(entry)

		assert.NoError(t, err)
		assert.Nil(t, args[4])
	})
}
