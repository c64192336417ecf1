package lifecycling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/turviagens/ads-manager-api/infrastructure/repository/mocks"
	"github.com/turviagens/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Run(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	approved := domain.AdStatusApproved
	active := true
	inactive := false

	activationCriteria := domain.AdCriteria{
		Status:            &approved,
		IsActive:          &inactive,
		StartAtBefore:     &now,
		EndAtAfterOrUnset: &now,
	}
	expiryCriteria := domain.AdCriteria{
		Status:      &approved,
		IsActive:    &active,
		EndAtBefore: &now,
	}
	impressionsCriteria := domain.AdCriteria{
		Status:               &approved,
		IsActive:             &active,
		ImpressionsExhausted: true,
	}
	clicksCriteria := domain.AdCriteria{
		Status:          &approved,
		IsActive:        &active,
		ClicksExhausted: true,
	}

	tests := []struct {
		name     string
		setup    func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry)
		hasError bool
		validate func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry)
	}{
		{
			name: "Deve ativar anúncio aprovado dentro da janela de exibição",
			setup: func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry) {
				startAt := now.Add(-1 * time.Hour)
				ad := &domain.Ad{
					ID:      "AD0007",
					Title:   "Pacote Fernando de Noronha 5 diárias",
					Status:  domain.AdStatusApproved,
					StartAt: &startAt,
				}

				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), activationCriteria).Return([]*domain.Ad{ad}, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), expiryCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), impressionsCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), clicksCriteria).Return(nil, nil)

				adRepo.EXPECT().
					ApplyTransition(gomock.Any(), "AD0007", true, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ bool, entry *domain.AdAuditEntry) error {
						*entries = append(*entries, entry)
						return nil
					})
			},
			validate: func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry) {
				assert.Equal(t, 1, result.Activated)
				assert.Equal(t, 0, result.Expired)
				assert.Equal(t, 0, result.Deactivated)

				assert.Len(t, entries, 1)
				assert.Equal(t, domain.AuditActionAutoActivated, entries[0].Action)
				assert.Equal(t, ReasonScheduledStart, entries[0].Detail["reason"])
				assert.Equal(t, now.Format(time.RFC3339), entries[0].Detail["activated_at"])
			},
		},
		{
			name: "Deve expirar anúncio ativo com janela de exibição encerrada",
			setup: func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry) {
				endAt := now.Add(-30 * time.Minute)
				ad := &domain.Ad{
					ID:       "AD0012",
					Title:    "Pacote Gramado Inverno",
					Status:   domain.AdStatusApproved,
					IsActive: true,
					EndAt:    &endAt,
				}

				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), activationCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), expiryCriteria).Return([]*domain.Ad{ad}, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), impressionsCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), clicksCriteria).Return(nil, nil)

				adRepo.EXPECT().
					ApplyTransition(gomock.Any(), "AD0012", false, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ bool, entry *domain.AdAuditEntry) error {
						*entries = append(*entries, entry)
						return nil
					})
			},
			validate: func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry) {
				assert.Equal(t, 1, result.Expired)

				assert.Len(t, entries, 1)
				assert.Equal(t, domain.AuditActionAutoExpired, entries[0].Action)
				assert.Equal(t, ReasonScheduledEnd, entries[0].Detail["reason"])
			},
		},
		{
			name: "Deve desativar anúncio que atingiu o limite de cliques",
			setup: func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry) {
				maxClicks := int64(100)
				ad := &domain.Ad{
					ID:          "AD0021",
					Title:       "Pacote Porto de Galinhas",
					Status:      domain.AdStatusApproved,
					IsActive:    true,
					MaxClicks:   &maxClicks,
					ClicksCount: 100,
				}

				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), activationCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), expiryCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), impressionsCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), clicksCriteria).Return([]*domain.Ad{ad}, nil)

				adRepo.EXPECT().
					ApplyTransition(gomock.Any(), "AD0021", false, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ bool, entry *domain.AdAuditEntry) error {
						*entries = append(*entries, entry)
						return nil
					})
			},
			validate: func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry) {
				assert.Equal(t, 1, result.Deactivated)

				assert.Len(t, entries, 1)
				assert.Equal(t, domain.AuditActionAutoDeactivated, entries[0].Action)
				assert.Equal(t, ReasonMaxClicks, entries[0].Detail["reason"])
				assert.Equal(t, int64(100), entries[0].Detail["clicks_count"])
				assert.Equal(t, int64(100), entries[0].Detail["max_clicks"])
			},
		},
		{
			name: "Anúncio com os dois limites esgotados deve gerar duas entradas de auditoria",
			setup: func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry) {
				maxImpressions := int64(5000)
				maxClicks := int64(200)
				ad := &domain.Ad{
					ID:               "AD0030",
					Title:            "Pacote Jericoacoara",
					Status:           domain.AdStatusApproved,
					IsActive:         true,
					MaxImpressions:   &maxImpressions,
					MaxClicks:        &maxClicks,
					ImpressionsCount: 5120,
					ClicksCount:      203,
				}

				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), activationCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), expiryCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), impressionsCriteria).Return([]*domain.Ad{ad}, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), clicksCriteria).Return([]*domain.Ad{ad}, nil)

				adRepo.EXPECT().
					ApplyTransition(gomock.Any(), "AD0030", false, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ bool, entry *domain.AdAuditEntry) error {
						*entries = append(*entries, entry)
						return nil
					}).Times(2)
			},
			validate: func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry) {
				assert.Equal(t, 2, result.Deactivated)

				assert.Len(t, entries, 2)
				assert.Equal(t, ReasonMaxImpressions, entries[0].Detail["reason"])
				assert.Equal(t, ReasonMaxClicks, entries[1].Detail["reason"])
			},
		},
		{
			name: "Sem anúncios elegíveis a execução não produz transições",
			setup: func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry) {
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), activationCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), expiryCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), impressionsCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), clicksCriteria).Return(nil, nil)
			},
			validate: func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry) {
				assert.Equal(t, &RunResult{}, result)
				assert.Empty(t, entries)
			},
		},
		{
			name: "Falha na seleção de uma varredura não impede as demais",
			setup: func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry) {
				endAt := now.Add(-time.Hour)
				ad := &domain.Ad{
					ID:       "AD0044",
					Title:    "Pacote Bonito MS",
					Status:   domain.AdStatusApproved,
					IsActive: true,
					EndAt:    &endAt,
				}

				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), activationCriteria).Return(nil, assert.AnError)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), expiryCriteria).Return([]*domain.Ad{ad}, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), impressionsCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), clicksCriteria).Return(nil, nil)

				adRepo.EXPECT().
					ApplyTransition(gomock.Any(), "AD0044", false, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ bool, entry *domain.AdAuditEntry) error {
						*entries = append(*entries, entry)
						return nil
					})
			},
			hasError: true,
			validate: func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry) {
				assert.Equal(t, 0, result.Activated)
				assert.Equal(t, 1, result.Expired)
			},
		},
		{
			name: "Falha em um anúncio não impede os demais da mesma varredura",
			setup: func(adRepo *mocks.MockAdRepository, entries *[]*domain.AdAuditEntry) {
				startAt := now.Add(-time.Hour)
				adA := &domain.Ad{ID: "AD0050", Title: "Pacote Lençóis Maranhenses", Status: domain.AdStatusApproved, StartAt: &startAt}
				adB := &domain.Ad{ID: "AD0051", Title: "Pacote Chapada Diamantina", Status: domain.AdStatusApproved, StartAt: &startAt}

				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), activationCriteria).Return([]*domain.Ad{adA, adB}, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), expiryCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), impressionsCriteria).Return(nil, nil)
				adRepo.EXPECT().ListAdsByCriteria(gomock.Any(), clicksCriteria).Return(nil, nil)

				adRepo.EXPECT().
					ApplyTransition(gomock.Any(), "AD0050", true, gomock.Any()).
					Return(assert.AnError)
				adRepo.EXPECT().
					ApplyTransition(gomock.Any(), "AD0051", true, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ bool, entry *domain.AdAuditEntry) error {
						*entries = append(*entries, entry)
						return nil
					})
			},
			validate: func(t *testing.T, result *RunResult, entries []*domain.AdAuditEntry) {
				assert.Equal(t, 1, result.Activated)
				assert.Len(t, entries, 1)
				assert.Equal(t, "AD0051", entries[0].AdID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adRepo := mocks.NewMockAdRepository(ctrl)

			var entries []*domain.AdAuditEntry
			tt.setup(adRepo, &entries)

			service := NewService(adRepo)
			result, err := service.Run(context.Background(), now)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NotNil(t, result)
			if tt.validate != nil {
				tt.validate(t, result, entries)
			}
		})
	}
}
