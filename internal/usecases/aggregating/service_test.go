package aggregating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/turviagens/ads-manager-api/infrastructure/repository/mocks"
	"github.com/turviagens/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_AggregateForDate(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)
	dayEnd := date.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		adID     string
		date     time.Time
		setup    func(adRepo *mocks.MockAdRepository, eventRepo *mocks.MockAdEventRepository, statRepo *mocks.MockAdDailyStatRepository, saved **domain.AdDailyStat)
		wantErr  error
		validate func(t *testing.T, saved *domain.AdDailyStat)
	}{
		{
			name: "Deve somar os eventos do dia e salvar a estatística com CTR calculado",
			adID: "AD0007",
			date: date,
			setup: func(adRepo *mocks.MockAdRepository, eventRepo *mocks.MockAdEventRepository, statRepo *mocks.MockAdDailyStatRepository, saved **domain.AdDailyStat) {
				adRepo.EXPECT().GetAdByID(gomock.Any(), "AD0007").Return(&domain.Ad{ID: "AD0007"}, nil)
				eventRepo.EXPECT().
					TotalsForDay(gomock.Any(), "AD0007", date, dayEnd).
					Return(&domain.AdEventTotals{Impressions: 42, Clicks: 3}, nil)
				statRepo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stat *domain.AdDailyStat) error {
						*saved = stat
						return nil
					})
			},
			validate: func(t *testing.T, saved *domain.AdDailyStat) {
				assert.Equal(t, "AD0007", saved.AdID)
				assert.Equal(t, date, saved.StatDate)
				assert.Equal(t, int64(42), saved.Impressions)
				assert.Equal(t, int64(3), saved.Clicks)
				assert.Equal(t, 7.14, saved.CTR)
			},
		},
		{
			name: "Reagregar o mesmo dia substitui a linha com os novos totais",
			adID: "AD0007",
			date: date,
			setup: func(adRepo *mocks.MockAdRepository, eventRepo *mocks.MockAdEventRepository, statRepo *mocks.MockAdDailyStatRepository, saved **domain.AdDailyStat) {
				adRepo.EXPECT().GetAdByID(gomock.Any(), "AD0007").Return(&domain.Ad{ID: "AD0007"}, nil)
				eventRepo.EXPECT().
					TotalsForDay(gomock.Any(), "AD0007", date, dayEnd).
					Return(&domain.AdEventTotals{Impressions: 43, Clicks: 3}, nil)
				statRepo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stat *domain.AdDailyStat) error {
						*saved = stat
						return nil
					})
			},
			validate: func(t *testing.T, saved *domain.AdDailyStat) {
				assert.Equal(t, int64(43), saved.Impressions)
				assert.Equal(t, 6.98, saved.CTR)
			},
		},
		{
			name: "Dia sem eventos salva a linha zerada",
			adID: "AD0012",
			date: date,
			setup: func(adRepo *mocks.MockAdRepository, eventRepo *mocks.MockAdEventRepository, statRepo *mocks.MockAdDailyStatRepository, saved **domain.AdDailyStat) {
				adRepo.EXPECT().GetAdByID(gomock.Any(), "AD0012").Return(&domain.Ad{ID: "AD0012"}, nil)
				eventRepo.EXPECT().
					TotalsForDay(gomock.Any(), "AD0012", date, dayEnd).
					Return(&domain.AdEventTotals{}, nil)
				statRepo.EXPECT().
					SaveOrUpdate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stat *domain.AdDailyStat) error {
						*saved = stat
						return nil
					})
			},
			validate: func(t *testing.T, saved *domain.AdDailyStat) {
				assert.Equal(t, int64(0), saved.Impressions)
				assert.Equal(t, int64(0), saved.Clicks)
				assert.Equal(t, 0.0, saved.CTR)
			},
		},
		{
			name:    "Deve rejeitar chamada sem ID de anúncio",
			adID:    "",
			date:    date,
			setup:   func(_ *mocks.MockAdRepository, _ *mocks.MockAdEventRepository, _ *mocks.MockAdDailyStatRepository, _ **domain.AdDailyStat) {},
			wantErr: ErrAdIDRequired,
		},
		{
			name: "Deve rejeitar anúncio inexistente",
			adID: "AD9999",
			date: date,
			setup: func(adRepo *mocks.MockAdRepository, _ *mocks.MockAdEventRepository, _ *mocks.MockAdDailyStatRepository, _ **domain.AdDailyStat) {
				adRepo.EXPECT().GetAdByID(gomock.Any(), "AD9999").Return(nil, nil)
			},
			wantErr: ErrAdNotFound,
		},
		{
			name:    "Deve rejeitar data futura",
			adID:    "AD0007",
			date:    time.Now().AddDate(0, 0, 2),
			setup:   func(_ *mocks.MockAdRepository, _ *mocks.MockAdEventRepository, _ *mocks.MockAdDailyStatRepository, _ **domain.AdDailyStat) {},
			wantErr: ErrFutureDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adRepo := mocks.NewMockAdRepository(ctrl)
			eventRepo := mocks.NewMockAdEventRepository(ctrl)
			statRepo := mocks.NewMockAdDailyStatRepository(ctrl)

			var saved *domain.AdDailyStat
			tt.setup(adRepo, eventRepo, statRepo, &saved)

			service := NewService(adRepo, eventRepo, statRepo)
			err := service.AggregateForDate(context.Background(), tt.adID, tt.date)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				assert.NotNil(t, saved)
				tt.validate(t, saved)
			}
		})
	}
}

func TestService_AggregateAllForDate(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)
	dayEnd := date.AddDate(0, 0, 1)

	ads := []*domain.Ad{
		{ID: "AD0001", Title: "Pacote Fernando de Noronha 5 diárias"},
		{ID: "AD0002", Title: "Pacote Gramado Inverno"},
		{ID: "AD0003", Title: "Pacote Porto de Galinhas"},
	}

	t.Run("Deve agregar todos os anúncios e retornar o total processado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := mocks.NewMockAdRepository(ctrl)
		eventRepo := mocks.NewMockAdEventRepository(ctrl)
		statRepo := mocks.NewMockAdDailyStatRepository(ctrl)

		adRepo.EXPECT().ListAds(gomock.Any()).Return(ads, nil)
		for _, ad := range ads {
			eventRepo.EXPECT().
				TotalsForDay(gomock.Any(), ad.ID, date, dayEnd).
				Return(&domain.AdEventTotals{Impressions: 10, Clicks: 1}, nil)
		}
		statRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		service := NewService(adRepo, eventRepo, statRepo)
		succeeded, err := service.AggregateAllForDate(context.Background(), date)

		assert.NoError(t, err)
		assert.Equal(t, 3, succeeded)
	})

	t.Run("Falha em um anúncio não aborta os demais e vira erro parcial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := mocks.NewMockAdRepository(ctrl)
		eventRepo := mocks.NewMockAdEventRepository(ctrl)
		statRepo := mocks.NewMockAdDailyStatRepository(ctrl)

		adRepo.EXPECT().ListAds(gomock.Any()).Return(ads, nil)

		eventRepo.EXPECT().
			TotalsForDay(gomock.Any(), "AD0001", date, dayEnd).
			Return(&domain.AdEventTotals{Impressions: 10, Clicks: 1}, nil)
		eventRepo.EXPECT().
			TotalsForDay(gomock.Any(), "AD0002", date, dayEnd).
			Return(nil, assert.AnError)
		eventRepo.EXPECT().
			TotalsForDay(gomock.Any(), "AD0003", date, dayEnd).
			Return(&domain.AdEventTotals{Impressions: 20, Clicks: 2}, nil)

		statRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		service := NewService(adRepo, eventRepo, statRepo)
		succeeded, err := service.AggregateAllForDate(context.Background(), date)

		assert.Equal(t, 2, succeeded)

		var partial *PartialBatchError
		assert.True(t, errors.As(err, &partial))
		assert.Equal(t, 1, partial.Failed)
		assert.Equal(t, []string{"AD0002"}, partial.FailedIDs)
	})

	t.Run("Falha ao listar anúncios aborta a execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := mocks.NewMockAdRepository(ctrl)
		eventRepo := mocks.NewMockAdEventRepository(ctrl)
		statRepo := mocks.NewMockAdDailyStatRepository(ctrl)

		adRepo.EXPECT().ListAds(gomock.Any()).Return(nil, assert.AnError)

		service := NewService(adRepo, eventRepo, statRepo)
		succeeded, err := service.AggregateAllForDate(context.Background(), date)

		assert.Error(t, err)
		assert.Equal(t, 0, succeeded)
	})
}

func TestNormalizeDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
		wantErr  error
	}{
		{
			name:     "Data zero usa o dia anterior",
			date:     time.Time{},
			expected: time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name:     "O dia corrente é aceito",
			date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
			expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name:     "A hora do dia é descartada na normalização",
			date:     time.Date(2024, 3, 8, 23, 59, 59, 0, time.Local),
			expected: time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "Dia futuro é rejeitado",
			date:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			wantErr: ErrFutureDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := NormalizeDay(tt.date, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestComputeCTR(t *testing.T) {
	tests := []struct {
		name        string
		impressions int64
		clicks      int64
		expected    float64
	}{
		{
			name:        "Sem impressões o CTR é zero",
			impressions: 0,
			clicks:      0,
			expected:    0,
		},
		{
			name:        "CTR arredondado para duas casas",
			impressions: 42,
			clicks:      3,
			expected:    7.14,
		},
		{
			name:        "Todos os cliques convertidos",
			impressions: 100,
			clicks:      100,
			expected:    100,
		},
		{
			name:        "Cliques sem impressões não geram CTR",
			impressions: 0,
			clicks:      5,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, computeCTR(tt.impressions, tt.clicks))
		})
	}
}
