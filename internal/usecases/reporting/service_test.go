package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/turviagens/ads-manager-api/infrastructure/repository/mocks"
	"github.com/turviagens/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetDailyStats(t *testing.T) {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	endDate := time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)

	t.Run("Deve retornar as estatísticas do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := mocks.NewMockAdRepository(ctrl)
		statRepo := mocks.NewMockAdDailyStatRepository(ctrl)
		auditRepo := mocks.NewMockAdAuditRepository(ctrl)

		stats := []*domain.AdDailyStat{
			{AdID: "AD0007", StatDate: startDate, Impressions: 42, Clicks: 3, CTR: 7.14},
		}

		adRepo.EXPECT().GetAdByID(gomock.Any(), "AD0007").Return(&domain.Ad{ID: "AD0007"}, nil)
		statRepo.EXPECT().ListByAdAndPeriod(gomock.Any(), "AD0007", startDate, endDate).Return(stats, nil)

		service := NewService(adRepo, statRepo, auditRepo)
		result, err := service.GetDailyStats(context.Background(), "AD0007", startDate, endDate)

		assert.NoError(t, err)
		assert.Equal(t, stats, result)
	})

	t.Run("Deve rejeitar período com data final anterior à inicial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockAdRepository(ctrl),
			mocks.NewMockAdDailyStatRepository(ctrl),
			mocks.NewMockAdAuditRepository(ctrl),
		)

		_, err := service.GetDailyStats(context.Background(), "AD0007", endDate, startDate)

		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("Deve rejeitar anúncio inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := mocks.NewMockAdRepository(ctrl)
		adRepo.EXPECT().GetAdByID(gomock.Any(), "AD9999").Return(nil, nil)

		service := NewService(
			adRepo,
			mocks.NewMockAdDailyStatRepository(ctrl),
			mocks.NewMockAdAuditRepository(ctrl),
		)

		_, err := service.GetDailyStats(context.Background(), "AD9999", startDate, endDate)

		assert.ErrorIs(t, err, ErrAdNotFound)
	})
}

func TestService_GetAuditTrail(t *testing.T) {
	t.Run("Limite zero usa o limite padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := mocks.NewMockAdRepository(ctrl)
		auditRepo := mocks.NewMockAdAuditRepository(ctrl)

		entries := []*domain.AdAuditEntry{
			{ID: "AUD001", AdID: "AD0007", Action: domain.AuditActionAutoActivated},
		}

		adRepo.EXPECT().GetAdByID(gomock.Any(), "AD0007").Return(&domain.Ad{ID: "AD0007"}, nil)
		auditRepo.EXPECT().ListByAdID(gomock.Any(), "AD0007", uint64(50)).Return(entries, nil)

		service := NewService(adRepo, mocks.NewMockAdDailyStatRepository(ctrl), auditRepo)
		result, err := service.GetAuditTrail(context.Background(), "AD0007", 0)

		assert.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("Limite informado é repassado ao repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adRepo := mocks.NewMockAdRepository(ctrl)
		auditRepo := mocks.NewMockAdAuditRepository(ctrl)

		adRepo.EXPECT().GetAdByID(gomock.Any(), "AD0007").Return(&domain.Ad{ID: "AD0007"}, nil)
		auditRepo.EXPECT().ListByAdID(gomock.Any(), "AD0007", uint64(10)).Return([]*domain.AdAuditEntry{}, nil)

		service := NewService(adRepo, mocks.NewMockAdDailyStatRepository(ctrl), auditRepo)
		_, err := service.GetAuditTrail(context.Background(), "AD0007", 10)

		assert.NoError(t, err)
	})
}
