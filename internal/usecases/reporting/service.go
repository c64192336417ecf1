// Package reporting expõe leituras da trilha de auditoria e das
// estatísticas diárias para a API de operação.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/turviagens/ads-manager-api/infrastructure/repository"
	"github.com/turviagens/ads-manager-api/internal/domain"
)

var (
	ErrAdNotFound    = errors.New("anúncio não encontrado")
	ErrInvalidPeriod = errors.New("período inválido: data final anterior à inicial")
)

// defaultAuditLimit limita a trilha retornada quando o chamador não pede um limite
const defaultAuditLimit = 50

type ReportingService interface {
	GetDailyStats(ctx context.Context, adID string, startDate, endDate time.Time) ([]*domain.AdDailyStat, error)
	GetAuditTrail(ctx context.Context, adID string, limit uint64) ([]*domain.AdAuditEntry, error)
}

type Service struct {
	adRepo    repository.AdRepository
	statRepo  repository.AdDailyStatRepository
	auditRepo repository.AdAuditRepository
}

func NewService(
	adRepo repository.AdRepository,
	statRepo repository.AdDailyStatRepository,
	auditRepo repository.AdAuditRepository,
) ReportingService {
	return &Service{
		adRepo:    adRepo,
		statRepo:  statRepo,
		auditRepo: auditRepo,
	}
}

func (s *Service) GetDailyStats(ctx context.Context, adID string, startDate, endDate time.Time) ([]*domain.AdDailyStat, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidPeriod
	}

	if err := s.ensureAdExists(ctx, adID); err != nil {
		return nil, err
	}

	return s.statRepo.ListByAdAndPeriod(ctx, adID, startDate, endDate)
}

func (s *Service) GetAuditTrail(ctx context.Context, adID string, limit uint64) ([]*domain.AdAuditEntry, error) {
	if limit == 0 {
		limit = defaultAuditLimit
	}

	if err := s.ensureAdExists(ctx, adID); err != nil {
		return nil, err
	}

	return s.auditRepo.ListByAdID(ctx, adID, limit)
}

func (s *Service) ensureAdExists(ctx context.Context, adID string) error {
	ad, err := s.adRepo.GetAdByID(ctx, adID)
	if err != nil {
		return fmt.Errorf("erro ao buscar anúncio %s: %w", adID, err)
	}
	if ad == nil {
		return fmt.Errorf("anúncio %s: %w", adID, ErrAdNotFound)
	}
	return nil
}
