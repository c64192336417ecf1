// Package lifecycling aplica as regras de agenda e de limite de consumo
// sobre os anúncios aprovados.
package lifecycling

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/infrastructure/repository"
	"github.com/turviagens/ads-manager-api/internal/domain"
	"go.uber.org/multierr"
)

// Motivos registrados no payload de auditoria. São dados persistidos e
// consultados pelo painel, por isso ficam em inglês como os action tags.
const (
	ReasonScheduledStart = "Scheduled start time reached"
	ReasonScheduledEnd   = "Scheduled end time reached"
	ReasonMaxImpressions = "Maximum impressions reached"
	ReasonMaxClicks      = "Maximum clicks reached"
)

// RunResult contém os contadores de cada varredura de uma execução
type RunResult struct {
	Activated   int `json:"activated"`
	Expired     int `json:"expired"`
	Deactivated int `json:"deactivated"`
}

// AdLifecycler executa uma varredura completa do ciclo de vida dos
// anúncios. Cada execução é idempotente: rodar duas vezes seguidas sem
// mudança de relógio ou de contadores não produz novas transições.
type AdLifecycler interface {
	Run(ctx context.Context, now time.Time) (*RunResult, error)
}

type Service struct {
	adRepo repository.AdRepository
}

func NewService(adRepo repository.AdRepository) AdLifecycler {
	return &Service{
		adRepo: adRepo,
	}
}

// Run executa as três varreduras na ordem: ativação, expiração e limites.
// Uma falha estrutural (a própria seleção falhou) em uma varredura não
// impede as seguintes de rodarem; os erros são acumulados e retornados
// juntos para o agendador tratar a execução como falha.
func (s *Service) Run(ctx context.Context, now time.Time) (*RunResult, error) {
	result := &RunResult{}
	var errs error

	activated, err := s.activateScheduled(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de ativação de anúncios")
		errs = multierr.Append(errs, fmt.Errorf("varredura de ativação: %w", err))
	}
	result.Activated = activated

	expired, err := s.expireEnded(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de expiração de anúncios")
		errs = multierr.Append(errs, fmt.Errorf("varredura de expiração: %w", err))
	}
	result.Expired = expired

	deactivated, err := s.enforceLimits(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de limites de anúncios")
		errs = multierr.Append(errs, fmt.Errorf("varredura de limites: %w", err))
	}
	result.Deactivated = deactivated

	logrus.WithFields(logrus.Fields{
		"activated":   result.Activated,
		"expired":     result.Expired,
		"deactivated": result.Deactivated,
	}).Info("Varredura do ciclo de vida de anúncios concluída")

	return result, errs
}

// activateScheduled liga anúncios aprovados cuja janela de exibição já
// começou e ainda não terminou
func (s *Service) activateScheduled(ctx context.Context, now time.Time) (int, error) {
	status := domain.AdStatusApproved
	inactive := false

	ads, err := s.adRepo.ListAdsByCriteria(ctx, domain.AdCriteria{
		Status:            &status,
		IsActive:          &inactive,
		StartAtBefore:     &now,
		EndAtAfterOrUnset: &now,
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ad := range ads {
		entry := &domain.AdAuditEntry{
			AdID:   ad.ID,
			Action: domain.AuditActionAutoActivated,
			Detail: map[string]any{
				"reason":       ReasonScheduledStart,
				"activated_at": now.Format(time.RFC3339),
			},
		}

		if err := s.adRepo.ApplyTransition(ctx, ad.ID, true, entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"ad_id": ad.ID,
				"title": ad.Title,
			}).Error("Erro ao ativar anúncio agendado")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"ad_id": ad.ID,
			"title": ad.Title,
		}).Info("Anúncio ativado pelo início da janela de exibição")
		count++
	}

	return count, nil
}

// expireEnded desliga anúncios ativos cuja janela de exibição terminou
func (s *Service) expireEnded(ctx context.Context, now time.Time) (int, error) {
	status := domain.AdStatusApproved
	active := true

	ads, err := s.adRepo.ListAdsByCriteria(ctx, domain.AdCriteria{
		Status:      &status,
		IsActive:    &active,
		EndAtBefore: &now,
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ad := range ads {
		entry := &domain.AdAuditEntry{
			AdID:   ad.ID,
			Action: domain.AuditActionAutoExpired,
			Detail: map[string]any{
				"reason":     ReasonScheduledEnd,
				"expired_at": now.Format(time.RFC3339),
			},
		}

		if err := s.adRepo.ApplyTransition(ctx, ad.ID, false, entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"ad_id": ad.ID,
				"title": ad.Title,
			}).Error("Erro ao expirar anúncio")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"ad_id": ad.ID,
			"title": ad.Title,
		}).Info("Anúncio expirado pelo fim da janela de exibição")
		count++
	}

	return count, nil
}

// enforceLimits desliga anúncios ativos que esgotaram o limite de
// impressões ou de cliques. Um anúncio que esgotou os dois limites recebe
// duas entradas de auditoria; a segunda desativação é um no-op idempotente.
func (s *Service) enforceLimits(ctx context.Context) (int, error) {
	var errs error
	count := 0

	n, err := s.deactivateExhausted(
		ctx,
		domain.AdCriteria{ImpressionsExhausted: true},
		ReasonMaxImpressions,
		func(ad *domain.Ad) map[string]any {
			return map[string]any{
				"reason":            ReasonMaxImpressions,
				"impressions_count": ad.ImpressionsCount,
				"max_impressions":   derefInt64(ad.MaxImpressions),
			}
		},
	)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("limite de impressões: %w", err))
	}
	count += n

	n, err = s.deactivateExhausted(
		ctx,
		domain.AdCriteria{ClicksExhausted: true},
		ReasonMaxClicks,
		func(ad *domain.Ad) map[string]any {
			return map[string]any{
				"reason":       ReasonMaxClicks,
				"clicks_count": ad.ClicksCount,
				"max_clicks":   derefInt64(ad.MaxClicks),
			}
		},
	)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("limite de cliques: %w", err))
	}
	count += n

	return count, errs
}

func (s *Service) deactivateExhausted(
	ctx context.Context,
	criteria domain.AdCriteria,
	reason string,
	detailFn func(ad *domain.Ad) map[string]any,
) (int, error) {
	status := domain.AdStatusApproved
	active := true
	criteria.Status = &status
	criteria.IsActive = &active

	ads, err := s.adRepo.ListAdsByCriteria(ctx, criteria)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ad := range ads {
		entry := &domain.AdAuditEntry{
			AdID:   ad.ID,
			Action: domain.AuditActionAutoDeactivated,
			Detail: detailFn(ad),
		}

		if err := s.adRepo.ApplyTransition(ctx, ad.ID, false, entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"ad_id":  ad.ID,
				"title":  ad.Title,
				"reason": reason,
			}).Error("Erro ao desativar anúncio por limite esgotado")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"ad_id":  ad.ID,
			"title":  ad.Title,
			"reason": reason,
		}).Info("Anúncio desativado por limite esgotado")
		count++
	}

	return count, nil
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
