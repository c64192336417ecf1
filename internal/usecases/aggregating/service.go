// Package aggregating materializa os eventos brutos de veiculação em uma
// linha de estatística diária por anúncio.
package aggregating

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/infrastructure/repository"
	"github.com/turviagens/ads-manager-api/internal/domain"
	"github.com/turviagens/ads-manager-api/pkg/utils"
)

// maxReportedFailures limita os IDs carregados em PartialBatchError
const maxReportedFailures = 5

// AdAggregator agrega eventos brutos em estatísticas diárias. A agregação
// é idempotente: repetir o mesmo dia substitui a linha, nunca duplica.
type AdAggregator interface {
	AggregateForDate(ctx context.Context, adID string, date time.Time) error
	AggregateAllForDate(ctx context.Context, date time.Time) (int, error)
}

type Service struct {
	adRepo    repository.AdRepository
	eventRepo repository.AdEventRepository
	statRepo  repository.AdDailyStatRepository
}

func NewService(
	adRepo repository.AdRepository,
	eventRepo repository.AdEventRepository,
	statRepo repository.AdDailyStatRepository,
) AdAggregator {
	return &Service{
		adRepo:    adRepo,
		eventRepo: eventRepo,
		statRepo:  statRepo,
	}
}

// AggregateForDate agrega os eventos de um anúncio para um dia de
// calendário. Data zero usa o dia anterior no fuso local do servidor.
func (s *Service) AggregateForDate(ctx context.Context, adID string, date time.Time) error {
	if adID == "" {
		return ErrAdIDRequired
	}

	day, err := NormalizeDay(date, time.Now())
	if err != nil {
		return err
	}

	ad, err := s.adRepo.GetAdByID(ctx, adID)
	if err != nil {
		return fmt.Errorf("erro ao buscar anúncio %s: %w", adID, err)
	}
	if ad == nil {
		return fmt.Errorf("anúncio %s: %w", adID, ErrAdNotFound)
	}

	return s.aggregateDay(ctx, ad, day)
}

// AggregateAllForDate agrega todos os anúncios do sistema para a data,
// independentemente do status: anúncios já inativos ainda têm dias
// históricos com eventos. Retorna o número de anúncios processados com
// sucesso; falhas individuais são registradas e reportadas juntas em um
// PartialBatchError sem abortar os demais.
func (s *Service) AggregateAllForDate(ctx context.Context, date time.Time) (int, error) {
	day, err := NormalizeDay(date, time.Now())
	if err != nil {
		return 0, err
	}

	ads, err := s.adRepo.ListAds(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar anúncios para agregação: %w", err)
	}

	succeeded := 0
	failed := 0
	failedIDs := make([]string, 0, maxReportedFailures)

	for _, ad := range ads {
		if err := s.aggregateDay(ctx, ad, day); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"ad_id": ad.ID,
				"date":  day.Format(time.DateOnly),
			}).Error("Erro ao agregar estatísticas do anúncio")

			failed++
			if len(failedIDs) < maxReportedFailures {
				failedIDs = append(failedIDs, ad.ID)
			}
			continue
		}
		succeeded++
	}

	logrus.WithFields(logrus.Fields{
		"date":      day.Format(time.DateOnly),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Agregação diária de estatísticas concluída")

	if failed > 0 {
		return succeeded, &PartialBatchError{Failed: failed, FailedIDs: failedIDs}
	}

	return succeeded, nil
}

// aggregateDay soma os eventos do dia e substitui a linha de estatística
// do par (anúncio, dia)
func (s *Service) aggregateDay(ctx context.Context, ad *domain.Ad, day time.Time) error {
	dayEnd := day.AddDate(0, 0, 1)

	totals, err := s.eventRepo.TotalsForDay(ctx, ad.ID, day, dayEnd)
	if err != nil {
		return fmt.Errorf("erro ao somar eventos: %w", err)
	}

	stat := &domain.AdDailyStat{
		AdID:        ad.ID,
		StatDate:    day,
		Impressions: totals.Impressions,
		Clicks:      totals.Clicks,
		CTR:         computeCTR(totals.Impressions, totals.Clicks),
	}

	if err := s.statRepo.SaveOrUpdate(ctx, stat); err != nil {
		return fmt.Errorf("erro ao salvar estatística diária: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"ad_id":       ad.ID,
		"date":        day.Format(time.DateOnly),
		"impressions": stat.Impressions,
		"clicks":      stat.Clicks,
	}).Debug("Estatística diária do anúncio salva")

	return nil
}

// NormalizeDay aplica a política de fuso horário da agregação: datas são
// normalizadas para a meia-noite local do servidor. Data zero vira o dia
// anterior a now; dias futuros são rejeitados.
func NormalizeDay(date time.Time, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	if date.IsZero() {
		return today.AddDate(0, 0, -1), nil
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	if day.After(today) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrFutureDate, day.Format(time.DateOnly))
	}

	return day, nil
}

// computeCTR calcula a taxa de cliques em porcentagem, arredondada para
// duas casas. O valor é calculado na escrita e armazenado na linha.
func computeCTR(impressions, clicks int64) float64 {
	if impressions == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
}
