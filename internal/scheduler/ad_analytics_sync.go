package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/internal/config"
	"github.com/turviagens/ads-manager-api/internal/usecases/aggregating"
)

// AdAnalyticsSyncConfig representa a configuração do agendador de agregação diária
type AdAnalyticsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	MaxAttempts  int
	Timeout      time.Duration
}

// AdAnalyticsSyncService agenda e executa a agregação diária de métricas.
// Cada invocação tem um teto de tempo e um número máximo de tentativas;
// como a agregação é idempotente, repetir uma tentativa é seguro.
type AdAnalyticsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdAnalyticsSyncConfig
	aggregator          aggregating.AdAggregator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastProcessedCount  int
	lastError           string
}

// NewAdAnalyticsSyncService cria uma nova instância do agendador de agregação
func NewAdAnalyticsSyncService(
	aggregator aggregating.AdAggregator,
	appConfig *config.Config,
) *AdAnalyticsSyncService {
	syncConfig := AdAnalyticsSyncConfig{
		CronSchedule: appConfig.AdAnalyticsSync.CronSchedule,
		SyncEnabled:  appConfig.AdAnalyticsSync.Enabled,
		MaxAttempts:  appConfig.AdAnalyticsSync.MaxAttempts,
		Timeout:      time.Duration(appConfig.AdAnalyticsSync.TimeoutSeconds) * time.Second,
	}

	if syncConfig.MaxAttempts < 1 {
		syncConfig.MaxAttempts = 1
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"max_attempts":  syncConfig.MaxAttempts,
		"timeout":       syncConfig.Timeout.String(),
	}).Info("Configuração do agendador de agregação diária carregada")

	return &AdAnalyticsSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		aggregator: aggregator,
	}
}

// Start inicia o agendador. O tick diário agrega o dia anterior (data
// zero) para todos os anúncios.
func (s *AdAnalyticsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Agregação diária de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de agregação diária de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAggregation(time.Time{}, "")
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar agregação diária de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de agregação diária de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// runAggregation executa a agregação com retry limitado e timeout por
// tentativa. Escopo: todos os anúncios quando adID é vazio.
func (s *AdAnalyticsSyncService) runAggregation(date time.Time, adID string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação diária já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.lastError = ""

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	scopeFields := logrus.Fields{
		"job":  "ad_analytics",
		"date": date.Format(time.DateOnly),
	}
	if adID != "" {
		scopeFields["ad_id"] = adID
	}

	logrus.WithFields(scopeFields).Info("Iniciando agregação diária de métricas")

	var lastErr error
	processed := 0

	for attempt := 1; attempt <= s.config.MaxAttempts; attempt++ {
		processed, lastErr = s.attemptOnce(date, adID)
		if lastErr == nil {
			break
		}

		if !isRetryable(lastErr) {
			logrus.WithError(lastErr).WithFields(scopeFields).Error("Erro não retryable na agregação diária")
			break
		}

		logrus.WithError(lastErr).WithFields(scopeFields).WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": s.config.MaxAttempts,
		}).Warn("Tentativa de agregação diária falhou")
	}

	duration := time.Since(startTime)
	s.lastProcessedCount = processed
	s.lastSyncCompletedAt = time.Now()

	if lastErr != nil {
		s.lastError = lastErr.Error()
		s.notifyFailure(scopeFields, lastErr, processed, duration)
		return
	}

	logrus.WithFields(scopeFields).WithFields(logrus.Fields{
		"duration":  duration.String(),
		"processed": processed,
	}).Info("Agregação diária de métricas concluída")
}

// attemptOnce executa uma única tentativa dentro do teto de tempo configurado
func (s *AdAnalyticsSyncService) attemptOnce(date time.Time, adID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	if adID != "" {
		if err := s.aggregator.AggregateForDate(ctx, adID, date); err != nil {
			return 0, err
		}
		return 1, nil
	}

	return s.aggregator.AggregateAllForDate(ctx, date)
}

// notifyFailure é o caminho de falha terminal: log em severidade de erro
// com contexto suficiente para diagnóstico.
// TODO(ops): ligar na notificação de plantão quando o webhook do canal de
// operações estiver definido.
func (s *AdAnalyticsSyncService) notifyFailure(scopeFields logrus.Fields, err error, processed int, duration time.Duration) {
	logrus.WithError(err).WithFields(scopeFields).WithFields(logrus.Fields{
		"duration":  duration.String(),
		"processed": processed,
	}).Error("Agregação diária de métricas falhou após esgotar as tentativas")
}

// isRetryable separa falhas de validação/escopo, que nunca mudam entre
// tentativas, das falhas transitórias de banco
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, aggregating.ErrAdNotFound),
		errors.Is(err, aggregating.ErrAdIDRequired),
		errors.Is(err, aggregating.ErrInvalidDate),
		errors.Is(err, aggregating.ErrFutureDate):
		return false
	}
	return true
}

// TriggerManualSync inicia manualmente uma agregação com o escopo
// informado (data zero = dia anterior; adID vazio = todos os anúncios)
func (s *AdAnalyticsSyncService) TriggerManualSync(date time.Time, adID string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Agregação diária já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando agregação manual de métricas diárias")
	go s.runAggregation(date, adID)
}

// GetStatus retorna o status atual do agendador
func (s *AdAnalyticsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"max_attempts":           s.config.MaxAttempts,
		"timeout":                s.config.Timeout.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_processed_count":   s.lastProcessedCount,
		"last_error":             s.lastError,
	}
}
