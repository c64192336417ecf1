// Package scheduler contém os serviços de agendamento dos jobs de
// anúncios: ciclo de vida e agregação diária de métricas.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/internal/config"
	"github.com/turviagens/ads-manager-api/internal/usecases/lifecycling"
)

// AdLifecycleSyncConfig representa a configuração do agendador do ciclo de vida
type AdLifecycleSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AdLifecycleSyncService agenda e executa a varredura do ciclo de vida de
// anúncios. A varredura é naturalmente idempotente, então não há política
// de retry: uma execução com falha é coberta pelo próximo tick do cron.
type AdLifecycleSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdLifecycleSyncConfig
	lifecycler          lifecycling.AdLifecycler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *lifecycling.RunResult
}

// NewAdLifecycleSyncService cria uma nova instância do agendador do ciclo de vida
func NewAdLifecycleSyncService(
	lifecycler lifecycling.AdLifecycler,
	appConfig *config.Config,
) *AdLifecycleSyncService {
	syncConfig := AdLifecycleSyncConfig{
		CronSchedule: appConfig.AdLifecycleSync.CronSchedule,
		SyncEnabled:  appConfig.AdLifecycleSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do ciclo de vida de anúncios carregada")

	return &AdLifecycleSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		lifecycler: lifecycler,
	}
}

// Start inicia o agendador
func (s *AdLifecycleSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura do ciclo de vida de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do ciclo de vida de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runLifecyclePass()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura do ciclo de vida de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do ciclo de vida de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// runLifecyclePass executa uma varredura completa com o relógio de parede
// do momento da invocação
func (s *AdLifecycleSyncService) runLifecyclePass() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura do ciclo de vida já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithFields(logrus.Fields{
		"job": "ad_lifecycle",
	}).Info("Iniciando varredura do ciclo de vida de anúncios")

	result, err := s.lifecycler.Run(context.Background(), startTime)
	if err != nil {
		// Sem retry: a varredura roda de novo no próximo tick
		logrus.WithError(err).WithFields(logrus.Fields{
			"job":      "ad_lifecycle",
			"duration": time.Since(startTime).String(),
		}).Error("Varredura do ciclo de vida de anúncios falhou")
	}

	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"job":         "ad_lifecycle",
		"duration":    time.Since(startTime).String(),
		"activated":   result.Activated,
		"expired":     result.Expired,
		"deactivated": result.Deactivated,
	}).Info("Varredura do ciclo de vida de anúncios finalizada")
}

// TriggerManualSync inicia manualmente uma varredura do ciclo de vida
func (s *AdLifecycleSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura do ciclo de vida já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual do ciclo de vida de anúncios")
	go s.runLifecyclePass()
}

// GetStatus retorna o status atual do agendador
func (s *AdLifecycleSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_result"] = s.lastResult
	}

	return status
}
