package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/turviagens/ads-manager-api/infrastructure/database/postgres"
	"github.com/turviagens/ads-manager-api/infrastructure/repository"
	"github.com/turviagens/ads-manager-api/internal/api"
	"github.com/turviagens/ads-manager-api/internal/config"
	"github.com/turviagens/ads-manager-api/internal/scheduler"
	"github.com/turviagens/ads-manager-api/internal/usecases/aggregating"
	"github.com/turviagens/ads-manager-api/internal/usecases/lifecycling"
	"github.com/turviagens/ads-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	adRepo := repository.NewAdRepository(pgConn)
	auditRepo := repository.NewAdAuditRepository(pgConn)
	eventRepo := repository.NewAdEventRepository(pgConn)
	statRepo := repository.NewAdDailyStatRepository(pgConn)

	lifecycleService := lifecycling.NewService(adRepo)
	aggregatorService := aggregating.NewService(adRepo, eventRepo, statRepo)
	reportingService := reporting.NewService(adRepo, statRepo, auditRepo)

	// Inicializa os agendadores dos jobs
	lifecycleSyncService := scheduler.NewAdLifecycleSyncService(lifecycleService, cfg)
	analyticsSyncService := scheduler.NewAdAnalyticsSyncService(aggregatorService, cfg)

	// Inicia os agendadores em background
	if err := lifecycleSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ciclo de vida de anúncios")
	} else {
		logrus.Info("Agendador do ciclo de vida de anúncios iniciado com sucesso")
	}

	if err := analyticsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de agregação diária de métricas")
	} else {
		logrus.Info("Agendador de agregação diária de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		aggregatorService,
		lifecycleSyncService,
		analyticsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
