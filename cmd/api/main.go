package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/ridery/calidad-agentes-api/infrastructure/database/postgres"
	"github.com/ridery/calidad-agentes-api/infrastructure/repository"
	"github.com/ridery/calidad-agentes-api/internal/api"
	"github.com/ridery/calidad-agentes-api/internal/config"
	"github.com/ridery/calidad-agentes-api/internal/scheduler"
	"github.com/ridery/calidad-agentes-api/internal/usecases/auditing"
	"github.com/ridery/calidad-agentes-api/internal/usecases/authenticating"
	"github.com/ridery/calidad-agentes-api/internal/usecases/directory"
	"github.com/ridery/calidad-agentes-api/internal/usecases/reporting"
	"github.com/ridery/calidad-agentes-api/internal/usecases/scoring"
	"github.com/ridery/calidad-agentes-api/internal/usecases/weekconfig"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	auditRepo := repository.NewAuditRepository(pgConn)
	metricRepo := repository.NewManualMetricRepository(pgConn)
	weekConfigRepo := repository.NewWeekConfigRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	calculator := scoring.NewService()
	auditor := auditing.NewService(auditRepo, calculator)
	weekCfg := weekconfig.NewService(weekConfigRepo)
	dir := directory.NewService(teamRepo)
	reporter := reporting.NewService(auditRepo, metricRepo, teamRepo, weekCfg)

	retentionService := scheduler.NewRetentionService(auditRepo, metricRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de retención")
	} else {
		logrus.Info("Agendador de retención iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		auditor,
		reporter,
		dir,
		weekCfg,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar a PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
