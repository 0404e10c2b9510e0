package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/ridery/calidad-agentes-api/infrastructure/repository"
	"github.com/ridery/calidad-agentes-api/internal/config"
	"github.com/sirupsen/logrus"
)

// RetentionService agenda la poda periódica de auditorías y métricas
// manuales viejas. Los reportes solo miran meses recientes, así que los
// períodos más allá de la ventana de retención se eliminan.
type RetentionService struct {
	scheduler     *gocron.Scheduler
	config        config.Retention
	auditRepo     repository.AuditRepository
	metricRepo    repository.ManualMetricRepository
	pruneRunning  bool
	pruneMutex    sync.Mutex
	lastPrunedAt  time.Time
	lastPruneRows int64
}

func NewRetentionService(
	auditRepo repository.AuditRepository,
	metricRepo repository.ManualMetricRepository,
	appConfig *config.Config,
) *RetentionService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":    appConfig.Retention.CronSchedule,
		"retention_months": appConfig.Retention.Months,
		"enabled":          appConfig.Retention.Enabled,
	}).Info("Configuración de retención cargada")

	return &RetentionService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     appConfig.Retention,
		auditRepo:  auditRepo,
		metricRepo: metricRepo,
	}
}

// Start inicia el agendador de retención
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Poda de retención deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retención")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Prune()
	})
	if err != nil {
		return fmt.Errorf("error al agendar la poda de retención: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retención")
		s.scheduler.Stop()
	}()

	return nil
}

// Prune elimina auditorías y buckets de métricas anteriores a la ventana de
// retención. Si ya hay una poda en curso, la ejecución se ignora.
func (s *RetentionService) Prune() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Poda de retención ya en curso, ignorando")
		return
	}
	s.pruneRunning = true
	s.pruneMutex.Unlock()

	defer func() {
		s.pruneMutex.Lock()
		s.pruneRunning = false
		s.pruneMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.WithField("retention_months", s.config.Months).Info("Iniciando poda de retención")

	var total int64

	audits, err := s.auditRepo.DeleteOlderThan(s.config.Months)
	if err != nil {
		logrus.WithError(err).Error("Error al podar auditorías viejas")
	} else {
		total += audits
	}

	metrics, err := s.metricRepo.DeleteOlderThan(s.config.Months)
	if err != nil {
		logrus.WithError(err).Error("Error al podar métricas manuales viejas")
	} else {
		total += metrics
	}

	s.lastPrunedAt = startTime
	s.lastPruneRows = total

	logrus.WithFields(logrus.Fields{
		"audits_deleted":  audits,
		"metrics_deleted": metrics,
		"duration":        time.Since(startTime).String(),
	}).Info("Poda de retención finalizada")
}

// LastRun devuelve cuándo corrió la última poda y cuántas filas eliminó
func (s *RetentionService) LastRun() (time.Time, int64) {
	s.pruneMutex.Lock()
	defer s.pruneMutex.Unlock()
	return s.lastPrunedAt, s.lastPruneRows
}
