package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/infrastructure/repository/mocks"
	"github.com/ridery/calidad-agentes-api/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRetention(t *testing.T) (*RetentionService, *mocks.MockAuditRepository, *mocks.MockManualMetricRepository) {
	ctrl := gomock.NewController(t)
	auditRepo := mocks.NewMockAuditRepository(ctrl)
	metricRepo := mocks.NewMockManualMetricRepository(ctrl)

	cfg := &config.Config{
		Retention: config.Retention{
			CronSchedule: "0 4 * * 0",
			Months:       24,
			Enabled:      true,
		},
	}

	return NewRetentionService(auditRepo, metricRepo, cfg), auditRepo, metricRepo
}

func TestPrune_DeletesAuditsAndMetrics(t *testing.T) {
	service, auditRepo, metricRepo := newRetention(t)

	auditRepo.EXPECT().DeleteOlderThan(24).Return(int64(12), nil)
	metricRepo.EXPECT().DeleteOlderThan(24).Return(int64(3), nil)

	service.Prune()

	_, rows := service.LastRun()
	assert.Equal(t, int64(15), rows)
}

func TestPrune_ContinuesAfterAuditError(t *testing.T) {
	service, auditRepo, metricRepo := newRetention(t)

	auditRepo.EXPECT().DeleteOlderThan(24).Return(int64(0), errors.New("conexión perdida"))
	metricRepo.EXPECT().DeleteOlderThan(24).Return(int64(5), nil)

	service.Prune()

	_, rows := service.LastRun()
	assert.Equal(t, int64(5), rows)
}
