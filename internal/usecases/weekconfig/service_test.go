package weekconfig

import (
	"testing"
	"time"

	"github.com/ridery/calidad-agentes-api/infrastructure/repository/mocks"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedNow(year, month, day int) Option {
	return WithNowFunc(func() time.Time {
		return time.Date(year, time.Month(month), day, 15, 30, 0, 0, time.UTC)
	})
}

func TestDefaultWeeks_PastMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	weeks := svc.DefaultWeeks(2025, 1)
	require.Len(t, weeks, 5)

	assert.Equal(t, "2025-01-01", weeks[0].StartDate)
	assert.Equal(t, "2025-01-07", weeks[0].EndDate)
	assert.Equal(t, "2025-01-22", weeks[3].StartDate)
	assert.Equal(t, "2025-01-28", weeks[3].EndDate)

	// El último rango se trunca en el fin de mes.
	assert.Equal(t, "2025-01-29", weeks[4].StartDate)
	assert.Equal(t, "2025-01-31", weeks[4].EndDate)

	// Los rangos son contiguos: cada inicio es el día siguiente al fin anterior.
	for i := 1; i < len(weeks); i++ {
		prevEnd, err := time.Parse("2006-01-02", weeks[i-1].EndDate)
		require.NoError(t, err)
		assert.Equal(t, prevEnd.AddDate(0, 0, 1).Format("2006-01-02"), weeks[i].StartDate)
		assert.Equal(t, i+1, weeks[i].Index)
	}
}

func TestDefaultWeeks_TruncatedAtToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	svc := NewService(repo, fixedNow(2025, 2, 10))

	weeks := svc.DefaultWeeks(2025, 2)
	require.Len(t, weeks, 2)

	assert.Equal(t, "2025-02-01", weeks[0].StartDate)
	assert.Equal(t, "2025-02-07", weeks[0].EndDate)
	assert.Equal(t, "2025-02-08", weeks[1].StartDate)
	assert.Equal(t, "2025-02-10", weeks[1].EndDate)
}

func TestDefaultWeeks_FutureMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	svc := NewService(repo, fixedNow(2025, 2, 10))

	weeks := svc.DefaultWeeks(2025, 6)
	assert.Empty(t, weeks)
}

func TestGetConfig_SavedConfigWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	saved := []domain.WeekRange{
		{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-15", Label: "Quincena 1"},
		{Index: 2, StartDate: "2025-01-16", EndDate: "2025-01-31", Label: "Quincena 2"},
	}
	repo.EXPECT().Get(2025, 1).Return(saved, nil)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	cfg, err := svc.GetConfig(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, 1, cfg.Month)
	assert.Equal(t, saved, cfg.Weeks)
}

func TestGetConfig_FallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	repo.EXPECT().Get(2025, 1).Return(nil, nil)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	cfg, err := svc.GetConfig(2025, 1)
	require.NoError(t, err)
	assert.Len(t, cfg.Weeks, 5)
	assert.Equal(t, "Semana 1", cfg.Weeks[0].Label)
}

func TestSaveConfig_RejectsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	_, err := svc.SaveConfig(2025, 1, nil)
	assert.ErrorIs(t, err, ErrEmptyWeekConfig)
}

func TestSaveConfig_RejectsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	_, err := svc.SaveConfig(2025, 1, []domain.WeekRange{
		{StartDate: "2025-01-10", EndDate: "2025-01-05"},
	})
	assert.ErrorIs(t, err, ErrInvalidWeekRange)
}

func TestSaveConfig_ReindexesAndLabels(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	want := []domain.WeekRange{
		{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-10", Label: "Semana 1"},
		{Index: 2, StartDate: "2025-01-11", EndDate: "2025-01-31", Label: "Cierre"},
	}
	repo.EXPECT().Save(2025, 1, want).Return(nil)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	cfg, err := svc.SaveConfig(2025, 1, []domain.WeekRange{
		{Index: 7, StartDate: "2025-01-01", EndDate: "2025-01-10"},
		{Index: 9, StartDate: "2025-01-11", EndDate: "2025-01-31", Label: "Cierre"},
	})
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Weeks)
}

func TestAddWeek_AppendsAfterLastEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	saved := []domain.WeekRange{
		{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-07", Label: "Semana 1"},
		{Index: 2, StartDate: "2025-01-08", EndDate: "2025-01-14", Label: "Semana 2"},
		{Index: 3, StartDate: "2025-01-15", EndDate: "2025-01-21", Label: "Semana 3"},
		{Index: 4, StartDate: "2025-01-22", EndDate: "2025-01-28", Label: "Semana 4"},
	}
	repo.EXPECT().Get(2025, 1).Return(saved, nil)
	repo.EXPECT().Save(2025, 1, gomock.Any()).Return(nil)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	cfg, err := svc.AddWeek(2025, 1)
	require.NoError(t, err)
	require.Len(t, cfg.Weeks, 5)

	// El rango nuevo cruza hacia febrero: el editor puede extender el mes.
	added := cfg.Weeks[4]
	assert.Equal(t, 5, added.Index)
	assert.Equal(t, "2025-01-29", added.StartDate)
	assert.Equal(t, "2025-02-04", added.EndDate)
}

func TestDeleteWeek_RemovesAndReindexes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	saved := []domain.WeekRange{
		{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-07", Label: "Semana 1"},
		{Index: 2, StartDate: "2025-01-08", EndDate: "2025-01-14", Label: "Semana 2"},
		{Index: 3, StartDate: "2025-01-15", EndDate: "2025-01-21", Label: "Semana 3"},
	}
	repo.EXPECT().Get(2025, 1).Return(saved, nil)
	repo.EXPECT().Save(2025, 1, gomock.Any()).Return(nil)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	cfg, deleted, err := svc.DeleteWeek(2025, 1, 2)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, cfg.Weeks, 2)

	assert.Equal(t, "2025-01-01", cfg.Weeks[0].StartDate)
	assert.Equal(t, "2025-01-15", cfg.Weeks[1].StartDate)
	assert.Equal(t, 1, cfg.Weeks[0].Index)
	assert.Equal(t, 2, cfg.Weeks[1].Index)
}

func TestDeleteWeek_KeepsLastRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	saved := []domain.WeekRange{
		{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-31", Label: "Mes completo"},
	}
	repo.EXPECT().Get(2025, 1).Return(saved, nil)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	cfg, deleted, err := svc.DeleteWeek(2025, 1, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, saved, cfg.Weeks)
}

func TestDeleteWeek_UnknownIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeekConfigRepository(ctrl)

	saved := []domain.WeekRange{
		{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-07", Label: "Semana 1"},
		{Index: 2, StartDate: "2025-01-08", EndDate: "2025-01-14", Label: "Semana 2"},
	}
	repo.EXPECT().Get(2025, 1).Return(saved, nil)

	svc := NewService(repo, fixedNow(2025, 3, 15))

	_, deleted, err := svc.DeleteWeek(2025, 1, 9)
	require.NoError(t, err)
	assert.False(t, deleted)
}
