package reporting

import (
	"testing"
	"time"

	"github.com/ridery/calidad-agentes-api/infrastructure/repository/mocks"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/internal/usecases/weekconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reporterMocks struct {
	auditRepo  *mocks.MockAuditRepository
	metricRepo *mocks.MockManualMetricRepository
	teamRepo   *mocks.MockTeamRepository
	weekRepo   *mocks.MockWeekConfigRepository
}

func newReporter(t *testing.T) (Reporter, reporterMocks) {
	ctrl := gomock.NewController(t)
	m := reporterMocks{
		auditRepo:  mocks.NewMockAuditRepository(ctrl),
		metricRepo: mocks.NewMockManualMetricRepository(ctrl),
		teamRepo:   mocks.NewMockTeamRepository(ctrl),
		weekRepo:   mocks.NewMockWeekConfigRepository(ctrl),
	}

	weekCfg := weekconfig.NewService(m.weekRepo, weekconfig.WithNowFunc(func() time.Time {
		return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	}))

	return NewService(m.auditRepo, m.metricRepo, m.teamRepo, weekCfg), m
}

var savedWeeks = []domain.WeekRange{
	{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-07", Label: "Semana 1"},
	{Index: 2, StartDate: "2025-01-08", EndDate: "2025-01-14", Label: "Semana 2"},
}

func TestMonthlyReport_ScopeFiltersAuditsAndAgents(t *testing.T) {
	svc, m := newReporter(t)

	m.weekRepo.EXPECT().Get(2025, 1).Return(savedWeeks, nil)
	m.auditRepo.EXPECT().ListByMonth(2025, 1).Return([]*domain.Audit{
		{AgentName: "Carla", TeamID: "am", Date: "2025-01-02", Score: 90},
		{AgentName: "Pedro", TeamID: "pm", Date: "2025-01-03", Score: 40},
	}, nil)
	m.metricRepo.EXPECT().GetBucket(2025, 1).Return(domain.ManualMetricsBucket{}, nil)
	m.teamRepo.EXPECT().ListAgentsByTeam("am").Return([]*domain.Agent{
		{ID: "ag-1", Name: "Carla", TeamID: "am"},
	}, nil)

	report, err := svc.MonthlyReport(2025, 1, domain.ScopeForTeam("am"))
	require.NoError(t, err)

	// Pedro es de otro equipo: ni su auditoría ni su fila entran al reporte.
	require.Len(t, report.Agents, 1)
	assert.Equal(t, "Carla", report.Agents[0].AgentName)
	require.NotNil(t, report.Agents[0].Quality)
	assert.InDelta(t, 90.0, *report.Agents[0].Quality, 0.001)
	assert.Equal(t, 1, report.Totals.AgentCount)
}

func TestMonthlyReport_RosterIsUnionOfSources(t *testing.T) {
	svc, m := newReporter(t)

	m.weekRepo.EXPECT().Get(2025, 1).Return(savedWeeks, nil)
	m.auditRepo.EXPECT().ListByMonth(2025, 1).Return([]*domain.Audit{
		{AgentName: "Auditada Sola", TeamID: "am", Date: "2025-01-02", Score: 100},
	}, nil)
	m.metricRepo.EXPECT().GetBucket(2025, 1).Return(domain.ManualMetricsBucket{
		"Solo Manual": {1: {Tickets: 10, TicketsGood: 9}},
	}, nil)
	m.teamRepo.EXPECT().ListAgents().Return([]*domain.Agent{
		{ID: "ag-1", Name: "Del Catalogo", TeamID: "am"},
	}, nil)

	report, err := svc.MonthlyReport(2025, 1, domain.ScopeAllTeams())
	require.NoError(t, err)

	names := make([]string, 0, len(report.Agents))
	for _, agent := range report.Agents {
		names = append(names, agent.AgentName)
	}
	assert.Equal(t, []string{"Auditada Sola", "Del Catalogo", "Solo Manual"}, names)

	// Solo dos agentes tienen semanas contribuyentes.
	assert.Equal(t, 2, report.Totals.AgentCount)
}

func TestMonthlyReport_UsesDefaultWeeksWhenNoneSaved(t *testing.T) {
	svc, m := newReporter(t)

	m.weekRepo.EXPECT().Get(2025, 1).Return(nil, nil)
	m.auditRepo.EXPECT().ListByMonth(2025, 1).Return(nil, nil)
	m.metricRepo.EXPECT().GetBucket(2025, 1).Return(domain.ManualMetricsBucket{}, nil)
	m.teamRepo.EXPECT().ListAgents().Return(nil, nil)

	report, err := svc.MonthlyReport(2025, 1, domain.ScopeAllTeams())
	require.NoError(t, err)
	assert.Len(t, report.Weeks, 5)
	assert.Empty(t, report.Agents)
}

func TestWeeklyReport_SingleWeek(t *testing.T) {
	svc, m := newReporter(t)

	m.weekRepo.EXPECT().Get(2025, 1).Return(savedWeeks, nil)
	m.auditRepo.EXPECT().ListByMonth(2025, 1).Return([]*domain.Audit{
		{AgentName: "Carla", TeamID: "am", Date: "2025-01-02", Score: 80},
		{AgentName: "Carla", TeamID: "am", Date: "2025-01-09", Score: 20},
	}, nil)
	m.metricRepo.EXPECT().GetBucket(2025, 1).Return(domain.ManualMetricsBucket{
		"Carla": {1: {Tickets: 40, TicketsBad: 2, TicketsGood: 30}},
	}, nil)
	m.teamRepo.EXPECT().ListAgents().Return(nil, nil)

	rows, err := svc.WeeklyReport(2025, 1, 1, domain.ScopeAllTeams())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.AuditCount) // la auditoría del 9 es de la semana 2
	require.NotNil(t, row.Quality)
	assert.InDelta(t, 80.0, *row.Quality, 0.001)
	assert.Equal(t, 40, row.Tickets)
}

func TestWeeklyReport_UnknownWeek(t *testing.T) {
	svc, m := newReporter(t)

	m.weekRepo.EXPECT().Get(2025, 1).Return(savedWeeks, nil)

	_, err := svc.WeeklyReport(2025, 1, 7, domain.ScopeAllTeams())
	assert.ErrorIs(t, err, ErrWeekNotFound)
}
