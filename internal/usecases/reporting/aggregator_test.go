package reporting

import (
	"testing"

	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var week1 = domain.WeekRange{Index: 1, StartDate: "2025-01-01", EndDate: "2025-01-07"}
var week2 = domain.WeekRange{Index: 2, StartDate: "2025-01-08", EndDate: "2025-01-14"}

func audit(agent, date string, score int) *domain.Audit {
	return &domain.Audit{AgentName: agent, TeamID: "am", Date: date, Score: score}
}

func TestAggregateWeek_QualityIsMeanOfAuditsInRange(t *testing.T) {
	audits := []*domain.Audit{
		audit("Carla", "2025-01-02", 80),
		audit("Carla", "2025-01-07", 90),
		audit("Carla", "2025-01-08", 10), // fuera del rango
		audit("Pedro", "2025-01-03", 0),  // otro agente
	}

	row := AggregateWeek("Carla", week1, audits, domain.ManualWeeklyMetric{})

	assert.Equal(t, 2, row.AuditCount)
	require.NotNil(t, row.Quality)
	assert.InDelta(t, 85.0, *row.Quality, 0.001)
	assert.True(t, row.Contributing)

	// Sin tickets no hay % Calif., ni siquiera cero.
	assert.Nil(t, row.PercentCalif)
}

func TestAggregateWeek_NoDataAtAll(t *testing.T) {
	row := AggregateWeek("Carla", week1, nil, domain.ManualWeeklyMetric{})

	assert.Nil(t, row.Quality)
	assert.Nil(t, row.PercentCalif)
	assert.False(t, row.Contributing)
	assert.Zero(t, row.Tickets)
}

func TestAggregateWeek_PercentCalif(t *testing.T) {
	metric := domain.ManualWeeklyMetric{Tickets: 100, TicketsBad: 10, TicketsGood: 80}

	row := AggregateWeek("Carla", week1, nil, metric)

	require.NotNil(t, row.PercentCalif)
	assert.InDelta(t, 90.0, *row.PercentCalif, 0.001)
	assert.True(t, row.Contributing)
	assert.Nil(t, row.Quality)
}

func TestAggregateMonth_SumsCountsAcrossContributingWeeks(t *testing.T) {
	bucket := domain.ManualMetricsBucket{
		"Carla": {
			1: {Tickets: 100, TicketsBad: 10, TicketsGood: 80},
			// semana 2 sin datos
		},
	}

	month := AggregateMonth("Carla", []domain.WeekRange{week1, week2}, nil, bucket)

	assert.Equal(t, 100, month.Tickets)
	assert.Equal(t, 1, month.WeekCount)

	require.NotNil(t, month.PercentCalifPositivos)
	assert.InDelta(t, 88.89, *month.PercentCalifPositivos, 0.01)

	require.NotNil(t, month.PercentSatisfaccion)
	assert.InDelta(t, 80.0, *month.PercentSatisfaccion, 0.001)
}

func TestAggregateMonth_QualityIsMeanOfWeeklyMeans(t *testing.T) {
	audits := []*domain.Audit{
		audit("Carla", "2025-01-02", 100),
		audit("Carla", "2025-01-03", 50),
		audit("Carla", "2025-01-09", 90),
	}

	month := AggregateMonth("Carla", []domain.WeekRange{week1, week2}, audits, domain.ManualMetricsBucket{})

	// (75 + 90) / 2, no el promedio de las tres auditorías sueltas (80).
	require.NotNil(t, month.Quality)
	assert.InDelta(t, 82.5, *month.Quality, 0.001)
	assert.Equal(t, 2, month.WeekCount)
}

func TestAggregateMonth_RatesAveragedOverContributingWeeks(t *testing.T) {
	week3 := domain.WeekRange{Index: 3, StartDate: "2025-01-15", EndDate: "2025-01-21"}
	bucket := domain.ManualMetricsBucket{
		"Carla": {
			1: {Tickets: 50, FirstResponseSeconds: 100, TicketsPerHour: 4},
			2: {Tickets: 30, FirstResponseSeconds: 200, TicketsPerHour: 6},
			// semana 3 vacía: no diluye los promedios
		},
	}

	month := AggregateMonth("Carla", []domain.WeekRange{week1, week2, week3}, nil, bucket)

	assert.Equal(t, 80, month.Tickets)
	assert.Equal(t, 2, month.WeekCount)
	assert.InDelta(t, 150.0, month.FirstResponseSeconds, 0.001)
	assert.InDelta(t, 5.0, month.TicketsPerHour, 0.001)
}

func TestAggregateMonth_TotallyEmptyAgent(t *testing.T) {
	month := AggregateMonth("Carla", []domain.WeekRange{week1, week2}, nil, domain.ManualMetricsBucket{})

	assert.Zero(t, month.WeekCount)
	assert.Nil(t, month.Quality)
	assert.Nil(t, month.PercentCalif)
	assert.Nil(t, month.PercentCalifPositivos)
	assert.Nil(t, month.PercentSatisfaccion)
}

func TestBuildTotals_CountsOnlyContributingAgents(t *testing.T) {
	q1, q2 := 90.0, 70.0
	agents := []domain.AggregatedAgentMonth{
		{
			AgentName: "Carla", WeekCount: 2,
			Tickets: 100, TicketsBad: 10, TicketsGood: 80,
			FirstResponseSeconds: 100, TicketsPerHour: 4,
			Quality: &q1,
		},
		{
			AgentName: "Pedro", WeekCount: 1,
			Tickets: 50, TicketsBad: 5, TicketsGood: 40,
			FirstResponseSeconds: 200, TicketsPerHour: 6,
			Quality: &q2,
		},
		{AgentName: "Sin Actividad"},
	}

	totals := BuildTotals(agents)

	assert.Equal(t, 2, totals.AgentCount)
	assert.Equal(t, 150, totals.Tickets)
	assert.Equal(t, 120, totals.TicketsGood)
	assert.InDelta(t, 150.0, totals.FirstResponseSeconds, 0.001)
	assert.InDelta(t, 5.0, totals.TicketsPerHour, 0.001)

	require.NotNil(t, totals.Quality)
	assert.InDelta(t, 80.0, *totals.Quality, 0.001)

	// Porcentajes sobre los contadores sumados: (15+120)/150 = 90%.
	require.NotNil(t, totals.PercentCalif)
	assert.InDelta(t, 90.0, *totals.PercentCalif, 0.001)
}

func TestBuildTotals_NoAgents(t *testing.T) {
	totals := BuildTotals(nil)

	assert.Zero(t, totals.AgentCount)
	assert.Nil(t, totals.Quality)
	assert.Nil(t, totals.PercentCalif)
	assert.Nil(t, totals.PercentCalifPositivos)
	assert.Nil(t, totals.PercentSatisfaccion)
}
