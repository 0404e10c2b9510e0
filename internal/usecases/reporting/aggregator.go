package reporting

import (
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/pkg/utils"
)

// Las funciones de este archivo son puras: reciben colecciones ya cargadas y
// siempre devuelven un resultado estructurado. Agentes, semanas o métricas
// ausentes son entrada válida, nunca un error.

// AggregateWeek combina la calidad derivada de auditorías con la métrica
// manual de un agente en una semana. La calidad es el promedio de Score de
// las auditorías cuya fecha cae dentro del rango (inclusive); si no hay
// auditorías queda nil ("sin datos"), no cero.
func AggregateWeek(agentName string, week domain.WeekRange, audits []*domain.Audit, metric domain.ManualWeeklyMetric) domain.AggregatedAgentWeek {
	var scoreSum, auditCount int
	for _, audit := range audits {
		if audit.AgentName != agentName || !week.Contains(audit.Date) {
			continue
		}
		scoreSum += audit.Score
		auditCount++
	}

	row := domain.AggregatedAgentWeek{
		AgentName:             agentName,
		Week:                  week,
		Tickets:               metric.Tickets,
		TicketsBad:            metric.TicketsBad,
		TicketsGood:           metric.TicketsGood,
		FirstResponseSeconds:  metric.FirstResponseSeconds,
		ResolutionTimeMinutes: metric.ResolutionTimeMinutes,
		TicketsPerHour:        metric.TicketsPerHour,
		AuditCount:            auditCount,
	}

	if auditCount > 0 {
		row.Quality = floatPtr(float64(scoreSum) / float64(auditCount))
	}

	row.PercentCalif = ratio(metric.TicketsBad+metric.TicketsGood, metric.Tickets)
	row.Contributing = auditCount > 0 || !metric.IsZero()

	return row
}

// AggregateMonth acumula las semanas de un agente: los contadores se suman
// sobre las semanas contribuyentes, los tiempos y tasas se promedian por
// semana (media aritmética, no ponderada por volumen) y la calidad mensual
// es el promedio de los promedios semanales, no de las auditorías sueltas.
func AggregateMonth(agentName string, weeks []domain.WeekRange, audits []*domain.Audit, bucket domain.ManualMetricsBucket) domain.AggregatedAgentMonth {
	month := domain.AggregatedAgentMonth{
		AgentName: agentName,
		Weeks:     make([]domain.AggregatedAgentWeek, 0, len(weeks)),
	}

	var (
		frSum, rtSum, tphSum float64
		qualitySum           float64
		qualityWeeks         int
	)

	for _, week := range weeks {
		row := AggregateWeek(agentName, week, audits, bucket.ForAgentWeek(agentName, week.Index))
		month.Weeks = append(month.Weeks, row)

		if !row.Contributing {
			continue
		}

		month.WeekCount++
		month.Tickets += row.Tickets
		month.TicketsBad += row.TicketsBad
		month.TicketsGood += row.TicketsGood
		frSum += row.FirstResponseSeconds
		rtSum += row.ResolutionTimeMinutes
		tphSum += row.TicketsPerHour

		if row.Quality != nil {
			qualitySum += *row.Quality
			qualityWeeks++
		}
	}

	if month.WeekCount > 0 {
		n := float64(month.WeekCount)
		month.FirstResponseSeconds = frSum / n
		month.ResolutionTimeMinutes = rtSum / n
		month.TicketsPerHour = tphSum / n
	}

	if qualityWeeks > 0 {
		month.Quality = floatPtr(qualitySum / float64(qualityWeeks))
	}

	rated := month.TicketsBad + month.TicketsGood
	month.PercentCalif = ratio(rated, month.Tickets)
	month.PercentCalifPositivos = ratio(month.TicketsGood, rated)
	month.PercentSatisfaccion = ratio(month.TicketsGood, month.Tickets)

	return month
}

// BuildTotals arma la fila PROMEDIO/TOTAL del reporte: suma los contadores y
// promedia tiempos, tasas y calidad sobre los agentes con al menos una semana
// contribuyente. Los porcentajes se recalculan sobre los contadores sumados.
func BuildTotals(agents []domain.AggregatedAgentMonth) domain.ReportTotals {
	totals := domain.ReportTotals{}

	var (
		frSum, rtSum, tphSum float64
		qualitySum           float64
		qualityAgents        int
	)

	for _, agent := range agents {
		if agent.WeekCount == 0 {
			continue
		}

		totals.AgentCount++
		totals.Tickets += agent.Tickets
		totals.TicketsBad += agent.TicketsBad
		totals.TicketsGood += agent.TicketsGood
		frSum += agent.FirstResponseSeconds
		rtSum += agent.ResolutionTimeMinutes
		tphSum += agent.TicketsPerHour

		if agent.Quality != nil {
			qualitySum += *agent.Quality
			qualityAgents++
		}
	}

	if totals.AgentCount > 0 {
		n := float64(totals.AgentCount)
		totals.FirstResponseSeconds = frSum / n
		totals.ResolutionTimeMinutes = rtSum / n
		totals.TicketsPerHour = tphSum / n
	}

	if qualityAgents > 0 {
		totals.Quality = floatPtr(qualitySum / float64(qualityAgents))
	}

	rated := totals.TicketsBad + totals.TicketsGood
	totals.PercentCalif = ratio(rated, totals.Tickets)
	totals.PercentCalifPositivos = ratio(totals.TicketsGood, rated)
	totals.PercentSatisfaccion = ratio(totals.TicketsGood, totals.Tickets)

	return totals
}

// ratio devuelve num/den como porcentaje con dos decimales, o nil con
// denominador cero.
func ratio(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	return floatPtr(utils.RoundWithTwoDecimalPlace(float64(num) / float64(den) * 100))
}

func floatPtr(v float64) *float64 {
	return &v
}
