package domain

// ManualWeeklyMetric son los contadores operativos que un editor carga a mano
// por agente y por semana. Son independientes de las auditorías: la calidad
// nunca se toma de aquí ni los tiempos se derivan de auditorías.
type ManualWeeklyMetric struct {
	Tickets               int     `json:"tickets"`
	TicketsBad            int     `json:"tickets_bad"`
	TicketsGood           int     `json:"tickets_good"`
	FirstResponseSeconds  float64 `json:"first_response_seconds"`
	ResolutionTimeMinutes float64 `json:"resolution_time_minutes"`
	TicketsPerHour        float64 `json:"tickets_per_hour"`
}

// IsZero indica si la métrica no aporta ningún dato. Las semanas sin datos
// manuales ni auditorías se excluyen de los denominadores mensuales.
func (m ManualWeeklyMetric) IsZero() bool {
	return m.Tickets == 0 &&
		m.TicketsBad == 0 &&
		m.TicketsGood == 0 &&
		m.FirstResponseSeconds == 0 &&
		m.ResolutionTimeMinutes == 0 &&
		m.TicketsPerHour == 0
}

// ManualMetricsBucket agrupa las métricas manuales de un (año, mes):
// nombre de agente -> índice de semana -> métrica. Al guardar se reemplaza
// el bucket completo, no se mezclan campos (contrato del repositorio).
type ManualMetricsBucket map[string]map[int]ManualWeeklyMetric

// ForAgentWeek devuelve la métrica de un agente en una semana, o una métrica
// vacía si no hay entrada. La ausencia de datos es entrada válida, no error.
func (b ManualMetricsBucket) ForAgentWeek(agentName string, weekIndex int) ManualWeeklyMetric {
	if weeks, ok := b[agentName]; ok {
		if m, ok := weeks[weekIndex]; ok {
			return m
		}
	}
	return ManualWeeklyMetric{}
}
