package domain

// AggregatedAgentWeek es la vista derivada de un agente en una semana: la
// calidad proveniente de auditorías combinada con la métrica manual. Se
// recalcula bajo demanda y nunca se persiste.
//
// Los porcentajes son punteros: nil significa "sin datos" (denominador cero
// o semana sin auditorías), nunca 0 ni NaN.
type AggregatedAgentWeek struct {
	AgentName             string   `json:"agent_name"`
	Week                  WeekRange `json:"week"`
	Tickets               int      `json:"tickets"`
	TicketsBad            int      `json:"tickets_bad"`
	TicketsGood           int      `json:"tickets_good"`
	FirstResponseSeconds  float64  `json:"first_response_seconds"`
	ResolutionTimeMinutes float64  `json:"resolution_time_minutes"`
	TicketsPerHour        float64  `json:"tickets_per_hour"`
	AuditCount            int      `json:"audit_count"`
	Quality               *float64 `json:"quality,omitempty"`       // % Calidad: promedio de Score de auditorías
	PercentCalif          *float64 `json:"percent_calif,omitempty"` // (malos+buenos)/tickets
	Contributing          bool     `json:"contributing"`
}

// AggregatedAgentMonth acumula las semanas contribuyentes de un agente en el
// mes: los contadores se suman, los tiempos y tasas se promedian por semana
// (media aritmética, sin ponderar por volumen) y la calidad mensual es el
// promedio de los promedios semanales.
type AggregatedAgentMonth struct {
	AgentName             string   `json:"agent_name"`
	Tickets               int      `json:"tickets"`
	TicketsBad            int      `json:"tickets_bad"`
	TicketsGood           int      `json:"tickets_good"`
	FirstResponseSeconds  float64  `json:"first_response_seconds"`
	ResolutionTimeMinutes float64  `json:"resolution_time_minutes"`
	TicketsPerHour        float64  `json:"tickets_per_hour"`
	WeekCount             int      `json:"week_count"`
	Quality               *float64 `json:"quality,omitempty"`
	PercentCalif          *float64 `json:"percent_calif,omitempty"`
	PercentCalifPositivos *float64 `json:"percent_calif_positivos,omitempty"`
	PercentSatisfaccion   *float64 `json:"percent_satisfaccion,omitempty"`
	Weeks                 []AggregatedAgentWeek `json:"weeks,omitempty"`
}

// ReportTotals es la fila PROMEDIO/TOTAL del reporte mensual: suma de
// contadores y promedio de tasas sobre los agentes con al menos una semana
// contribuyente.
type ReportTotals struct {
	AgentCount            int      `json:"agent_count"`
	Tickets               int      `json:"tickets"`
	TicketsBad            int      `json:"tickets_bad"`
	TicketsGood           int      `json:"tickets_good"`
	FirstResponseSeconds  float64  `json:"first_response_seconds"`
	ResolutionTimeMinutes float64  `json:"resolution_time_minutes"`
	TicketsPerHour        float64  `json:"tickets_per_hour"`
	Quality               *float64 `json:"quality,omitempty"`
	PercentCalif          *float64 `json:"percent_calif,omitempty"`
	PercentCalifPositivos *float64 `json:"percent_calif_positivos,omitempty"`
	PercentSatisfaccion   *float64 `json:"percent_satisfaccion,omitempty"`
}

// MonthlyReport es la salida del agregador para un (año, mes) dentro del
// alcance de visibilidad del solicitante.
type MonthlyReport struct {
	Year   int                    `json:"year"`
	Month  int                    `json:"month"`
	Weeks  []WeekRange            `json:"weeks"`
	Agents []AggregatedAgentMonth `json:"agents"`
	Totals ReportTotals           `json:"totals"`
}
