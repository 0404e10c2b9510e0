package domain

import "time"

// Audit representa una auditoría de calidad sobre una interacción de soporte.
// Los puntajes (Score, EmpatiaScore, GestionScore) siempre se derivan de la
// lista de verificación al crear o editar; nunca se aceptan del cliente.
type Audit struct {
	ID            string              `json:"id"`
	AgentID       string              `json:"agent_id"`
	AgentName     string              `json:"agent_name"`
	TeamID        string              `json:"team_id"`
	Date          string              `json:"date"`        // Fecha de la auditoría (YYYY-MM-DD)
	TicketDate    string              `json:"ticket_date"` // Fecha del ticket auditado
	TicketID      string              `json:"ticket_id,omitempty"`
	TicketSummary string              `json:"ticket_summary,omitempty"`
	Observations  string              `json:"observations,omitempty"`
	Checklist     EvaluationChecklist `json:"checklist"`
	Score         int                 `json:"score"`
	EmpatiaScore  float64             `json:"empatia_score"`
	GestionScore  float64             `json:"gestion_score"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// UpdateAuditRequest lleva los campos editables de una auditoría existente.
// Los punteros distinguen "no enviado" de "enviado vacío".
type UpdateAuditRequest struct {
	ID            string               `json:"id"`
	AgentID       *string              `json:"agent_id"`
	AgentName     *string              `json:"agent_name"`
	TeamID        *string              `json:"team_id"`
	Date          *string              `json:"date"`
	TicketDate    *string              `json:"ticket_date"`
	TicketID      *string              `json:"ticket_id"`
	TicketSummary *string              `json:"ticket_summary"`
	Observations  *string              `json:"observations"`
	Checklist     *EvaluationChecklist `json:"checklist"`
}
