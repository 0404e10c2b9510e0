package domain

import "time"

// Team es un equipo de soporte. El catálogo de equipos es pequeño y estable;
// los colores se usan solo en presentación pero viajan con el recurso.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Email string `json:"email,omitempty"`
}

// Agent es un miembro de un equipo de soporte. El ID es el vínculo primario
// con auditorías y métricas; el nombre se mantiene como compatibilidad para
// ingestar datos históricos vinculados por nombre.
type Agent struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	TeamID  string    `json:"team_id"`
	Shift   string    `json:"shift,omitempty"` // AM, PM o Weekend
	AddedAt time.Time `json:"added_at"`
}

// VisibilityScope define qué equipos puede ver el solicitante. Lo resuelve
// el servicio de directorio a partir de los claims; el agregador solo lo
// consume como filtro y nunca calcula lógica de roles.
type VisibilityScope struct {
	AllTeams bool
	TeamIDs  map[string]bool
}

// ScopeAllTeams es el alcance sin restricciones (editores).
func ScopeAllTeams() VisibilityScope {
	return VisibilityScope{AllTeams: true}
}

// ScopeForTeam restringe la visibilidad a un único equipo.
func ScopeForTeam(teamID string) VisibilityScope {
	return VisibilityScope{TeamIDs: map[string]bool{teamID: true}}
}

// AllowsTeam indica si el equipo está dentro del alcance.
func (s VisibilityScope) AllowsTeam(teamID string) bool {
	if s.AllTeams {
		return true
	}
	return s.TeamIDs[teamID]
}
