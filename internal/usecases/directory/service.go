package directory

import (
	"time"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/infrastructure/repository"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/pkg/utils"
)

var (
	ErrTeamNotFound        = errors.New("equipo no encontrado")
	ErrMissingRequiredData = errors.New("faltan datos obligatorios del agente")
)

// Directory expone el catálogo de equipos y agentes y resuelve el alcance de
// visibilidad de cada solicitante. Es el único lugar donde los roles se
// traducen a alcance; el resto del sistema recibe el VisibilityScope armado.
type Directory interface {
	ListTeams() ([]*domain.Team, error)
	GetTeam(id string) (*domain.Team, error)
	ListAgents(teamID string) ([]*domain.Agent, error)
	AddAgent(agent *domain.Agent) (*domain.Agent, error)
	RemoveAgent(teamID, agentID string) error
	ScopeFor(claims *domain.Claims) domain.VisibilityScope
}

type Service struct {
	repo repository.TeamRepository
}

func NewService(repo repository.TeamRepository) Directory {
	return &Service{repo: repo}
}

func (s *Service) ListTeams() ([]*domain.Team, error) {
	teams, err := s.repo.ListTeams()
	if err != nil {
		return nil, errors.Wrap(err, "error al listar equipos")
	}
	return teams, nil
}

func (s *Service) GetTeam(id string) (*domain.Team, error) {
	team, err := s.repo.GetTeamByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar el equipo")
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

func (s *Service) ListAgents(teamID string) ([]*domain.Agent, error) {
	var (
		agents []*domain.Agent
		err    error
	)

	if teamID == "" {
		agents, err = s.repo.ListAgents()
	} else {
		agents, err = s.repo.ListAgentsByTeam(teamID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error al listar agentes")
	}

	return agents, nil
}

func (s *Service) AddAgent(agent *domain.Agent) (*domain.Agent, error) {
	if agent.Name == "" || agent.TeamID == "" {
		return nil, ErrMissingRequiredData
	}

	team, err := s.repo.GetTeamByID(agent.TeamID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar el equipo")
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	if agent.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "error al generar el identificador del agente")
		}
		agent.ID = id
	}
	agent.AddedAt = time.Now()

	if err := s.repo.AddAgent(agent); err != nil {
		return nil, errors.Wrap(err, "error al agregar el agente")
	}

	return agent, nil
}

func (s *Service) RemoveAgent(teamID, agentID string) error {
	if err := s.repo.RemoveAgent(teamID, agentID); err != nil {
		return errors.Wrap(err, "error al quitar el agente")
	}
	return nil
}

// ScopeFor traduce los claims del solicitante a un alcance de visibilidad.
// Los editores ven todos los equipos; un visor con equipo asignado queda
// restringido a ese equipo, y un visor sin equipo ve todo en solo lectura.
func (s *Service) ScopeFor(claims *domain.Claims) domain.VisibilityScope {
	if claims == nil {
		return domain.VisibilityScope{}
	}

	if claims.IsEditor() {
		return domain.ScopeAllTeams()
	}

	if claims.UserTeamID != nil && *claims.UserTeamID != "" {
		return domain.ScopeForTeam(*claims.UserTeamID)
	}

	return domain.ScopeAllTeams()
}
