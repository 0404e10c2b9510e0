package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ridery/calidad-agentes-api/infrastructure/database/postgres"
	"github.com/ridery/calidad-agentes-api/internal/domain"
)

const (
	teamsTable  = "teams t"
	agentsTable = "agents ag"
)

type TeamRepository interface {
	ListTeams() ([]*domain.Team, error)
	GetTeamByID(id string) (*domain.Team, error)
	ListAgents() ([]*domain.Agent, error)
	ListAgentsByTeam(teamID string) ([]*domain.Agent, error)
	AddAgent(agent *domain.Agent) error
	RemoveAgent(teamID, agentID string) error
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) ListTeams() ([]*domain.Team, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.color, t.email").
		From(teamsTable).
		OrderBy("t.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.Color, &team.Email); err != nil {
			return nil, fmt.Errorf("error al escanear equipo: %w", err)
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) GetTeamByID(id string) (*domain.Team, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.color, t.email").
		From(teamsTable).
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	team := &domain.Team{}
	err = r.conn.QueryRow(query, args...).Scan(&team.ID, &team.Name, &team.Color, &team.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear equipo: %w", err)
	}

	return team, nil
}

func (r *teamRepository) ListAgents() ([]*domain.Agent, error) {
	query, args, err := squirrel.
		Select("ag.id, ag.name, ag.email, ag.team_id, ag.shift, ag.added_at").
		From(agentsTable).
		OrderBy("ag.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryAgents(query, args...)
}

func (r *teamRepository) ListAgentsByTeam(teamID string) ([]*domain.Agent, error) {
	query, args, err := squirrel.
		Select("ag.id, ag.name, ag.email, ag.team_id, ag.shift, ag.added_at").
		From(agentsTable).
		Where(squirrel.Eq{"ag.team_id": teamID}).
		OrderBy("ag.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryAgents(query, args...)
}

func (r *teamRepository) AddAgent(agent *domain.Agent) error {
	query := squirrel.StatementBuilder.
		Insert("agents").
		Columns("id", "name", "email", "team_id", "shift").
		Values(agent.ID, agent.Name, agent.Email, agent.TeamID, agent.Shift).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	return nil
}

func (r *teamRepository) RemoveAgent(teamID, agentID string) error {
	query, args, err := squirrel.
		Delete("agents").
		Where(squirrel.Eq{"team_id": teamID, "id": agentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	return nil
}

func (r *teamRepository) queryAgents(query string, args ...interface{}) ([]*domain.Agent, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	agents := make([]*domain.Agent, 0)
	for rows.Next() {
		agent := &domain.Agent{}
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.TeamID, &agent.Shift, &agent.AddedAt); err != nil {
			return nil, fmt.Errorf("error al escanear agente: %w", err)
		}
		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return agents, nil
}
