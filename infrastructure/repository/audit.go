package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/ridery/calidad-agentes-api/infrastructure/database/postgres"
	"github.com/ridery/calidad-agentes-api/internal/domain"
)

const (
	auditsTable = "audits a"
)

type AuditRepository interface {
	List() ([]*domain.Audit, error)
	ListByMonth(year, month int) ([]*domain.Audit, error)
	GetByID(id string) (*domain.Audit, error)
	Create(audit *domain.Audit) error
	Update(audit *domain.Audit) error
	Delete(id string) error
	DeleteOlderThan(months int) (int64, error)
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

const auditColumns = "a.id, a.agent_id, a.agent_name, a.team_id, a.date, a.ticket_date, " +
	"a.ticket_id, a.ticket_summary, a.observations, a.checklist, a.score, " +
	"a.empatia_score, a.gestion_score, a.created_at, a.updated_at"

func (r *auditRepository) List() ([]*domain.Audit, error) {
	query, args, err := squirrel.
		Select(auditColumns).
		From(auditsTable).
		OrderBy("a.date DESC, a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryAudits(query, args...)
}

// ListByMonth devuelve las auditorías cuya fecha cae dentro del mes natural.
// Las fechas se guardan como texto YYYY-MM-DD, así que el rango se arma por
// comparación lexicográfica.
func (r *auditRepository) ListByMonth(year, month int) ([]*domain.Audit, error) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := fmt.Sprintf("%04d-%02d-31", year, month)

	query, args, err := squirrel.
		Select(auditColumns).
		From(auditsTable).
		Where(squirrel.GtOrEq{"a.date": start}).
		Where(squirrel.LtOrEq{"a.date": end}).
		OrderBy("a.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.queryAudits(query, args...)
}

func (r *auditRepository) GetByID(id string) (*domain.Audit, error) {
	query, args, err := squirrel.
		Select(auditColumns).
		From(auditsTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	audit, err := scanAudit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear auditoría: %w", err)
	}

	return audit, nil
}

func (r *auditRepository) Create(audit *domain.Audit) error {
	checklistJSON, err := json.Marshal(audit.Checklist)
	if err != nil {
		return fmt.Errorf("error al serializar la lista de verificación: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("audits").
		Columns(
			"id", "agent_id", "agent_name", "team_id", "date", "ticket_date",
			"ticket_id", "ticket_summary", "observations", "checklist",
			"score", "empatia_score", "gestion_score",
		).
		Values(
			audit.ID,
			audit.AgentID,
			audit.AgentName,
			audit.TeamID,
			audit.Date,
			audit.TicketDate,
			audit.TicketID,
			audit.TicketSummary,
			audit.Observations,
			checklistJSON,
			audit.Score,
			audit.EmpatiaScore,
			audit.GestionScore,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	return nil
}

func (r *auditRepository) Update(audit *domain.Audit) error {
	checklistJSON, err := json.Marshal(audit.Checklist)
	if err != nil {
		return fmt.Errorf("error al serializar la lista de verificación: %w", err)
	}

	query := squirrel.
		Update("audits").
		Set("agent_id", audit.AgentID).
		Set("agent_name", audit.AgentName).
		Set("team_id", audit.TeamID).
		Set("date", audit.Date).
		Set("ticket_date", audit.TicketDate).
		Set("ticket_id", audit.TicketID).
		Set("ticket_summary", audit.TicketSummary).
		Set("observations", audit.Observations).
		Set("checklist", checklistJSON).
		Set("score", audit.Score).
		Set("empatia_score", audit.EmpatiaScore).
		Set("gestion_score", audit.GestionScore).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": audit.ID}).
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

func (r *auditRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("audits").
		Where(squirrel.Eq{"id": id}).
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

// DeleteOlderThan elimina auditorías con fecha anterior al corte de retención.
func (r *auditRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := time.Now().AddDate(0, -months, 0).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("audits").
		Where(squirrel.Lt{"date": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la consulta: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error al obtener filas afectadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *auditRepository) queryAudits(query string, args ...interface{}) ([]*domain.Audit, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	audits := make([]*domain.Audit, 0)
	for rows.Next() {
		audit, err := scanAuditRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear auditorías: %w", err)
		}
		audits = append(audits, audit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return audits, nil
}

func scanAudit(row *sql.Row) (*domain.Audit, error) {
	audit := &domain.Audit{}
	var checklistJSON []byte

	err := row.Scan(
		&audit.ID,
		&audit.AgentID,
		&audit.AgentName,
		&audit.TeamID,
		&audit.Date,
		&audit.TicketDate,
		&audit.TicketID,
		&audit.TicketSummary,
		&audit.Observations,
		&checklistJSON,
		&audit.Score,
		&audit.EmpatiaScore,
		&audit.GestionScore,
		&audit.CreatedAt,
		&audit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if checklistJSON != nil {
		if err := json.Unmarshal(checklistJSON, &audit.Checklist); err != nil {
			return nil, fmt.Errorf("error al deserializar la lista de verificación: %w", err)
		}
	}

	return audit, nil
}

func scanAuditRows(rows *sql.Rows) (*domain.Audit, error) {
	audit := &domain.Audit{}
	var checklistJSON []byte

	err := rows.Scan(
		&audit.ID,
		&audit.AgentID,
		&audit.AgentName,
		&audit.TeamID,
		&audit.Date,
		&audit.TicketDate,
		&audit.TicketID,
		&audit.TicketSummary,
		&audit.Observations,
		&checklistJSON,
		&audit.Score,
		&audit.EmpatiaScore,
		&audit.GestionScore,
		&audit.CreatedAt,
		&audit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if checklistJSON != nil {
		if err := json.Unmarshal(checklistJSON, &audit.Checklist); err != nil {
			return nil, fmt.Errorf("error al deserializar la lista de verificación: %w", err)
		}
	}

	return audit, nil
}
