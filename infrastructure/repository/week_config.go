package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/ridery/calidad-agentes-api/infrastructure/database/postgres"
	"github.com/ridery/calidad-agentes-api/internal/domain"
)

const (
	weekConfigsTable = "week_configs wc"
)

// WeekConfigRepository persiste las particiones de semanas definidas por el
// usuario. Get devuelve nil cuando no hay configuración guardada para el
// período; en ese caso el gestor calcula la partición por defecto.
type WeekConfigRepository interface {
	Get(year, month int) ([]domain.WeekRange, error)
	Save(year, month int, weeks []domain.WeekRange) error
}

type weekConfigRepository struct {
	conn *postgres.Connection
}

func NewWeekConfigRepository(conn *postgres.Connection) WeekConfigRepository {
	return &weekConfigRepository{
		conn: conn,
	}
}

func (r *weekConfigRepository) Get(year, month int) ([]domain.WeekRange, error) {
	query, args, err := squirrel.
		Select("wc.weeks").
		From(weekConfigsTable).
		Where(squirrel.Eq{"wc.year": year, "wc.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	var weeksJSON []byte
	err = r.conn.QueryRow(query, args...).Scan(&weeksJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear configuración de semanas: %w", err)
	}

	var weeks []domain.WeekRange
	if weeksJSON != nil {
		if err := json.Unmarshal(weeksJSON, &weeks); err != nil {
			return nil, fmt.Errorf("error al deserializar configuración de semanas: %w", err)
		}
	}

	return weeks, nil
}

// Save reemplaza la configuración del período de forma incondicional.
func (r *weekConfigRepository) Save(year, month int, weeks []domain.WeekRange) error {
	weeksJSON, err := json.Marshal(weeks)
	if err != nil {
		return fmt.Errorf("error al serializar configuración de semanas: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("week_configs").
		Columns("year", "month", "weeks").
		Values(year, month, weeksJSON).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				weeks = EXCLUDED.weeks,
				updated_at = NOW()
		`).
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
