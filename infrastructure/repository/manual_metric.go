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
	manualMetricsTable = "manual_weekly_metrics mwm"
)

// ManualMetricRepository persiste el bucket de métricas manuales de cada
// (año, mes). El guardado reemplaza el bucket completo: no hay mezcla a nivel
// de campo. Ese contrato asume una única sesión de edición activa.
type ManualMetricRepository interface {
	GetBucket(year, month int) (domain.ManualMetricsBucket, error)
	SaveBucket(year, month int, bucket domain.ManualMetricsBucket) error
	DeleteOlderThan(months int) (int64, error)
}

type manualMetricRepository struct {
	conn *postgres.Connection
}

func NewManualMetricRepository(conn *postgres.Connection) ManualMetricRepository {
	return &manualMetricRepository{
		conn: conn,
	}
}

// GetBucket devuelve el bucket del período, o un bucket vacío si nunca se
// guardó nada. La ausencia de datos no es un error.
func (r *manualMetricRepository) GetBucket(year, month int) (domain.ManualMetricsBucket, error) {
	query, args, err := squirrel.
		Select("mwm.data").
		From(manualMetricsTable).
		Where(squirrel.Eq{"mwm.year": year, "mwm.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	var dataJSON []byte
	err = r.conn.QueryRow(query, args...).Scan(&dataJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ManualMetricsBucket{}, nil
		}
		return nil, fmt.Errorf("error al escanear métricas manuales: %w", err)
	}

	bucket := domain.ManualMetricsBucket{}
	if dataJSON != nil {
		if err := json.Unmarshal(dataJSON, &bucket); err != nil {
			return nil, fmt.Errorf("error al deserializar métricas manuales: %w", err)
		}
	}

	return bucket, nil
}

func (r *manualMetricRepository) SaveBucket(year, month int, bucket domain.ManualMetricsBucket) error {
	dataJSON, err := json.Marshal(bucket)
	if err != nil {
		return fmt.Errorf("error al serializar métricas manuales: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("manual_weekly_metrics").
		Columns("year", "month", "data").
		Values(year, month, dataJSON).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				data = EXCLUDED.data,
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

// DeleteOlderThan elimina los buckets de períodos anteriores al corte.
func (r *manualMetricRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := time.Now().AddDate(0, -months, 0)

	query, args, err := squirrel.
		Delete("manual_weekly_metrics").
		Where(squirrel.Or{
			squirrel.Lt{"year": cutoff.Year()},
			squirrel.And{
				squirrel.Eq{"year": cutoff.Year()},
				squirrel.Lt{"month": int(cutoff.Month())},
			},
		}).
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
