package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/internal/usecases/directory"
	"github.com/ridery/calidad-agentes-api/internal/usecases/reporting"
	"github.com/ridery/calidad-agentes-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// MonthlyReport arma el reporte mensual por agente con la fila de totales.
// El alcance del solicitante decide qué equipos entran al reporte.
func MonthlyReport(service reporting.Reporter, dir directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		report, err := service.MonthlyReport(year, month, scopeFromRequest(dir, r))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al armar el reporte mensual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
			return
		}
	}
}

// WeeklyReport arma el reporte de una sola semana del mes
func WeeklyReport(service reporting.Reporter, dir directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		weekIndex := queryInt(r, "week")
		if weekIndex < 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Se requiere un índice de semana válido", nil)
			return
		}

		rows, err := service.WeeklyReport(year, month, weekIndex, scopeFromRequest(dir, r))
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, reporting.ErrWeekNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "La semana pedida no existe en el mes", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al armar el reporte semanal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}
}
