package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/internal/usecases/reporting"
	"github.com/ridery/calidad-agentes-api/internal/usecases/weekconfig"
	"github.com/ridery/calidad-agentes-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// monthParams valida el par año/mes del query string. El mes es obligatorio
// en todas las operaciones de configuración y métricas.
func monthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year := queryInt(r, "year")
	month := queryInt(r, "month")
	if year == 0 || month < 1 || month > 12 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Se requieren year y month válidos", nil)
		return 0, 0, false
	}
	return year, month, true
}

type SaveWeekConfigRequest struct {
	Weeks []domain.WeekRange `json:"weeks"`
}

type DeleteWeekRequest struct {
	Index int `json:"index"`
}

// GetWeekConfig devuelve la partición en semanas del mes: la guardada si
// existe, o la partición por defecto truncada al día de hoy.
func GetWeekConfig(service weekconfig.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		cfg, err := service.GetConfig(year, month)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la configuración de semanas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// SaveWeekConfig reemplaza la partición en semanas del mes
func SaveWeekConfig(service weekconfig.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveWeekConfig")

		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		var req SaveWeekConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la solicitud", nil)
			return
		}

		cfg, err := service.SaveConfig(year, month, req.Weeks)
		if err != nil {
			logrus.Error(err)
			switch {
			case errors.Is(err, weekconfig.ErrEmptyWeekConfig):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La configuración debe tener al menos una semana", nil)

			case errors.Is(err, weekconfig.ErrInvalidWeekRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar la configuración de semanas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// AddWeek agrega una semana a continuación de la última del mes
func AddWeek(service weekconfig.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddWeek")

		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		cfg, err := service.AddWeek(year, month)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al agregar la semana", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// DeleteWeek quita la semana indicada. Si el mes quedaría sin semanas o el
// índice no existe, responde con conflicto y no cambia nada.
func DeleteWeek(service weekconfig.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteWeek")

		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		var req DeleteWeekRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la solicitud", nil)
			return
		}

		cfg, removed, err := service.DeleteWeek(year, month, req.Index)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al quitar la semana", nil)
			return
		}
		if !removed {
			apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "No se puede quitar la semana indicada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// GetManualMetrics devuelve las métricas operativas cargadas a mano del mes
func GetManualMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		bucket, err := service.ManualMetrics(year, month)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar las métricas manuales", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(bucket)
	}
}

// SaveManualMetrics reemplaza el bucket completo de métricas del mes
func SaveManualMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveManualMetrics")

		year, month, ok := monthParams(w, r)
		if !ok {
			return
		}

		var bucket domain.ManualMetricsBucket
		if err := json.NewDecoder(r.Body).Decode(&bucket); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la solicitud", nil)
			return
		}

		if err := service.SaveManualMetrics(year, month, bucket); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar las métricas manuales", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
