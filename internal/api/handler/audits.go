package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/internal/usecases/auditing"
	"github.com/ridery/calidad-agentes-api/internal/usecases/directory"
	"github.com/ridery/calidad-agentes-api/pkg/apiErrors"
	"github.com/ridery/calidad-agentes-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// scopeFromRequest resuelve el alcance de visibilidad del solicitante a
// partir de los claims del token. Sin claims el alcance queda vacío y las
// consultas no devuelven nada.
func scopeFromRequest(dir directory.Directory, r *http.Request) domain.VisibilityScope {
	claims, _ := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return dir.ScopeFor(claims)
}

// queryInt lee un parámetro numérico del query string; devuelve 0 si está
// ausente o no es un número.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

// ListAudits lista auditorías filtradas por mes, equipo y texto de búsqueda.
// Los resultados ya vienen acotados al alcance del solicitante.
func ListAudits(service auditing.Auditor, dir directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := auditing.Filter{
			Year:   queryInt(r, "year"),
			Month:  queryInt(r, "month"),
			TeamID: r.URL.Query().Get("team"),
			Search: r.URL.Query().Get("search"),
		}

		audits, err := service.ListAudits(filter, scopeFromRequest(dir, r))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar las auditorías", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(audits)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
			return
		}
	}
}

// GetAudit devuelve una auditoría por ID
func GetAudit(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se indicó el ID de la auditoría", nil)
			return
		}

		audit, err := service.GetAudit(id)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, auditing.ErrAuditNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Auditoría no encontrada", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al buscar la auditoría", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(audit)
	}
}

// CreateAudit registra una auditoría nueva. El puntaje se deriva de la lista
// de verificación en el servidor; cualquier puntaje enviado se ignora.
func CreateAudit(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAudit")

		var audit *domain.Audit
		if err := json.NewDecoder(r.Body).Decode(&audit); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la solicitud", nil)
			return
		}

		created, err := service.CreateAudit(audit)
		if err != nil {
			logrus.Error(err)
			writeAuditError(w, err, "Error al crear la auditoría")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateAudit edita una auditoría existente recalculando el puntaje
func UpdateAudit(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAudit")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se indicó el ID de la auditoría", nil)
			return
		}

		var req domain.UpdateAuditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la solicitud", nil)
			return
		}
		req.ID = id

		updated, err := service.UpdateAudit(&req)
		if err != nil {
			logrus.Error(err)
			writeAuditError(w, err, "Error al actualizar la auditoría")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteAudit elimina una auditoría por ID
func DeleteAudit(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAudit")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se indicó el ID de la auditoría", nil)
			return
		}

		if err := service.DeleteAudit(id); err != nil {
			logrus.Error(err)
			writeAuditError(w, err, "Error al eliminar la auditoría")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeAuditError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, auditing.ErrAuditNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Auditoría no encontrada", nil)

	case errors.Is(err, auditing.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, auditing.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
