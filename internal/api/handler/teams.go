package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/internal/usecases/directory"
	"github.com/ridery/calidad-agentes-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListTeams devuelve el catálogo de equipos
func ListTeams(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := service.ListTeams()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar los equipos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(teams)
	}
}

// ListTeamAgents devuelve los agentes de un equipo; sin :id lista todos
func ListTeamAgents(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		agents, err := service.ListAgents(teamID)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, directory.ErrTeamNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Equipo no encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar los agentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(agents)
	}
}

// AddTeamAgent agrega un agente al equipo indicado en la URL
func AddTeamAgent(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddTeamAgent")

		teamID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if teamID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se indicó el ID del equipo", nil)
			return
		}

		var agent *domain.Agent
		if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la solicitud", nil)
			return
		}
		agent.TeamID = teamID

		created, err := service.AddAgent(agent)
		if err != nil {
			logrus.Error(err)
			switch {
			case errors.Is(err, directory.ErrTeamNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Equipo no encontrado", nil)

			case errors.Is(err, directory.ErrMissingRequiredData):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al agregar el agente", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// RemoveTeamAgent quita un agente de un equipo
func RemoveTeamAgent(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemoveTeamAgent")

		params := httprouter.ParamsFromContext(r.Context())
		teamID := params.ByName("id")
		agentID := params.ByName("agentId")
		if teamID == "" || agentID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Se requieren los IDs del equipo y del agente", nil)
			return
		}

		if err := service.RemoveAgent(teamID, agentID); err != nil {
			logrus.Error(err)
			if errors.Is(err, directory.ErrTeamNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Equipo no encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al quitar el agente", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
