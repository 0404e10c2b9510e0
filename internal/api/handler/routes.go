package handler

import (
	"net/http"

	"github.com/ridery/calidad-agentes-api/internal/api/handler/router"
	"github.com/ridery/calidad-agentes-api/internal/usecases/auditing"
	"github.com/ridery/calidad-agentes-api/internal/usecases/authenticating"
	"github.com/ridery/calidad-agentes-api/internal/usecases/directory"
	"github.com/ridery/calidad-agentes-api/internal/usecases/reporting"
	"github.com/ridery/calidad-agentes-api/internal/usecases/weekconfig"
	"github.com/ridery/calidad-agentes-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Audits define las rutas de auditorías: lectura para todos los roles,
// escritura solo para editores.
func Audits(service auditing.Auditor, dir directory.Directory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audits",
			Method:      http.MethodGet,
			Handler:     ListAudits(service, dir),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/audits/:id",
			Method:      http.MethodGet,
			Handler:     GetAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/audits",
			Method:      http.MethodPost,
			Handler:     CreateAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/audits/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/audits/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
	}
}

func Teams(service directory.Directory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/teams",
			Method:      http.MethodGet,
			Handler:     ListTeams(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id/agents",
			Method:      http.MethodGet,
			Handler:     ListTeamAgents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id/agents",
			Method:      http.MethodPost,
			Handler:     AddTeamAgent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/teams/:id/agents/:agentId",
			Method:      http.MethodDelete,
			Handler:     RemoveTeamAgent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
	}
}

// Metrics define las rutas de configuración de semanas y métricas manuales.
// Toda escritura queda reservada a los editores.
func Metrics(weekCfg weekconfig.Manager, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/weeks",
			Method:      http.MethodGet,
			Handler:     GetWeekConfig(weekCfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/weeks",
			Method:      http.MethodPut,
			Handler:     SaveWeekConfig(weekCfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/metrics/weeks/add",
			Method:      http.MethodPost,
			Handler:     AddWeek(weekCfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/metrics/weeks/delete",
			Method:      http.MethodPost,
			Handler:     DeleteWeek(weekCfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
		{
			Path:        "/v1/metrics/manual",
			Method:      http.MethodGet,
			Handler:     GetManualMetrics(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/manual",
			Method:      http.MethodPut,
			Handler:     SaveManualMetrics(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOnly()},
		},
	}
}

func Reports(reporter reporting.Reporter, dir directory.Directory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     MonthlyReport(reporter, dir),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/weekly",
			Method:      http.MethodGet,
			Handler:     WeeklyReport(reporter, dir),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
