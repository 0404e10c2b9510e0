package reporting

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/infrastructure/repository"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/internal/usecases/weekconfig"
)

// ErrWeekNotFound se retorna cuando el índice de semana pedido no existe en
// la configuración del mes.
var ErrWeekNotFound = errors.New("la semana pedida no existe en el mes")

// Reporter arma los reportes semanales y mensuales por agente. El alcance de
// visibilidad llega resuelto desde afuera; acá solo se aplica como filtro.
type Reporter interface {
	MonthlyReport(year, month int, scope domain.VisibilityScope) (*domain.MonthlyReport, error)
	WeeklyReport(year, month, weekIndex int, scope domain.VisibilityScope) ([]domain.AggregatedAgentWeek, error)
	ManualMetrics(year, month int) (domain.ManualMetricsBucket, error)
	SaveManualMetrics(year, month int, bucket domain.ManualMetricsBucket) error
}

type Service struct {
	auditRepo  repository.AuditRepository
	metricRepo repository.ManualMetricRepository
	teamRepo   repository.TeamRepository
	weekCfg    weekconfig.Manager
}

func NewService(
	auditRepo repository.AuditRepository,
	metricRepo repository.ManualMetricRepository,
	teamRepo repository.TeamRepository,
	weekCfg weekconfig.Manager,
) Reporter {
	return &Service{
		auditRepo:  auditRepo,
		metricRepo: metricRepo,
		teamRepo:   teamRepo,
		weekCfg:    weekCfg,
	}
}

// MonthlyReport agrega el mes completo para todos los agentes visibles. El
// padrón del reporte es la unión de los agentes del catálogo, los nombres
// auditados y los nombres con métricas manuales, siempre dentro del alcance.
func (s *Service) MonthlyReport(year, month int, scope domain.VisibilityScope) (*domain.MonthlyReport, error) {
	cfg, err := s.weekCfg.GetConfig(year, month)
	if err != nil {
		return nil, err
	}

	audits, bucket, err := s.loadMonthData(year, month, scope)
	if err != nil {
		return nil, err
	}

	roster, err := s.buildRoster(scope, audits, bucket)
	if err != nil {
		return nil, err
	}

	agents := make([]domain.AggregatedAgentMonth, 0, len(roster))
	for _, name := range roster {
		agents = append(agents, AggregateMonth(name, cfg.Weeks, audits, bucket))
	}

	return &domain.MonthlyReport{
		Year:   year,
		Month:  month,
		Weeks:  cfg.Weeks,
		Agents: agents,
		Totals: BuildTotals(agents),
	}, nil
}

// WeeklyReport agrega una única semana del mes para todos los agentes
// visibles.
func (s *Service) WeeklyReport(year, month, weekIndex int, scope domain.VisibilityScope) ([]domain.AggregatedAgentWeek, error) {
	cfg, err := s.weekCfg.GetConfig(year, month)
	if err != nil {
		return nil, err
	}

	var week *domain.WeekRange
	for i := range cfg.Weeks {
		if cfg.Weeks[i].Index == weekIndex {
			week = &cfg.Weeks[i]
			break
		}
	}
	if week == nil {
		return nil, errors.Wrapf(ErrWeekNotFound, "semana %d de %d-%02d", weekIndex, year, month)
	}

	audits, bucket, err := s.loadMonthData(year, month, scope)
	if err != nil {
		return nil, err
	}

	roster, err := s.buildRoster(scope, audits, bucket)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.AggregatedAgentWeek, 0, len(roster))
	for _, name := range roster {
		rows = append(rows, AggregateWeek(name, *week, audits, bucket.ForAgentWeek(name, week.Index)))
	}

	return rows, nil
}

// ManualMetrics devuelve el bucket de métricas manuales del mes (vacío si
// nunca se cargó).
func (s *Service) ManualMetrics(year, month int) (domain.ManualMetricsBucket, error) {
	bucket, err := s.metricRepo.GetBucket(year, month)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar las métricas manuales del mes")
	}
	return bucket, nil
}

// SaveManualMetrics reemplaza el bucket completo del mes. No hay merge por
// campo: lo que se envía es lo que queda.
func (s *Service) SaveManualMetrics(year, month int, bucket domain.ManualMetricsBucket) error {
	if bucket == nil {
		bucket = domain.ManualMetricsBucket{}
	}

	if err := s.metricRepo.SaveBucket(year, month, bucket); err != nil {
		return errors.Wrap(err, "error al guardar las métricas manuales del mes")
	}
	return nil
}

func (s *Service) loadMonthData(year, month int, scope domain.VisibilityScope) ([]*domain.Audit, domain.ManualMetricsBucket, error) {
	audits, err := s.auditRepo.ListByMonth(year, month)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error al consultar las auditorías del mes")
	}

	visible := make([]*domain.Audit, 0, len(audits))
	for _, audit := range audits {
		if scope.AllowsTeam(audit.TeamID) {
			visible = append(visible, audit)
		}
	}

	bucket, err := s.metricRepo.GetBucket(year, month)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error al consultar las métricas manuales del mes")
	}

	return visible, bucket, nil
}

// buildRoster resuelve los nombres de agentes del reporte. Los nombres que
// solo aparecen en métricas manuales no tienen equipo asociado, así que solo
// entran cuando el alcance cubre todos los equipos.
func (s *Service) buildRoster(scope domain.VisibilityScope, audits []*domain.Audit, bucket domain.ManualMetricsBucket) ([]string, error) {
	names := make(map[string]struct{})

	catalog, err := s.visibleAgents(scope)
	if err != nil {
		return nil, err
	}
	for _, agent := range catalog {
		names[agent.Name] = struct{}{}
	}

	for _, audit := range audits {
		names[audit.AgentName] = struct{}{}
	}

	if scope.AllTeams {
		for name := range bucket {
			names[name] = struct{}{}
		}
	}

	roster := make([]string, 0, len(names))
	for name := range names {
		roster = append(roster, name)
	}
	sort.Strings(roster)

	return roster, nil
}

func (s *Service) visibleAgents(scope domain.VisibilityScope) ([]*domain.Agent, error) {
	if scope.AllTeams {
		agents, err := s.teamRepo.ListAgents()
		if err != nil {
			return nil, errors.Wrap(err, "error al consultar el catálogo de agentes")
		}
		return agents, nil
	}

	agents := make([]*domain.Agent, 0)
	for teamID := range scope.TeamIDs {
		teamAgents, err := s.teamRepo.ListAgentsByTeam(teamID)
		if err != nil {
			return nil, errors.Wrapf(err, "error al consultar los agentes del equipo %s", teamID)
		}
		agents = append(agents, teamAgents...)
	}

	return agents, nil
}
