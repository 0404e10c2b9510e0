package auditing

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/ridery/calidad-agentes-api/infrastructure/repository"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/internal/usecases/scoring"
	"github.com/ridery/calidad-agentes-api/pkg/utils"
)

// Filter acota el listado de auditorías. Year y Month van juntos; el resto
// de los campos son opcionales y se combinan con AND.
type Filter struct {
	Year   int
	Month  int
	TeamID string
	Search string // busca en nombre de agente y número de ticket
}

// Auditor administra el ciclo de vida de las auditorías. Los puntajes se
// recalculan siempre desde la lista de verificación al crear o editar; nunca
// se aceptan puntajes del cliente.
type Auditor interface {
	ListAudits(filter Filter, scope domain.VisibilityScope) ([]*domain.Audit, error)
	GetAudit(id string) (*domain.Audit, error)
	CreateAudit(audit *domain.Audit) (*domain.Audit, error)
	UpdateAudit(req *domain.UpdateAuditRequest) (*domain.Audit, error)
	DeleteAudit(id string) error
}

type Service struct {
	repo       repository.AuditRepository
	calculator scoring.Calculator
}

func NewService(repo repository.AuditRepository, calculator scoring.Calculator) Auditor {
	return &Service{
		repo:       repo,
		calculator: calculator,
	}
}

func (s *Service) ListAudits(filter Filter, scope domain.VisibilityScope) ([]*domain.Audit, error) {
	var (
		audits []*domain.Audit
		err    error
	)

	if filter.Year != 0 && filter.Month != 0 {
		audits, err = s.repo.ListByMonth(filter.Year, filter.Month)
	} else {
		audits, err = s.repo.List()
	}
	if err != nil {
		return nil, errors.Wrap(err, "error al listar auditorías")
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]*domain.Audit, 0, len(audits))
	for _, audit := range audits {
		if !scope.AllowsTeam(audit.TeamID) {
			continue
		}
		if filter.TeamID != "" && audit.TeamID != filter.TeamID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(audit.AgentName), search) &&
			!strings.Contains(strings.ToLower(audit.TicketID), search) {
			continue
		}
		filtered = append(filtered, audit)
	}

	return filtered, nil
}

func (s *Service) GetAudit(id string) (*domain.Audit, error) {
	audit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar la auditoría")
	}
	if audit == nil {
		return nil, ErrAuditNotFound
	}
	return audit, nil
}

func (s *Service) CreateAudit(audit *domain.Audit) (*domain.Audit, error) {
	if audit.AgentName == "" || audit.Date == "" {
		return nil, ErrMissingRequiredData
	}

	if err := validateDate(audit.Date); err != nil {
		return nil, err
	}
	if audit.TicketDate != "" {
		if err := validateDate(audit.TicketDate); err != nil {
			return nil, err
		}
	}

	score, err := s.calculator.Calculate(audit.Checklist)
	if err != nil {
		return nil, err
	}
	audit.Score = score.Total
	audit.EmpatiaScore = score.EmpatiaScore
	audit.GestionScore = score.GestionScore

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "error al generar el identificador de la auditoría")
	}
	audit.ID = id

	now := time.Now()
	audit.CreatedAt = now
	audit.UpdatedAt = now

	if err := s.repo.Create(audit); err != nil {
		return nil, errors.Wrap(err, "error al crear la auditoría")
	}

	return audit, nil
}

func (s *Service) UpdateAudit(req *domain.UpdateAuditRequest) (*domain.Audit, error) {
	if req.ID == "" {
		return nil, ErrMissingRequiredData
	}

	audit, err := s.repo.GetByID(req.ID)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar la auditoría")
	}
	if audit == nil {
		return nil, ErrAuditNotFound
	}

	if req.AgentID != nil {
		audit.AgentID = *req.AgentID
	}
	if req.AgentName != nil {
		audit.AgentName = *req.AgentName
	}
	if req.TeamID != nil {
		audit.TeamID = *req.TeamID
	}
	if req.Date != nil {
		if err := validateDate(*req.Date); err != nil {
			return nil, err
		}
		audit.Date = *req.Date
	}
	if req.TicketDate != nil {
		if err := validateDate(*req.TicketDate); err != nil {
			return nil, err
		}
		audit.TicketDate = *req.TicketDate
	}
	if req.TicketID != nil {
		audit.TicketID = *req.TicketID
	}
	if req.TicketSummary != nil {
		audit.TicketSummary = *req.TicketSummary
	}
	if req.Observations != nil {
		audit.Observations = *req.Observations
	}
	if req.Checklist != nil {
		audit.Checklist = *req.Checklist
	}

	// El puntaje se deriva siempre, incluso si la lista no cambió.
	score, err := s.calculator.Calculate(audit.Checklist)
	if err != nil {
		return nil, err
	}
	audit.Score = score.Total
	audit.EmpatiaScore = score.EmpatiaScore
	audit.GestionScore = score.GestionScore
	audit.UpdatedAt = time.Now()

	if err := s.repo.Update(audit); err != nil {
		return nil, errors.Wrap(err, "error al actualizar la auditoría")
	}

	return audit, nil
}

func (s *Service) DeleteAudit(id string) error {
	audit, err := s.repo.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "error al consultar la auditoría")
	}
	if audit == nil {
		return ErrAuditNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return errors.Wrap(err, "error al eliminar la auditoría")
	}

	return nil
}

func validateDate(value string) error {
	if _, err := utils.ParseDate(value); err != nil {
		return errors.Wrapf(ErrInvalidDate, "%q", value)
	}
	return nil
}
