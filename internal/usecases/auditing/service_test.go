package auditing

import (
	"testing"

	"github.com/ridery/calidad-agentes-api/infrastructure/repository/mocks"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/internal/usecases/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuditor(t *testing.T) (Auditor, *mocks.MockAuditRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepository(ctrl)
	return NewService(repo, scoring.NewService()), repo
}

func TestCreateAudit_DerivesScoreAndID(t *testing.T) {
	svc, repo := newAuditor(t)

	var created *domain.Audit
	repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *domain.Audit) error {
		created = a
		return nil
	})

	audit, err := svc.CreateAudit(&domain.Audit{
		AgentName: "Carla",
		TeamID:    "am",
		Date:      "2025-01-02",
		Checklist: domain.MarkAll(),
		Score:     7, // lo que mande el cliente se ignora
	})
	require.NoError(t, err)

	assert.Equal(t, 100, audit.Score)
	assert.InDelta(t, 50.0, audit.EmpatiaScore, 0.001)
	assert.InDelta(t, 50.0, audit.GestionScore, 0.001)
	assert.Len(t, audit.ID, 6)
	assert.False(t, audit.CreatedAt.IsZero())
	assert.Same(t, audit, created)
}

func TestCreateAudit_MissingRequiredData(t *testing.T) {
	svc, _ := newAuditor(t)

	_, err := svc.CreateAudit(&domain.Audit{Date: "2025-01-02"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	_, err = svc.CreateAudit(&domain.Audit{AgentName: "Carla"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestCreateAudit_InvalidDate(t *testing.T) {
	svc, _ := newAuditor(t)

	_, err := svc.CreateAudit(&domain.Audit{
		AgentName: "Carla",
		Date:      "02/01/2025",
		Checklist: domain.MarkAll(),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdateAudit_RecalculatesScore(t *testing.T) {
	svc, repo := newAuditor(t)

	existing := &domain.Audit{
		ID:        "abc123",
		AgentName: "Carla",
		TeamID:    "am",
		Date:      "2025-01-02",
		Checklist: domain.MarkAll(),
		Score:     100,
	}
	repo.EXPECT().GetByID("abc123").Return(existing, nil)

	var updated *domain.Audit
	repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *domain.Audit) error {
		updated = a
		return nil
	})

	// Dos errores en la lista nueva: la regla estricta anula todo.
	checklist := domain.MarkAll()
	checklist.Empatia.LenguajePositivo = false
	checklist.Ticket.Tipificacion = false

	audit, err := svc.UpdateAudit(&domain.UpdateAuditRequest{
		ID:        "abc123",
		Checklist: &checklist,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, audit.Score)
	assert.Zero(t, audit.EmpatiaScore)
	assert.Zero(t, audit.GestionScore)
	require.NotNil(t, updated)
	assert.Equal(t, 0, updated.Score)
}

func TestUpdateAudit_NotFound(t *testing.T) {
	svc, repo := newAuditor(t)

	repo.EXPECT().GetByID("nope").Return(nil, nil)

	_, err := svc.UpdateAudit(&domain.UpdateAuditRequest{ID: "nope"})
	assert.ErrorIs(t, err, ErrAuditNotFound)
}

func TestListAudits_Filters(t *testing.T) {
	svc, repo := newAuditor(t)

	audits := []*domain.Audit{
		{ID: "1", AgentName: "Carla Gomez", TeamID: "am", TicketID: "45871"},
		{ID: "2", AgentName: "Pedro Ruiz", TeamID: "pm", TicketID: "99120"},
		{ID: "3", AgentName: "Carla Gomez", TeamID: "am", TicketID: "10003"},
	}
	repo.EXPECT().ListByMonth(2025, 1).Return(audits, nil)

	got, err := svc.ListAudits(Filter{Year: 2025, Month: 1, Search: "carla"}, domain.ScopeAllTeams())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListAudits_ScopeExcludesOtherTeams(t *testing.T) {
	svc, repo := newAuditor(t)

	audits := []*domain.Audit{
		{ID: "1", AgentName: "Carla", TeamID: "am"},
		{ID: "2", AgentName: "Pedro", TeamID: "pm"},
	}
	repo.EXPECT().List().Return(audits, nil)

	got, err := svc.ListAudits(Filter{}, domain.ScopeForTeam("pm"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pedro", got[0].AgentName)
}

func TestDeleteAudit_NotFound(t *testing.T) {
	svc, repo := newAuditor(t)

	repo.EXPECT().GetByID("nope").Return(nil, nil)

	err := svc.DeleteAudit("nope")
	assert.ErrorIs(t, err, ErrAuditNotFound)
}

func TestDeleteAudit_OK(t *testing.T) {
	svc, repo := newAuditor(t)

	repo.EXPECT().GetByID("abc123").Return(&domain.Audit{ID: "abc123"}, nil)
	repo.EXPECT().Delete("abc123").Return(nil)

	assert.NoError(t, svc.DeleteAudit("abc123"))
}
