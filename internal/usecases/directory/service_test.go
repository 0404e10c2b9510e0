package directory

import (
	"testing"

	"github.com/ridery/calidad-agentes-api/infrastructure/repository/mocks"
	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDirectory(t *testing.T) (Directory, *mocks.MockTeamRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTeamRepository(ctrl)
	return NewService(repo), repo
}

func TestScopeFor_Editor(t *testing.T) {
	svc, _ := newDirectory(t)

	scope := svc.ScopeFor(&domain.Claims{UserRoleID: domain.RoleEditor})
	assert.True(t, scope.AllTeams)
}

func TestScopeFor_ViewerWithTeam(t *testing.T) {
	svc, _ := newDirectory(t)

	teamID := "am"
	scope := svc.ScopeFor(&domain.Claims{UserRoleID: domain.RoleViewer, UserTeamID: &teamID})

	assert.False(t, scope.AllTeams)
	assert.True(t, scope.AllowsTeam("am"))
	assert.False(t, scope.AllowsTeam("pm"))
}

func TestScopeFor_ViewerWithoutTeam(t *testing.T) {
	svc, _ := newDirectory(t)

	scope := svc.ScopeFor(&domain.Claims{UserRoleID: domain.RoleViewer})
	assert.True(t, scope.AllTeams)
}

func TestAddAgent_ValidatesTeam(t *testing.T) {
	svc, repo := newDirectory(t)

	repo.EXPECT().GetTeamByID("nope").Return(nil, nil)

	_, err := svc.AddAgent(&domain.Agent{Name: "Carla", TeamID: "nope"})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestAddAgent_GeneratesID(t *testing.T) {
	svc, repo := newDirectory(t)

	repo.EXPECT().GetTeamByID("am").Return(&domain.Team{ID: "am", Name: "Soporte AM"}, nil)
	repo.EXPECT().AddAgent(gomock.Any()).Return(nil)

	agent, err := svc.AddAgent(&domain.Agent{Name: "Carla", TeamID: "am"})
	require.NoError(t, err)
	assert.Len(t, agent.ID, 6)
	assert.False(t, agent.AddedAt.IsZero())
}

func TestAddAgent_MissingData(t *testing.T) {
	svc, _ := newDirectory(t)

	_, err := svc.AddAgent(&domain.Agent{Name: "Carla"})
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestListAgents_AllOrByTeam(t *testing.T) {
	svc, repo := newDirectory(t)

	repo.EXPECT().ListAgents().Return([]*domain.Agent{{ID: "1"}, {ID: "2"}}, nil)
	all, err := svc.ListAgents("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	repo.EXPECT().ListAgentsByTeam("am").Return([]*domain.Agent{{ID: "1"}}, nil)
	team, err := svc.ListAgents("am")
	require.NoError(t, err)
	assert.Len(t, team, 1)
}
