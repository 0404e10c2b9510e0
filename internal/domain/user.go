package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de usuario. Los editores administran auditorías y métricas; los
// lectores solo consultan, opcionalmente acotados a su equipo.
const (
	RoleEditor = 1
	RoleViewer = 2
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	TeamID       *string    `json:"team_id"` // nil = sin restricción de equipo
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	RoleID   *int    `json:"role_id"`
	TeamID   *string `json:"team_id"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	UserTeamID *string
	jwt.RegisteredClaims
}

// IsEditor indica si los claims corresponden a un editor.
func (c *Claims) IsEditor() bool {
	return c.UserRoleID == RoleEditor
}
