package middleware

import (
	"net/http"

	"github.com/ridery/calidad-agentes-api/internal/domain"
	"github.com/ridery/calidad-agentes-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware crea un middleware que restringe el acceso según el rol.
// allowedRoles es la lista de IDs de rol con permiso para la ruta.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Obtener los claims del usuario desde el contexto
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Intento de acceso sin autenticación")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
				return
			}

			// Verificar que el rol del usuario esté en la lista permitida
			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acceso denegado para usuario ID=%d, Rol=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tenés permiso para acceder a este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// EditorOnly permite el acceso solo a editores.
func EditorOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleEditor})
}

// AllRoles permite el acceso a editores y lectores.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleEditor, domain.RoleViewer})
}
