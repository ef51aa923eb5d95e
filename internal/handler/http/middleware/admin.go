package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/auth"
	"github.com/shiftline/workforce-backend-go/internal/domain/user"
	"github.com/shiftline/workforce-backend-go/internal/handler/http/response"
	"github.com/shiftline/workforce-backend-go/internal/pkg/jwt"
)

// AdminOnly gates manager routes on the is_admin access-token claim. A
// missing or non-boolean claim is treated the same as false.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims[jwt.ClaimIsAdmin].(bool)
		if !ok || !admin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
