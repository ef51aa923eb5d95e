package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/auth"
	"github.com/shiftline/workforce-backend-go/internal/handler/http/response"
	"github.com/shiftline/workforce-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests whose bearer token is missing, invalid, or
// not an access token. Runs after jwtauth.Verifier, which parses the token
// into the request context; refresh tokens share the signing key, so the
// token-type claim is what keeps them off the API routes.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims[jwt.ClaimTokenType].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
