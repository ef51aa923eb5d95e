package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/auth"
	"github.com/shiftline/workforce-backend-go/internal/pkg/jwt"
)

// claimInt64 reads a numeric claim. jwtauth hands decoded JSON numbers over
// as float64, so every id claim needs the round-trip.
func claimInt64(r *http.Request, name string) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	v, ok := claims[name].(float64)
	if !ok {
		return 0, auth.ErrInvalidToken
	}

	return int64(v), nil
}

func employeeIDFromClaims(r *http.Request) (int64, error) {
	return claimInt64(r, jwt.ClaimEmployeeID)
}
