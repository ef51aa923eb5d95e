package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claim names and token-type values shared by token generation, the auth
// middleware, and the handler claim helpers.
const (
	ClaimUserID     = "user_id"
	ClaimEmployeeID = "employee_id"
	ClaimIsAdmin    = "is_admin"
	ClaimName       = "name"
	ClaimTokenType  = "type"

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Principal is the authenticated identity carried in access-token claims.
type Principal struct {
	UserID     int64
	EmployeeID int64
	IsAdmin    bool
	Name       string
}

type Service interface {
	GenerateAccessToken(principal Principal) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error)
	DecodeRefreshToken(tokenString string) (userID int64, jti string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(jti string)
	IsTokenRevoked(jti string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(principal Principal) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		ClaimUserID:     principal.UserID,
		ClaimEmployeeID: principal.EmployeeID,
		ClaimIsAdmin:    principal.IsAdmin,
		ClaimName:       principal.Name,
		ClaimTokenType:  TokenTypeAccess,
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID int64) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		ClaimUserID:    userID,
		"jti":          uuid.NewString(),
		"exp":          expiresAt,
		ClaimTokenType: TokenTypeRefresh,
	})
	return tokenString, expiresAt, err
}

// DecodeRefreshToken validates a refresh token and returns its subject and JTI.
func (j *JWTService) DecodeRefreshToken(tokenString string) (int64, string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return 0, "", err
	}

	tokenType, ok := token.Get(ClaimTokenType)
	if !ok || tokenType != TokenTypeRefresh {
		return 0, "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get(ClaimUserID)
	if !ok {
		return 0, "", jwt.ErrInvalidJWT()
	}
	// jwx decodes JSON numbers as float64.
	userIDFloat, ok := userIDVal.(float64)
	if !ok {
		return 0, "", jwt.ErrInvalidJWT()
	}

	jti := token.JwtID()
	if jti == "" {
		if v, ok := token.Get("jti"); ok {
			jti, _ = v.(string)
		}
	}
	if jti == "" {
		return 0, "", jwt.ErrInvalidJWT()
	}

	return int64(userIDFloat), jti, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(jti string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[jti] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[jti]
	return revoked
}
