package authentication

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/models"
)

// TokenTTL bounds how long an issued credential stays valid.
const TokenTTL = 24 * time.Hour

// Claims binds an account id and role into a signed token. Verification is
// stateless; nothing is kept server-side per session.
type Claims struct {
	AccountID string      `json:"accountId"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session credentials.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
}

// NewTokenService builds a service with the default 24h expiry.
func NewTokenService(signingKey string) *TokenService {
	return &TokenService{signingKey: []byte(signingKey), ttl: TokenTTL}
}

// NewTokenServiceTTL builds a service with a custom expiry, used by tests.
func NewTokenServiceTTL(signingKey string, ttl time.Duration) *TokenService {
	return &TokenService{signingKey: []byte(signingKey), ttl: ttl}
}

// Issue produces a signed credential for the account.
func (s *TokenService) Issue(accountID string, role models.Role) (string, error) {
	claims := &Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// Verify parses and validates a credential, distinguishing an expired token
// from a tampered or malformed one.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.New(apperror.KindExpiredToken, "token expired")
		}
		return nil, apperror.New(apperror.KindInvalidToken, "invalid token")
	}
	if !token.Valid {
		return nil, apperror.New(apperror.KindInvalidToken, "invalid token")
	}
	if _, err := models.ParseRole(string(claims.Role)); err != nil {
		return nil, apperror.New(apperror.KindInvalidToken, "invalid token claims")
	}
	return &claims, nil
}
