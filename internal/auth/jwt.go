package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

const (
	issuer   = "plot"
	audience = "plot-api"

	// clockSkew tolerates small drift between the issuing and validating hosts.
	clockSkew = 30 * time.Second
)

// Session is a signed bearer token and the moment it stops being accepted.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Claims identifies the caller of a request. The user ID is the token subject.
// Household membership is not carried: it changes on onboarding and partner
// linking, so services read it from storage.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the authenticated user's ID.
func (c *Claims) UserID() string {
	return c.Subject
}

// JWTManager signs and verifies HS256 session tokens.
type JWTManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
	parser    *jwt.Parser
}

// NewJWTManager returns a manager issuing tokens valid for ttl.
func NewJWTManager(secretKey string, ttl time.Duration) *JWTManager {
	m := &JWTManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	return m
}

// Issue starts a session for user.
func (m *JWTManager) Issue(user *models.User) (Session, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := &Claims{
		Email: user.Email,
		Name:  user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return Session{}, fmt.Errorf("sign session for %s: %w", user.ID, err)
	}
	return Session{Token: token, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// Validate checks the signature, issuer, audience and expiry of token and
// returns its claims.
func (m *JWTManager) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := m.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID() == "" {
		return nil, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return claims, nil
}
