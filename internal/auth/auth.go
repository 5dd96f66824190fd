// Package auth issues and validates the credentials that identify a PLOT caller.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = fmt.Errorf("password must be %d to %d characters", minPasswordLen, maxPasswordLen)
	ErrEmailExists        = errors.New("email already registered")

	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Authenticator turns credentials into users. PLOT ships a password
// implementation; a hosted identity provider can stand in for it.
type Authenticator interface {
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
	ValidateCredential(credential string) error
}
