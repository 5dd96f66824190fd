package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
)

// memoryUsers is an in-memory UserStorage.
type memoryUsers map[string]*models.User

func (m memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	m[user.Email] = user
	return nil
}

func (m memoryUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m[email]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %w: %s", storage.ErrNotFound, email)
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(memoryUsers{}, bcrypt.MinCost)

	user, err := a.Register(ctx, " Alex@Example.com ", "Alex", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	_, err = a.Register(ctx, "alex@example.com", "Alex again", "another password")
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = a.Register(ctx, "sam@example.com", "Sam", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = a.Register(ctx, "sam@example.com", "Sam", strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrWeakPassword)

	for _, email := range []string{"", "sam", "Sam <sam@example.com>"} {
		_, err = a.Register(ctx, email, "Sam", "long enough")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}

	got, err := a.Authenticate(ctx, "ALEX@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = a.Authenticate(ctx, "alex@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Authenticate(ctx, "nobody@example.com", "whatever123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-1", Email: "alex@example.com", DisplayName: "Alex"}

	session, err := m.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 2*time.Second)

	claims, err := m.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "alex@example.com", claims.Email)
	assert.Equal(t, "Alex", claims.Name)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTManager("other-secret", time.Hour).Validate(session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				Subject:   "user-1",
				Audience:  jwt.ClaimStrings{"someone-else"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		token, err := forged.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no subject", func(t *testing.T) {
		session, err := m.Issue(&models.User{Email: "ghost@example.com"})
		require.NoError(t, err)

		_, err = m.Validate(session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTManager_Expiry(t *testing.T) {
	issued := time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC)
	m := NewJWTManager("test-secret", time.Hour)
	m.now = func() time.Time { return issued }

	session, err := m.Issue(&models.User{ID: "user-1", Email: "alex@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"fresh", issued.Add(time.Minute), true},
		{"within clock skew", issued.Add(time.Hour + 10*time.Second), true},
		{"expired", issued.Add(time.Hour + time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.now = func() time.Time { return tt.at }
			_, err := m.Validate(session.Token)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidToken)
			}
		})
	}
}
