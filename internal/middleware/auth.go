package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/auth"
)

type callerKey struct{}

// Caller is the identity a request was authenticated as.
type Caller struct {
	UserID string
	Email  string
}

// CallerFrom returns the request's caller, if any.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok && c.UserID != ""
}

// GetUserID returns the caller's user ID, or "" for anonymous requests.
func GetUserID(ctx context.Context) string {
	c, _ := CallerFrom(ctx)
	return c.UserID
}

// WithCaller returns a context authenticated as c.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// authenticate resolves the Authorization header. A missing header returns
// auth.ErrMissingToken.
func authenticate(jwtManager *auth.JWTManager, header string) (Caller, error) {
	if header == "" {
		return Caller{}, auth.ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return Caller{}, auth.ErrInvalidToken
	}
	claims, err := jwtManager.Validate(token)
	if err != nil {
		return Caller{}, err
	}
	return Caller{UserID: claims.UserID(), Email: claims.Email}, nil
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			c, err := authenticate(jwtManager, req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			return next(WithCaller(ctx, c), req)
		}
	}
}

// OptionalAuth attaches the caller when a valid token is present and lets every
// other request through anonymously. AuthService uses it so Register and Login
// stay reachable while GetCurrentUser still sees the caller.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if c, err := authenticate(jwtManager, req.Header().Get("Authorization")); err == nil {
				ctx = WithCaller(ctx, c)
			}
			return next(ctx, req)
		}
	}
}
