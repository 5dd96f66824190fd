package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/auth"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
	plotv1 "github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1/plotv1connect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	plotv1connect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
		logger:        logger,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[plotv1.RegisterRequest]) (*connect.Response[plotv1.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	// Validate input
	if req.Msg.Email == "" || req.Msg.DisplayName == "" {
		return nil, invalidArgument("email and display name are required")
	}

	user, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidEmail):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	session, err := s.jwtManager.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue session", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&plotv1.RegisterResponse{
		User:      toUser(user),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	}), nil
}

// Login checks the password and starts a session.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[plotv1.LoginRequest]) (*connect.Response[plotv1.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	session, err := s.jwtManager.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue session", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return connect.NewResponse(&plotv1.LoginResponse{
		User:      toUser(user),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	}), nil
}

// GetCurrentUser returns the authenticated user, including the household and pay
// cycle the dashboard should open on.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[plotv1.GetCurrentUserRequest]) (*connect.Response[plotv1.GetCurrentUserResponse], error) {
	user, err := caller(ctx, s.store)
	if err != nil {
		return nil, connectError(err)
	}

	s.logger.Info("GetCurrentUser request", "user_id", user.ID)
	return connect.NewResponse(&plotv1.GetCurrentUserResponse{User: toUser(user)}), nil
}
