// Package service provides the workflow layer: each workflow sequences
// gateway calls with local validation and result interpretation into a
// terminal outcome for the presentation layer.
package service

import (
	"context"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var authTracer = otel.Tracer("service/auth")

// AuthService owns the session lifecycle: login and registration create it,
// logout destroys it. It is the single owner of session load/save/clear;
// other workflows only read the identity it established.
type AuthService struct {
	api      port.AuthAPI
	sessions port.SessionStore
	logger   *zap.Logger
}

// NewAuthService creates the auth workflow.
func NewAuthService(api port.AuthAPI, sessions port.SessionStore, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, logger: logger}
}

// Login authenticates against the ledger and installs the returned identity
// as the active session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Login")
	defer span.End()

	if email == "" || password == "" {
		return nil, &domain.ErrValidation{Field: "credentials", Message: "email and password are required"}
	}

	resp, err := s.api.Login(ctx, &domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		UserID:      resp.ID,
		DisplayName: resp.Name,
		Email:       resp.Email,
	}
	if sess.Email == "" {
		sess.Email = email
	}

	if err := s.sessions.Set(sess); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := s.sessions.SetToken(resp.Token); err != nil {
			return nil, err
		}
	}

	s.logger.Info("auth: session established", zap.Int64("user_id", sess.UserID))
	span.SetAttributes(attribute.Int64("user.id", sess.UserID))
	return sess, nil
}

// Register creates a customer on the ledger. It does not log the new
// customer in; the SPA routes through login afterwards.
func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.RegisterResponse, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Register")
	defer span.End()

	if req.Email == "" || req.Password == "" {
		return nil, &domain.ErrValidation{Field: "credentials", Message: "email and password are required"}
	}
	if req.TCID == "" {
		return nil, &domain.ErrValidation{Field: "tcId", Message: "national id is required"}
	}

	return s.api.Register(ctx, req)
}

// Logout destroys the active session and the stored token together.
func (s *AuthService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return err
	}
	s.logger.Info("auth: session cleared")
	return nil
}

// CurrentSession returns the active identity, nil when unauthenticated.
func (s *AuthService) CurrentSession() *domain.Session {
	return s.sessions.Get()
}
