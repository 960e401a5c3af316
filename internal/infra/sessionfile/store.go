// Package sessionfile persists the authenticated session in a small JSON
// file, the process-side equivalent of the browser's key-value storage:
// it survives restarts on this machine but never travels across devices.
package sessionfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Store holds the single active session and its bearer token. The session
// record and the token live under separate keys in the same file, so Clear
// drops both in one persisted write — logout is atomic by construction.
type Store struct {
	mu     sync.RWMutex
	path   string
	state  fileState
	logger *zap.Logger
}

// fileState mirrors the two fixed storage keys the SPA used.
type fileState struct {
	Session *domain.Session `json:"dinoUser,omitempty"`
	Token   string          `json:"token,omitempty"`
}

// New opens (or creates) the session file at path. A missing or corrupt
// file degrades to an empty store, never an error the caller must handle.
func New(path string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("session: unreadable session file, starting unauthenticated",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return s, nil
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		logger.Warn("session: corrupt session file, starting unauthenticated",
			zap.String("path", path),
			zap.Error(err),
		)
		s.state = fileState{}
	}
	return s, nil
}

// Get returns the active session, or nil when there is none, the stored
// record is corrupt, or the bearer token has visibly expired. Callers treat
// nil as unauthenticated.
func (s *Store) Get() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Session == nil || s.state.Session.UserID == 0 {
		return nil
	}
	if tokenExpired(s.state.Token) {
		s.logger.Info("session: stored token expired, treating as unauthenticated",
			zap.Int64("user_id", s.state.Session.UserID),
		)
		return nil
	}
	sess := *s.state.Session
	return &sess
}

// Set installs the session as the single active identity.
func (s *Store) Set(sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *sess
	s.state.Session = &copied
	return s.flushLocked()
}

// Token returns the stored bearer token, empty when absent.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// SetToken persists the bearer token under its own key.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Token = token
	return s.flushLocked()
}

// Clear removes the session and the token together.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fileState{}
	return s.flushLocked()
}

// flushLocked writes the state via a temp file rename so a crash mid-write
// leaves the previous record intact.
func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// tokenExpired reports whether the stored token is a JWT whose exp claim
// has passed. Opaque or claim-less tokens are never treated as expired;
// signature verification belongs to the remote service, not here.
func tokenExpired(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
