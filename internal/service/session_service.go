package service

import (
	"context"
	"fmt"
	"time"

	"family_expenses/internal/models"
	"family_expenses/internal/repository"

	"github.com/google/uuid"
)

// SessionService creates and destroys server-side sessions. The token is
// opaque; the client only ever sees it inside the cookie.
type SessionService struct {
	repo repository.Sessions
	ttl  time.Duration
}

func NewSessionService(repo repository.Sessions, ttl time.Duration) *SessionService {
	return &SessionService{repo: repo, ttl: ttl}
}

var _ Sessions = (*SessionService)(nil)

// Begin creates a fresh anonymous session with a fixed lifetime.
func (s *SessionService) Begin(ctx context.Context) (models.Session, error) {
	sess := models.Session{
		ID:        uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return sess, nil
}

// Get resolves a cookie token to its live session, (nil, nil) otherwise.
func (s *SessionService) Get(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return sess, nil
}

// Destroy removes the session row; the identity binding dies with it.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
