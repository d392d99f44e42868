package service

import (
	"context"
	"fmt"

	"family_expenses/internal/repository"
)

// GateService re-validates session plus account existence before any data
// operation. Sessions live for hours while accounts can disappear at any
// time, so the user lookup is never cached.
type GateService struct {
	sessions repository.Sessions
	users    repository.Users
}

func NewGateService(sessions repository.Sessions, users repository.Users) *GateService {
	return &GateService{sessions: sessions, users: users}
}

var _ Gate = (*GateService)(nil)

// Authorize resolves the cookie token to a bound identity or rejects the
// request before it can touch the record store.
func (g *GateService) Authorize(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}
	sess, err := g.sessions.Get(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !sess.Bound() {
		return "", ErrInvalidSession
	}

	n, err := g.users.CountByUsername(sess.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if n != 1 {
		return "", ErrInvalidUser
	}
	return sess.Name, nil
}
