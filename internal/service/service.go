package service

import (
	"context"
	"time"

	"family_expenses/internal/config"
	"family_expenses/internal/models"
	"family_expenses/internal/repository"
)

// Sessions owns the session lifecycle: anonymous on first contact,
// destroyed on logout or expiry.
type Sessions interface {
	Begin(ctx context.Context) (models.Session, error)
	// Get returns (nil, nil) for unknown or expired tokens.
	Get(ctx context.Context, token string) (*models.Session, error)
	Destroy(ctx context.Context, token string) error
}

// Credentials is a login attempt. Password carries the plaintext for the
// direct protocol; Hash carries the client digest for the deprecated
// challenge-response protocol.
type Credentials struct {
	User     string
	Password string
	Hash     string
}

// Authenticator verifies a login attempt and binds the session to the
// resulting identity. Implementations must fail uniformly: callers learn
// nothing about which part of the credentials was wrong.
type Authenticator interface {
	Authenticate(ctx context.Context, sess *models.Session, cred Credentials) (string, error)
	// IssueChallenge stores a fresh single-use challenge on the session.
	// Only the challenge-response variant supports it.
	IssueChallenge(ctx context.Context, sess *models.Session) (string, error)
}

// Gate is the per-request authorization check: session exists, is bound,
// and the bound identity still resolves to exactly one user. The user
// lookup is repeated on every call so a removed account locks out even a
// live session cookie.
type Gate interface {
	Authorize(ctx context.Context, token string) (string, error)
}

// Records exposes session-scoped expense CRUD plus the range query with
// its per-category summary.
type Records interface {
	Create(ctx context.Context, creator string, in RecordInput) (models.Record, error)
	Update(ctx context.Context, editor string, in RecordInput) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, p QueryParams) ([]models.Record, map[string]float64, error)
}

// Categories exposes the derived usage projection.
type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Projector rebuilds the category projection from record history in the
// background. Stop via context cancellation in main() for graceful shutdown.
type Projector interface {
	Run(ctx context.Context, tick time.Duration)
	Rebuild(ctx context.Context) error
}

type Service struct {
	Sessions
	Authenticator
	Gate
	Records
	Categories
	Projector
}

// NewService wires the repository layer into concrete services. The
// authenticator variant is chosen by configuration; the challenge-response
// one exists only for the old web client.
func NewService(cfg *config.Config, repos *repository.Repository) *Service {
	var auth Authenticator
	switch cfg.AuthProtocol {
	case config.ProtocolChallenge:
		auth = NewChallengeAuthenticator(repos.Users, repos.Sessions)
	default:
		auth = NewDirectAuthenticator(repos.Users, repos.Sessions)
	}

	return &Service{
		Sessions:      NewSessionService(repos.Sessions, cfg.SessionTTL),
		Authenticator: auth,
		Gate:          NewGateService(repos.Sessions, repos.Users),
		Records:       NewRecordService(repos.Records),
		Categories:    NewCategoryService(repos.Categories),
		Projector:     NewProjectorService(repos.Records, repos.Categories, repos.Sessions),
	}
}
