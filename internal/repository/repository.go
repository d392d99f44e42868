package repository

import (
	"context"
	"database/sql"
	"time"

	"family_expenses/internal/models"
)

// Users is the credential store.
type Users interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	// CountByUsername backs the per-request authorization gate: a bound
	// identity is valid only while it resolves to exactly one user row.
	CountByUsername(username string) (int, error)
}

// Sessions is the server-side session store behind the opaque cookie token.
type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	// Get returns (nil, nil) when the token is unknown or expired.
	Get(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, s models.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}

// RecordQuery selects records with buy_date in [From, To) plus optional
// equality filters; an empty filter string means no filter on that column.
type RecordQuery struct {
	From     time.Time
	To       time.Time
	Buyer    string
	Category string
	Product  string
}

// Records is the expense record store.
type Records interface {
	Insert(ctx context.Context, r models.Record) error
	// Replace overwrites every mutable field of the record with the given
	// id. It reports false when no row matched.
	Replace(ctx context.Context, r models.Record) (bool, error)
	// Delete removes one record by id. It reports false when no row matched.
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, q RecordQuery) ([]models.Record, error)
	// CategoryCounts aggregates usage counts per category over all records,
	// most used first.
	CategoryCounts(ctx context.Context) ([]models.Category, error)
}

// Categories is the derived projection store.
type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
	// Replace swaps the whole projection, keeping archived marks of
	// surviving categories.
	Replace(ctx context.Context, cats []models.Category) error
}

type Repository struct {
	Users      Users
	Sessions   Sessions
	Records    Records
	Categories Categories
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(db),
		Sessions:   NewSessionRepository(db),
		Records:    NewRecordRepository(db),
		Categories: NewCategoryRepository(db),
	}
}
