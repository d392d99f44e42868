package service

import (
	"context"
	"time"

	"family_expenses/internal/repository"
)

// ProjectorService periodically rebuilds the category usage projection from
// record history and, on the same tick, purges expired sessions.
type ProjectorService struct {
	records    repository.Records
	categories repository.Categories
	sessions   repository.Sessions
}

func NewProjectorService(records repository.Records, categories repository.Categories, sessions repository.Sessions) *ProjectorService {
	return &ProjectorService{records: records, categories: categories, sessions: sessions}
}

var _ Projector = (*ProjectorService)(nil)

// Run rebuilds once at startup, then ticks until ctx is canceled. Rebuild
// failures are tolerated: the previous projection simply stays in place
// until the next tick.
func (s *ProjectorService) Run(ctx context.Context, tick time.Duration) {
	_ = s.Rebuild(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = s.Rebuild(ctx)
			_ = s.sessions.DeleteExpired(ctx)
		}
	}
}

// Rebuild recomputes {cat, entry} usage counts over the full record
// history and swaps the projection.
func (s *ProjectorService) Rebuild(ctx context.Context) error {
	counts, err := s.records.CategoryCounts(ctx)
	if err != nil {
		return err
	}
	return s.categories.Replace(ctx, counts)
}
