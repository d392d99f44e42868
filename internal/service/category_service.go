package service

import (
	"context"
	"fmt"

	"family_expenses/internal/models"
	"family_expenses/internal/repository"
)

// CategoryService reads the derived projection. Archived categories stay in
// the table (for history) but are hidden from the client.
type CategoryService struct {
	repo repository.Categories
}

func NewCategoryService(repo repository.Categories) *CategoryService {
	return &CategoryService{repo: repo}
}

var _ Categories = (*CategoryService)(nil)

// List returns non-archived categories, most used first.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	out := make([]models.Category, 0, len(all))
	for _, c := range all {
		if !c.Archived {
			out = append(out, c)
		}
	}
	return out, nil
}
