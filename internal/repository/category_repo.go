package repository

import (
	"context"
	"database/sql"
	"fmt"

	"family_expenses/internal/models"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	selectCategoriesSQL    = `SELECT name, entry, archived FROM categories ORDER BY entry DESC, name ASC`
	selectArchivedNamesSQL = `SELECT name FROM categories WHERE archived = 1`
	deleteAllCategoriesSQL = `DELETE FROM categories`
	insertCategorySQL      = `INSERT INTO categories (name, entry, archived) VALUES (?, ?, ?)`
)

// List returns the whole projection, most used categories first.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var (
			c        models.Category
			archived int
		)
		if err := rows.Scan(&c.Name, &c.Entries, &archived); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Archived = archived == 1
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}

// Replace swaps the projection for the given rows in one transaction.
// Archived marks of categories that survive the rebuild are preserved.
func (r *CategoryRepository) Replace(ctx context.Context, cats []models.Category) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin category replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	archived, err := archivedNames(ctx, tx)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, deleteAllCategoriesSQL); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	for _, c := range cats {
		flag := 0
		if c.Archived || archived[c.Name] {
			flag = 1
		}
		if _, err := tx.ExecContext(ctx, insertCategorySQL, c.Name, c.Entries, flag); err != nil {
			return fmt.Errorf("insert category %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit category replace: %w", err)
	}
	return nil
}

func archivedNames(ctx context.Context, tx *sql.Tx) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx, selectArchivedNamesSQL)
	if err != nil {
		return nil, fmt.Errorf("select archived categories: %w", err)
	}
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan archived category: %w", err)
		}
		names[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archived categories: %w", err)
	}
	return names, nil
}
