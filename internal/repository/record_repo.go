package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"family_expenses/internal/models"

	"github.com/google/uuid"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository { return &RecordRepository{db: db} }

var _ Records = (*RecordRepository)(nil)

const recordColumns = `id, buyer, category, buy_date, product, sum, whom, note, creator, created, editor, edited`

const (
	insertRecordSQL = `
		INSERT INTO records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	replaceRecordSQL = `
		UPDATE records
		SET buyer = ?, category = ?, buy_date = ?, product = ?, sum = ?, whom = ?, note = ?, editor = ?, edited = ?
		WHERE id = ?
	`
	deleteRecordSQL = `DELETE FROM records WHERE id = ?`

	categoryCountsSQL = `
		SELECT category, COUNT(*) AS entry
		FROM records
		GROUP BY category
		ORDER BY entry DESC, category ASC
	`
)

// Insert stores a new record. If the id is empty, one is generated.
func (r *RecordRepository) Insert(ctx context.Context, rec models.Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	var edited any
	if rec.Edited != nil {
		edited = rec.Edited.UTC().Format(sqliteTimeFormat)
	}
	_, err := r.db.ExecContext(ctx, insertRecordSQL,
		rec.ID,
		rec.Buyer,
		rec.Category,
		rec.BuyDate.UTC().Format(sqliteTimeFormat),
		rec.Product,
		rec.Sum,
		rec.Whom,
		rec.Note,
		rec.Creator,
		rec.Created.UTC().Format(sqliteTimeFormat),
		nullIfEmpty(rec.Editor),
		edited,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// Replace performs a full-field overwrite of the record with rec.ID,
// stamping editor/edited. It reports false when the id matched no row.
func (r *RecordRepository) Replace(ctx context.Context, rec models.Record) (bool, error) {
	var edited any
	if rec.Edited != nil {
		edited = rec.Edited.UTC().Format(sqliteTimeFormat)
	}
	res, err := r.db.ExecContext(ctx, replaceRecordSQL,
		rec.Buyer,
		rec.Category,
		rec.BuyDate.UTC().Format(sqliteTimeFormat),
		rec.Product,
		rec.Sum,
		rec.Whom,
		rec.Note,
		nullIfEmpty(rec.Editor),
		edited,
		rec.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update record %q: %w", rec.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for record %q: %w", rec.ID, err)
	}
	return n > 0, nil
}

// Delete removes one record by id, reporting false when nothing matched.
func (r *RecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteRecordSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete record %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for record %q: %w", id, err)
	}
	return n > 0, nil
}

// List returns records with buy_date in [From, To), optionally narrowed by
// equality filters, ordered by buy date.
func (r *RecordRepository) List(ctx context.Context, q RecordQuery) ([]models.Record, error) {
	conds := []string{"buy_date >= ?", "buy_date < ?"}
	args := []any{
		q.From.UTC().Format(sqliteTimeFormat),
		q.To.UTC().Format(sqliteTimeFormat),
	}

	for _, f := range []struct {
		col, val string
	}{
		{"buyer", q.Buyer},
		{"category", q.Category},
		{"product", q.Product},
	} {
		if f.val != "" {
			conds = append(conds, f.col+" = ?")
			args = append(args, f.val)
		}
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY buy_date ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	out := make([]models.Record, 0, 64)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

func scanRecord(rows *sql.Rows) (models.Record, error) {
	var (
		rec    models.Record
		note   sql.NullString
		editor sql.NullString
		edited sql.NullTime
	)
	if err := rows.Scan(
		&rec.ID, &rec.Buyer, &rec.Category, &rec.BuyDate, &rec.Product,
		&rec.Sum, &rec.Whom, &note, &rec.Creator, &rec.Created,
		&editor, &edited,
	); err != nil {
		return models.Record{}, fmt.Errorf("scan record: %w", err)
	}
	rec.Note = note.String
	rec.Editor = editor.String
	if edited.Valid {
		t := edited.Time.UTC()
		rec.Edited = &t
	}
	rec.BuyDate = rec.BuyDate.UTC()
	rec.Created = rec.Created.UTC()
	return rec, nil
}

// CategoryCounts aggregates category usage over the full record history.
func (r *RecordRepository) CategoryCounts(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, categoryCountsSQL)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Name, &c.Entries); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}
	return out, nil
}
