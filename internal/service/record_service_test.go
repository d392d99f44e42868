package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"family_expenses/internal/models"
	"family_expenses/internal/repository"
)

func strp(s string) *string { return &s }

func sump(v float64) *models.Sum {
	s := models.Sum(v)
	return &s
}

func fullInput() RecordInput {
	return RecordInput{
		Buyer:    strp("alice"),
		Category: strp("groceries"),
		BuyDate:  strp("2025-02-10"),
		Product:  strp("milk"),
		Sum:      sump(3.5),
		Whom:     strp("family"),
		Note:     strp(""),
	}
}

func TestRecordService_CreateStampsCreator(t *testing.T) {
	repo := &mockRecordRepo{}
	svc := NewRecordService(repo)

	row, err := svc.Create(context.Background(), "alice", fullInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if row.ID == "" {
		t.Fatalf("expected generated id")
	}
	if row.Creator != "alice" || row.Created.IsZero() {
		t.Fatalf("creator/created not stamped: %+v", row)
	}
	if row.Editor != "" || row.Edited != nil {
		t.Fatalf("fresh record must have no edit marks: %+v", row)
	}
	if !row.BuyDate.Equal(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected buy date: %v", row.BuyDate)
	}

	if len(repo.inserted) != 1 || repo.inserted[0].ID != row.ID {
		t.Fatalf("record not inserted: %+v", repo.inserted)
	}
}

func TestRecordService_ValidationRequiresEveryField(t *testing.T) {
	tests := []struct {
		field string
		strip func(*RecordInput)
	}{
		{"buyer", func(in *RecordInput) { in.Buyer = nil }},
		{"category", func(in *RecordInput) { in.Category = nil }},
		{"buyDate", func(in *RecordInput) { in.BuyDate = nil }},
		{"product", func(in *RecordInput) { in.Product = nil }},
		{"sum", func(in *RecordInput) { in.Sum = nil }},
		{"whom", func(in *RecordInput) { in.Whom = nil }},
		{"note", func(in *RecordInput) { in.Note = nil }},
	}

	repo := &mockRecordRepo{}
	svc := NewRecordService(repo)

	for _, tt := range tests {
		t.Run("missing "+tt.field, func(t *testing.T) {
			in := fullInput()
			tt.strip(&in)

			_, err := svc.Create(context.Background(), "alice", in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("error %q does not name field %q", err, tt.field)
			}
		})
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("invalid input must not reach the store")
	}
}

func TestRecordService_ValidationRejectsBadValues(t *testing.T) {
	repo := &mockRecordRepo{}
	svc := NewRecordService(repo)

	in := fullInput()
	in.Sum = sump(-2)
	if _, err := svc.Create(context.Background(), "alice", in); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative sum, got %v", err)
	}

	in = fullInput()
	in.BuyDate = strp("not a date")
	if _, err := svc.Create(context.Background(), "alice", in); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad date, got %v", err)
	}
}

func TestRecordService_NoteMayBeEmptyButMustBePresent(t *testing.T) {
	repo := &mockRecordRepo{}
	svc := NewRecordService(repo)

	if _, err := svc.Create(context.Background(), "alice", fullInput()); err != nil {
		t.Fatalf("empty note must be accepted: %v", err)
	}
}

func TestRecordService_Update(t *testing.T) {
	repo := &mockRecordRepo{
		ReplaceFn: func(r models.Record) (bool, error) { return true, nil },
	}
	svc := NewRecordService(repo)

	in := fullInput()
	in.ID = "rec-1"
	if err := svc.Update(context.Background(), "bob", in); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if len(repo.replaced) != 1 {
		t.Fatalf("expected 1 replace, got %d", len(repo.replaced))
	}
	got := repo.replaced[0]
	if got.ID != "rec-1" || got.Editor != "bob" || got.Edited == nil {
		t.Fatalf("editor/edited not stamped: %+v", got)
	}
}

func TestRecordService_UpdateMissingID(t *testing.T) {
	svc := NewRecordService(&mockRecordRepo{})
	if err := svc.Update(context.Background(), "bob", fullInput()); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRecordService_UpdateUnknownID(t *testing.T) {
	repo := &mockRecordRepo{
		ReplaceFn: func(models.Record) (bool, error) { return false, nil },
	}
	svc := NewRecordService(repo)

	in := fullInput()
	in.ID = "ghost"
	if err := svc.Update(context.Background(), "bob", in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordService_Delete(t *testing.T) {
	repo := &mockRecordRepo{
		DeleteFn: func(id string) (bool, error) { return id == "rec-1", nil },
	}
	svc := NewRecordService(repo)

	if err := svc.Delete(context.Background(), "rec-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing id, got %v", err)
	}
}

func TestRecordService_QueryFilterAllowList(t *testing.T) {
	repo := &mockRecordRepo{
		ListFn: func(repository.RecordQuery) ([]models.Record, error) { return nil, nil },
	}
	svc := NewRecordService(repo)

	_, _, err := svc.Query(context.Background(), QueryParams{
		FromDate: "2025-02-01",
		ToDate:   "2025-03-01",
		Filter: map[string]string{
			"buyer":    "alice",
			"category": "*",   // wildcard means no filter
			"product":  "",    // empty means no filter
			"creator":  "eve", // not filterable, ignored
		},
	})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	q := repo.lastQuery
	if q.Buyer != "alice" || q.Category != "" || q.Product != "" {
		t.Fatalf("filter not applied per allow-list: %+v", q)
	}
	if !q.From.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) ||
		!q.To.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range: %+v", q)
	}
}

func TestRecordService_QueryDefaultsToDateToNow(t *testing.T) {
	repo := &mockRecordRepo{
		ListFn: func(repository.RecordQuery) ([]models.Record, error) { return nil, nil },
	}
	svc := NewRecordService(repo)

	before := time.Now().UTC()
	if _, _, err := svc.Query(context.Background(), QueryParams{FromDate: "2025-02-01"}); err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if repo.lastQuery.To.Before(before) || repo.lastQuery.To.After(before.Add(time.Minute)) {
		t.Fatalf("expected To ~ now, got %v", repo.lastQuery.To)
	}
}

func TestRecordService_QueryRejectsBadDates(t *testing.T) {
	svc := NewRecordService(&mockRecordRepo{})

	if _, _, err := svc.Query(context.Background(), QueryParams{FromDate: ""}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing fromDate, got %v", err)
	}
	if _, _, err := svc.Query(context.Background(), QueryParams{FromDate: "2025-02-01", ToDate: "soon"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad toDate, got %v", err)
	}
}

func TestRecordService_QuerySummaryGroupsByCategory(t *testing.T) {
	repo := &mockRecordRepo{
		ListFn: func(repository.RecordQuery) ([]models.Record, error) {
			return []models.Record{
				{ID: "1", Category: "groceries", Sum: 3.5},
				{ID: "2", Category: "groceries", Sum: 1.5},
				{ID: "3", Category: "fuel", Sum: 40},
			}, nil
		},
	}
	svc := NewRecordService(repo)

	items, summary, err := svc.Query(context.Background(), QueryParams{FromDate: "2025-02-01"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if summary["groceries"] != 5 || summary["fuel"] != 40 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
