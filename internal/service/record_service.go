package service

import (
	"context"
	"fmt"
	"time"

	"family_expenses/internal/models"
	"family_expenses/internal/repository"

	"github.com/google/uuid"
)

// RecordInput is the typed boundary schema for add/edit. Required fields
// are pointers so a missing key is distinguishable from an empty value:
// presence is what is validated, note may be empty but must be sent.
type RecordInput struct {
	ID       string      `json:"_id"`
	Buyer    *string     `json:"buyer"`
	Category *string     `json:"category"`
	BuyDate  *string     `json:"buyDate"`
	Product  *string     `json:"product"`
	Sum      *models.Sum `json:"sum"`
	Whom     *string     `json:"whom"`
	Note     *string     `json:"note"`
}

// QueryParams selects records by half-open date range [fromDate, toDate)
// plus an optional equality filter. Filter keys outside the allow-list are
// silently ignored; "*" or empty means no filter on that column.
type QueryParams struct {
	FromDate string            `json:"fromDate"`
	ToDate   string            `json:"toDate"`
	Filter   map[string]string `json:"filter"`
}

// Columns the query filter may constrain.
var validFilterColumns = []string{"buyer", "category", "product"}

type RecordService struct {
	repo repository.Records
}

func NewRecordService(repo repository.Records) *RecordService {
	return &RecordService{repo: repo}
}

var _ Records = (*RecordService)(nil)

// Create validates the full field set, stamps creator/created and inserts
// a new record, returning it with its generated id.
func (s *RecordService) Create(ctx context.Context, creator string, in RecordInput) (models.Record, error) {
	rec, err := in.validate()
	if err != nil {
		return models.Record{}, err
	}
	rec.ID = uuid.NewString()
	rec.Creator = creator
	rec.Created = time.Now().UTC()

	if err := s.repo.Insert(ctx, rec); err != nil {
		return models.Record{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return rec, nil
}

// Update replaces every field of an existing record (no partial patches)
// and stamps editor/edited.
func (s *RecordService) Update(ctx context.Context, editor string, in RecordInput) error {
	if in.ID == "" {
		return fmt.Errorf("%w: missing _id", ErrValidation)
	}
	rec, err := in.validate()
	if err != nil {
		return err
	}
	rec.ID = in.ID
	rec.Editor = editor
	now := time.Now().UTC()
	rec.Edited = &now

	ok, err := s.repo.Replace(ctx, rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete removes exactly one record by id.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing _id", ErrValidation)
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Query returns the matching records plus the total sum per category over
// the returned set.
func (s *RecordService) Query(ctx context.Context, p QueryParams) ([]models.Record, map[string]float64, error) {
	from, err := parseDate(p.FromDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad fromDate %q", ErrValidation, p.FromDate)
	}
	to := time.Now().UTC()
	if p.ToDate != "" {
		if to, err = parseDate(p.ToDate); err != nil {
			return nil, nil, fmt.Errorf("%w: bad toDate %q", ErrValidation, p.ToDate)
		}
	}

	q := repository.RecordQuery{From: from, To: to}
	for col, val := range p.Filter {
		if val == "" || val == "*" {
			continue
		}
		switch col {
		case "buyer":
			q.Buyer = val
		case "category":
			q.Category = val
		case "product":
			q.Product = val
		default:
			// unknown columns are ignored, not rejected
		}
	}

	items, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return items, makeSummary(items), nil
}

// makeSummary groups the returned records' sums by category.
func makeSummary(items []models.Record) map[string]float64 {
	summary := make(map[string]float64, 8)
	for _, itm := range items {
		summary[itm.Category] += itm.Sum
	}
	return summary
}

func (in RecordInput) validate() (models.Record, error) {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"buyer", in.Buyer != nil},
		{"category", in.Category != nil},
		{"buyDate", in.BuyDate != nil},
		{"product", in.Product != nil},
		{"sum", in.Sum != nil},
		{"whom", in.Whom != nil},
		{"note", in.Note != nil},
	} {
		if !f.ok {
			return models.Record{}, fmt.Errorf("%w: missing %s", ErrValidation, f.name)
		}
	}
	if !in.Sum.Valid() {
		return models.Record{}, fmt.Errorf("%w: sum must be a non-negative number", ErrValidation)
	}
	buyDate, err := parseDate(*in.BuyDate)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: bad buyDate %q", ErrValidation, *in.BuyDate)
	}

	return models.Record{
		Buyer:    *in.Buyer,
		Category: *in.Category,
		BuyDate:  buyDate,
		Product:  *in.Product,
		Sum:      float64(*in.Sum),
		Whom:     *in.Whom,
		Note:     *in.Note,
	}, nil
}

// Accepted buyDate/fromDate/toDate layouts, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
