package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Sum is a non-negative money amount. The web client historically sent it
// either as a JSON number or as a numeric string, so both are accepted.
type Sum float64

// UnmarshalJSON coerces numbers and numeric strings into a Sum.
func (s *Sum) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("parse sum %q: %w", raw, err)
	}
	*s = Sum(v)
	return nil
}

// Valid reports whether the amount is a finite, non-negative number.
func (s Sum) Valid() bool {
	f := float64(s)
	return f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Record is a single expense entry. Creator/created are stamped on insert,
// editor/edited on every full-record replace.
type Record struct {
	ID       string     `json:"_id"`
	Buyer    string     `json:"buyer"`
	Category string     `json:"category"`
	BuyDate  time.Time  `json:"buyDate"`
	Product  string     `json:"product"`
	Sum      float64    `json:"sum"`
	Whom     string     `json:"whom"`
	Note     string     `json:"note"`
	Creator  string     `json:"creator"`
	Created  time.Time  `json:"created"`
	Editor   string     `json:"editor,omitempty"`
	Edited   *time.Time `json:"edited,omitempty"`
}
