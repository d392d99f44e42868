package models

import (
	"testing"
	"time"
)

func TestSession_Bound(t *testing.T) {
	var nilSess *Session
	if nilSess.Bound() {
		t.Fatalf("nil session must not be bound")
	}
	if (&Session{ID: "tok"}).Bound() {
		t.Fatalf("anonymous session must not be bound")
	}
	if !(&Session{ID: "tok", Name: "alice"}).Bound() {
		t.Fatalf("named session must be bound")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	live := &Session{ExpiresAt: now.Add(time.Hour)}
	if live.Expired(now) {
		t.Fatalf("session expiring in an hour is not expired")
	}

	dead := &Session{ExpiresAt: now.Add(-time.Second)}
	if !dead.Expired(now) {
		t.Fatalf("past expiry must report expired")
	}

	boundary := &Session{ExpiresAt: now}
	if !boundary.Expired(now) {
		t.Fatalf("expiry instant counts as expired")
	}
}
