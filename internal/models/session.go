package models

import "time"

// Session is the server-held state behind the opaque cookie token. Name is
// empty until the session has been authenticated; Challenge is set only
// while a legacy challenge-response handshake is in flight.
type Session struct {
	ID        string    `json:"-"`
	Name      string    `json:"name,omitempty"`
	Challenge string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// Bound reports whether the session has an authenticated identity.
func (s *Session) Bound() bool {
	return s != nil && s.Name != ""
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}
