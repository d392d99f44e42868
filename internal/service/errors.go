package service

import "errors"

// Error taxonomy surfaced at the request boundary. Handlers map each of
// these to a `{res:false, text}` body; unknown errors keep their message.
var (
	// ErrInvalidSession: no cookie, unknown token, or no bound identity.
	ErrInvalidSession = errors.New("invalid session")
	// ErrInvalidUser: the bound identity no longer resolves to one user.
	ErrInvalidUser = errors.New("invalid user")
	// ErrInvalidCredentials is the uniform login failure. Unknown user and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("authentication failed")
	// ErrValidation: a required field is missing or malformed on add/edit.
	ErrValidation = errors.New("invalid check data")
	// ErrNotFound: edit/delete target does not exist.
	ErrNotFound = errors.New("not found")
	// ErrChallengeDisabled: /authtoken called while direct auth is active.
	ErrChallengeDisabled = errors.New("challenge authentication disabled")
	// ErrStoreUnavailable: the underlying store failed; the request fails,
	// no retries are attempted.
	ErrStoreUnavailable = errors.New("store unavailable")
)
