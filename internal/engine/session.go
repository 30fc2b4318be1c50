package engine

import "sync/atomic"

// Token identifies one submission within a Session. Tokens are strictly
// increasing; a larger token always denotes a newer submission.
type Token int64

// Session hands out monotonic request tokens so that the result of a
// slow, superseded submission can be detected and discarded instead of
// overwriting the result of a newer one.
//
// Usage: call Begin before dispatching a resolve or synthesize; when
// the result arrives, apply it only if Current still reports true for
// that token.
//
// Thread-safety: safe for concurrent use (atomic operations).
type Session struct {
	latest atomic.Int64
}

// NewSession creates a session with no submissions issued.
func NewSession() *Session {
	return &Session{}
}

// Begin issues the next token and marks it as the latest submission.
func (s *Session) Begin() Token {
	return Token(s.latest.Add(1))
}

// Current reports whether t is still the latest issued token.
// A result whose token is no longer current must be discarded.
func (s *Session) Current(t Token) bool {
	return s.latest.Load() == int64(t)
}
