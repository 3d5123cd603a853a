package models

// RateLimit carries the Ratelimit-* response headers attached to every
// Helix call. Values are surfaced to the operator, never acted upon.
type RateLimit struct {
	Limit     int64 // points available per window
	Remaining int64 // points left in the current window
	Reset     int64 // unix timestamp when the window refills
}
