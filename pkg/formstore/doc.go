// Package formstore persists the in-progress brief between sessions.
//
// Store writes are batched and happen off the caller's goroutine; Load
// flushes the pending snapshot first so a Load right after Save observes it.
// Storage failures never surface: a broken backend degrades the session to
// in-memory only.
package formstore
