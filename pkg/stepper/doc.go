// Package stepper is the brief form state machine. It owns FormValues for a
// single session, gates forward moves on the step validator and drives the
// one network submission at the end.
//
// A Controller is owned by one goroutine (the presentation layer's event
// loop); it does no locking of its own.
package stepper
