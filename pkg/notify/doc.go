// Package notify is the server side of a brief submission: it checks the
// runtime configuration and the required fields, composes the internal
// notification and the customer confirmation, and sends both through a
// Mailer built for the request.
//
// Configuration is read on every request (Begin) rather than at start-up,
// and the Mailer lives only as long as one Dispatch.
//
// Failures are *Error values carrying a Kind, an HTTP status and a
// localized message that is safe to return to the customer.
package notify
