// Package sendbrief provides the net/http handler behind POST /api/send-brief.
//
// The handler reads the notification config before it touches the body,
// checks the body against the embedded OpenAPI contract, and hands the
// decoded values to a notify dispatch. Responses are always JSON:
// {"success": true} or {"error": "<localized message>"} with the status of
// the failure kind.
package sendbrief
