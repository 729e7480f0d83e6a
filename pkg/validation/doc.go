// Package validation implements the per-step rules of the brief form.
//
// Validate is pure: it reads FormValues and returns localized messages in a
// stable order. Emptiness is checked before format, so "required" and
// "invalid" never fire together for the same field.
package validation
