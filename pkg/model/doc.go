// Package model defines the brief form data: the FormValues superset shared
// by every form variant, the field catalogue and the step layouts of the
// basic (3-step) and extended (5-step) variants.
//
// FormValues is always fully defined. Defaults returns empty strings and
// empty, non-nil sets; Normalize restores that shape after decoding data
// from storage or the network.
package model
