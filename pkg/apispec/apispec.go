// Package apispec embeds the OpenAPI contract of the brief endpoint and
// checks request bodies against it.
package apispec

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// SendBriefPath is the operation path the body schema is read from.
const SendBriefPath = "/api/send-brief"

//go:embed openapi.yaml
var rawDocument []byte

// ErrNoBodySchema is returned when the document has no JSON body schema
// for the brief operation.
var ErrNoBodySchema = errors.New("apispec: send-brief body schema not found")

// Raw returns the embedded document bytes.
func Raw() []byte {
	return append([]byte(nil), rawDocument...)
}

// Contract is a loaded, validated document.
type Contract struct {
	doc  *openapi3.T
	body *openapi3.Schema
}

// Load parses and validates data.
func Load(ctx context.Context, data []byte) (*Contract, error) {
	if len(data) == 0 {
		return nil, errors.New("apispec: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("apispec: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("apispec: validate: %w", err)
	}
	body, err := bodySchema(doc)
	if err != nil {
		return nil, err
	}
	return &Contract{doc: doc, body: body}, nil
}

var (
	defaultOnce     sync.Once
	defaultContract *Contract
	defaultErr      error
)

// Default returns the embedded contract, loaded once.
func Default() (*Contract, error) {
	defaultOnce.Do(func() {
		defaultContract, defaultErr = Load(context.Background(), rawDocument)
	})
	return defaultContract, defaultErr
}

func bodySchema(doc *openapi3.T) (*openapi3.Schema, error) {
	if doc.Paths == nil {
		return nil, ErrNoBodySchema
	}
	item := doc.Paths.Value(SendBriefPath)
	if item == nil || item.Post == nil || item.Post.RequestBody == nil || item.Post.RequestBody.Value == nil {
		return nil, ErrNoBodySchema
	}
	media := item.Post.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, ErrNoBodySchema
	}
	return media.Schema.Value, nil
}

// Document exposes the parsed document.
func (c *Contract) Document() *openapi3.T {
	return c.doc
}

// Fields lists the body properties the contract declares.
func (c *Contract) Fields() []string {
	out := make([]string, 0, len(c.body.Properties))
	for name := range c.body.Properties {
		out = append(out, name)
	}
	return out
}

// ValidateBody checks a decoded JSON value against the request body schema.
func (c *Contract) ValidateBody(value any) error {
	if err := c.body.VisitJSON(value); err != nil {
		return fmt.Errorf("apispec: body: %w", err)
	}
	return nil
}
