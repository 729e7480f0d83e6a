// Package testsupport holds fixtures and fakes shared by package tests.
package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-brief/pkg/model"
)

// SampleValues returns the minimal submission used across end-to-end tests.
func SampleValues() model.FormValues {
	values := model.Defaults()
	values.Name = "Anna Svensson"
	values.Email = "anna@example.com"
	values.Description = "Ny hemsida"
	return values
}

// MustLoadValues loads a JSON fixture into FormValues.
func MustLoadValues(t *testing.T, path string) model.FormValues {
	t.Helper()

	values, err := LoadValues(path)
	if err != nil {
		t.Fatalf("load values: %v", err)
	}
	return values
}

// LoadValues reads a JSON fixture into FormValues, returning an error for
// callers managing setup outside of *testing.T.
func LoadValues(path string) (model.FormValues, error) {
	if path == "" {
		return model.FormValues{}, errors.New("testsupport: values path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormValues{}, fmt.Errorf("testsupport: read values: %w", err)
	}
	out := model.Defaults()
	if err := json.Unmarshal(data, &out); err != nil {
		return model.FormValues{}, fmt.Errorf("testsupport: unmarshal values: %w", err)
	}
	return out.Normalize(), nil
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
