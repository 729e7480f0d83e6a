package branding

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestSelectDefaults(t *testing.T) {
	s := MustSelector()
	sel, err := s.Select("", "")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Theme != ThemeName || sel.Variant != VariantLight {
		t.Fatalf("selection = %s/%s", sel.Theme, sel.Variant)
	}
	tokens := Tokens(sel)
	if tokens[TokenBrand] != "#32CD32" || tokens[TokenSurface] != "#ffffff" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}

func TestSelectVariantOverlay(t *testing.T) {
	tokens := MustSelector().Resolve(ThemeName, VariantDark)
	if tokens[TokenSurface] != "#1a1a2e" {
		t.Fatalf("dark surface = %q", tokens[TokenSurface])
	}
	if tokens[TokenBrand] != "#32CD32" {
		t.Fatalf("brand should come from base tokens, got %q", tokens[TokenBrand])
	}
}

func TestSelectUnknownTheme(t *testing.T) {
	s := MustSelector()
	if _, err := s.Select("acme", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if got := s.Resolve("acme", "dark")[TokenBrand]; got != "#32CD32" {
		t.Fatalf("Resolve fallback brand = %q", got)
	}
}

func TestCustomManifest(t *testing.T) {
	s, err := NewSelector(&theme.Manifest{
		Name:    "acme",
		Version: "0.1.0",
		Tokens:  map[string]string{TokenBrand: "#123456"},
	})
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}
	if got := s.Resolve("", "")[TokenBrand]; got != "#123456" {
		t.Fatalf("brand = %q", got)
	}
	if s.Provider() == nil {
		t.Fatalf("expected provider")
	}
	if _, err := NewSelector(&theme.Manifest{}); err == nil {
		t.Fatalf("expected error for nameless manifest")
	}
}
