// Package branding resolves the color tokens used by the HTML emails from
// go-theme manifests.
package branding

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// ThemeName is the built-in manifest name.
	ThemeName = "pixelpioneer"
	// VariantLight is the default variant.
	VariantLight = "light"
	// VariantDark swaps the surface colors.
	VariantDark = "dark"
)

// ErrUnknownTheme is returned for names the selector has no manifest for.
var ErrUnknownTheme = errors.New("branding: unknown theme")

// Token keys the email templates read.
const (
	TokenBrand      = "brand"
	TokenAccent     = "accent"
	TokenInk        = "ink"
	TokenText       = "text"
	TokenMuted      = "muted"
	TokenSurface    = "surface"
	TokenBackground = "background"
	TokenHighlight  = "highlight"
	TokenCallout    = "callout"
	TokenFont       = "font"
)

// DefaultManifest returns the built-in brand manifest.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenBrand:      "#32CD32",
			TokenAccent:     "#ffa500",
			TokenInk:        "#1a1a2e",
			TokenText:       "#333333",
			TokenMuted:      "#666666",
			TokenSurface:    "#ffffff",
			TokenBackground: "#f5f5f5",
			TokenHighlight:  "#f0fff0",
			TokenCallout:    "#fff5e6",
			TokenFont:       "Arial, Helvetica, sans-serif",
		},
		Variants: map[string]theme.Variant{
			VariantDark: {
				Tokens: map[string]string{
					TokenInk:        "#f5f5f5",
					TokenText:       "#e0e0e0",
					TokenMuted:      "#aaaaaa",
					TokenSurface:    "#1a1a2e",
					TokenBackground: "#111111",
					TokenHighlight:  "#1f3320",
					TokenCallout:    "#33270f",
				},
			},
		},
	}
}

// Selector resolves theme selections from a fixed set of manifests. It also
// keeps them in a go-theme registry so callers that speak ThemeProvider can
// share the same set.
type Selector struct {
	provider       theme.ThemeProvider
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector registers manifests; the first one is the default theme. With
// no manifests the built-in one is used.
func NewSelector(manifests ...*theme.Manifest) (*Selector, error) {
	if len(manifests) == 0 {
		manifests = []*theme.Manifest{DefaultManifest()}
	}
	registry := theme.NewRegistry()
	s := &Selector{
		provider:       registry,
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultVariant: VariantLight,
	}
	for _, m := range manifests {
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return nil, fmt.Errorf("branding: manifest without name")
		}
		if err := registry.Register(m); err != nil {
			return nil, fmt.Errorf("branding: register %s: %w", name, err)
		}
		s.manifests[name] = m
		if s.defaultTheme == "" {
			s.defaultTheme = name
		}
	}
	if s.defaultTheme == "" {
		return nil, fmt.Errorf("branding: no manifests")
	}
	return s, nil
}

// MustSelector is NewSelector for program initialisation.
func MustSelector(manifests ...*theme.Manifest) *Selector {
	s, err := NewSelector(manifests...)
	if err != nil {
		panic(err)
	}
	return s
}

// Provider exposes the underlying registry.
func (s *Selector) Provider() theme.ThemeProvider {
	return s.provider
}

// Select implements theme.ThemeSelector. Empty arguments pick the defaults;
// an unknown variant falls back to the base tokens.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}
	if _, ok := manifest.Variants[variant]; !ok {
		variant = s.defaultVariant
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Tokens flattens a selection into base tokens overlaid with the variant's.
func Tokens(sel *theme.Selection) map[string]string {
	out := map[string]string{}
	if sel == nil || sel.Manifest == nil {
		return out
	}
	for k, v := range sel.Manifest.Tokens {
		out[k] = v
	}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		for k, v := range variant.Tokens {
			out[k] = v
		}
	}
	return out
}

// Resolve selects and flattens in one step, falling back to the built-in
// tokens when selection fails.
func (s *Selector) Resolve(name, variant string) map[string]string {
	sel, err := s.Select(name, variant)
	if err != nil {
		def, _ := s.Select("", "")
		return Tokens(def)
	}
	return Tokens(sel)
}
