package mailtemplate

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	fsys := fstest.MapFS{
		"greeting.tpl": {Data: []byte("{% autoescape off %}Hej {{ name }}!{% endautoescape %}")},
		"list.txt":     {Data: []byte("{% autoescape off %}Typ: {{ types|orempty }}\nStil: {{ style|orempty:\"Ej angivet\" }}{% endautoescape %}")},
		"blocks.tpl": {Data: []byte("{% autoescape off %}A\n{% if show %}\nB\n{% endif %}\n\n\n\nC{% endautoescape %}")},
	}
	engine, err := New(append([]Option{WithFS(fsys)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without fs or base dir")
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	engine := newTestEngine(t)
	var buf bytes.Buffer
	out, err := engine.Render("greeting", map[string]any{"name": "<Anna>"}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Hej <Anna>!" {
		t.Fatalf("out = %q", out)
	}
	if buf.String() != out {
		t.Fatalf("writer received %q", buf.String())
	}
}

func TestOrEmptyFilter(t *testing.T) {
	engine := newTestEngine(t, WithExtension("txt"))
	out, err := engine.RenderTemplate("list", map[string]any{
		"types": []string{"Portfolio", " ", "Redesign"},
		"style": "   ",
	})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if want := "Typ: Portfolio, Redesign\nStil: Ej angivet"; out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}

	out, err = engine.RenderTemplate("list", map[string]any{})
	if err != nil {
		t.Fatalf("RenderTemplate empty: %v", err)
	}
	if want := "Typ: -\nStil: Ej angivet"; out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestCompactOutput(t *testing.T) {
	engine := newTestEngine(t, WithCompactOutput(true))
	out, err := engine.RenderTemplate("blocks", map[string]any{"show": false})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "A\n\nC\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderStringAndGlobals(t *testing.T) {
	engine := newTestEngine(t, WithGlobalData(map[string]any{"brand": "PixelPioneer"}))
	out, err := engine.Render("{{ brand }} / {{ Name }}", struct{ Name string }{Name: "Anna"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "PixelPioneer / Anna" {
		t.Fatalf("out = %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine := newTestEngine(t)
	name := "shout_test"
	if err := engine.RegisterFilter(name, func(in any, _ any) (any, error) {
		s, _ := in.(string)
		return strings.ToUpper(s), nil
	}); err != nil {
		t.Fatalf("RegisterFilter: %v", err)
	}
	if err := engine.RegisterFilter(name, func(in any, _ any) (any, error) { return in, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
	out, err := engine.RenderString("{{ v|shout_test }}", map[string]any{"v": "hej"})
	if err != nil || out != "HEJ" {
		t.Fatalf("out = %q, %v", out, err)
	}
}

func TestMissingTemplate(t *testing.T) {
	engine := newTestEngine(t)
	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}
