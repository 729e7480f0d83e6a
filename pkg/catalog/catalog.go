// Package catalog loads the localized copy of the brief: field labels,
// option lists, email labels and the confirmation email text.
//
// Copy may carry light inline markup (strong, em, links). It is sanitized
// at load time; Plain strips it for plaintext channels.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-brief/pkg/i18n"
)

//go:embed content/*.yaml
var embedded embed.FS

// FieldCopy is the presentation text of one form field.
type FieldCopy struct {
	Label       string `yaml:"label"`
	Help        string `yaml:"help"`
	Placeholder string `yaml:"placeholder"`
}

// Confirmation is the customer confirmation email copy.
type Confirmation struct {
	Greeting      string   `yaml:"greeting"`
	GreetingPlain string   `yaml:"greeting_plain"`
	Intro         string   `yaml:"intro"`
	SummaryTitle  string   `yaml:"summary_title"`
	NextTitle     string   `yaml:"next_title"`
	NextSteps     []string `yaml:"next_steps"`
	ThinkTitle    string   `yaml:"think_title"`
	ThinkIntro    string   `yaml:"think_intro"`
	ThinkAbout    []string `yaml:"think_about"`
	ThinkOutro    string   `yaml:"think_outro"`
	Questions     string   `yaml:"questions"`
	Tagline       string   `yaml:"tagline"`
	Signoff       string   `yaml:"signoff"`
	Signature     string   `yaml:"signature"`
}

// Catalog is the copy for one language.
type Catalog struct {
	Lang         string               `yaml:"lang"`
	Brand        string               `yaml:"brand"`
	Site         string               `yaml:"site"`
	Fields       map[string]FieldCopy `yaml:"fields"`
	Options      map[string][]string  `yaml:"options"`
	Labels       map[string]string    `yaml:"labels"`
	Confirmation Confirmation         `yaml:"confirmation"`
}

// Field returns the copy for a field, falling back to the field name.
func (c Catalog) Field(name string) FieldCopy {
	if fc, ok := c.Fields[name]; ok && fc.Label != "" {
		return fc
	}
	return FieldCopy{Label: name}
}

// OptionList returns a copy of the named option list.
func (c Catalog) OptionList(name string) []string {
	return append([]string{}, c.Options[name]...)
}

// Label returns the email label for key, or key itself.
func (c Catalog) Label(key string) string {
	if v, ok := c.Labels[key]; ok {
		return v
	}
	return key
}

// Store indexes catalogs by language.
type Store struct {
	catalogs map[string]Catalog
}

// Lookup returns the catalog for tag, falling back to the default language.
func (s *Store) Lookup(tag language.Tag) Catalog {
	if s == nil {
		return Catalog{}
	}
	b, _ := tag.Base()
	if c, ok := s.catalogs[b.String()]; ok {
		return c
	}
	def, _ := i18n.Default().Base()
	return s.catalogs[def.String()]
}

// Languages lists the loaded language codes.
func (s *Store) Languages() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		out = append(out, lang)
	}
	return out
}

// LoadFS parses every YAML file in fsys into a Store. Each file declares its
// language; duplicates are rejected.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{catalogs: map[string]Catalog{}}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		var doc Catalog
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("catalog: parse %s: %w", path, err)
		}
		lang := strings.ToLower(strings.TrimSpace(doc.Lang))
		if lang == "" {
			return fmt.Errorf("catalog: file %s does not declare lang", path)
		}
		if _, exists := store.catalogs[lang]; exists {
			return fmt.Errorf("catalog: duplicate language %q (file %s)", lang, path)
		}
		doc.Lang = lang
		store.catalogs[lang] = sanitizeCatalog(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the store built from the embedded catalogs.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "content")
		if err != nil {
			defaultErr = fmt.Errorf("catalog: embedded content: %w", err)
			return
		}
		defaultStore, defaultErr = LoadFS(sub)
	})
	return defaultStore, defaultErr
}

// MustDefault is Default for program initialisation.
func MustDefault() *Store {
	store, err := Default()
	if err != nil {
		panic(err)
	}
	return store
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func sanitizeCatalog(doc Catalog) Catalog {
	doc.Brand = Plain(doc.Brand)
	doc.Site = Plain(doc.Site)
	for key, fc := range doc.Fields {
		doc.Fields[key] = FieldCopy{
			Label:       Plain(fc.Label),
			Help:        Plain(fc.Help),
			Placeholder: Plain(fc.Placeholder),
		}
	}
	for key, list := range doc.Options {
		cleaned := make([]string, 0, len(list))
		for _, item := range list {
			if item = Plain(item); item != "" {
				cleaned = append(cleaned, item)
			}
		}
		doc.Options[key] = cleaned
	}
	for key, label := range doc.Labels {
		doc.Labels[key] = Plain(label)
	}

	c := &doc.Confirmation
	c.Greeting = Markup(c.Greeting)
	c.GreetingPlain = Plain(c.GreetingPlain)
	c.Intro = Markup(c.Intro)
	c.SummaryTitle = Plain(c.SummaryTitle)
	c.NextTitle = Plain(c.NextTitle)
	c.NextSteps = markupList(c.NextSteps)
	c.ThinkTitle = Plain(c.ThinkTitle)
	c.ThinkIntro = Markup(c.ThinkIntro)
	c.ThinkAbout = markupList(c.ThinkAbout)
	c.ThinkOutro = Markup(c.ThinkOutro)
	c.Questions = Markup(c.Questions)
	c.Tagline = Plain(c.Tagline)
	c.Signoff = Plain(c.Signoff)
	c.Signature = Plain(c.Signature)
	return doc
}

func markupList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item = Markup(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
