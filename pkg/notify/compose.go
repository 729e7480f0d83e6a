package notify

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/language"

	"github.com/goliatone/go-brief/pkg/branding"
	"github.com/goliatone/go-brief/pkg/catalog"
	"github.com/goliatone/go-brief/pkg/i18n"
	"github.com/goliatone/go-brief/pkg/mailtemplate"
	"github.com/goliatone/go-brief/pkg/model"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	templateInternal         = "internal.txt.tpl"
	templateConfirmationText = "confirmation.txt.tpl"
	templateConfirmationHTML = "confirmation.html.tpl"
)

// Templates returns the embedded email templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Message is one outbound email. Header fields are already sanitized.
type Message struct {
	From    string
	To      []string
	ReplyTo []string
	Subject string
	Text    string
	HTML    string
}

// Envelope carries the per-dispatch settings the composer needs.
type Envelope struct {
	Config    Config
	Lang      language.Tag
	Extended  bool
	Reference string
}

// Composer renders the two notification emails.
type Composer struct {
	renderer mailtemplate.TemplateRenderer
	catalogs *catalog.Store
	brand    *branding.Selector
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithRenderer overrides the template renderer.
func WithRenderer(r mailtemplate.TemplateRenderer) ComposerOption {
	return func(c *Composer) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithCatalogs overrides the copy catalogs.
func WithCatalogs(store *catalog.Store) ComposerOption {
	return func(c *Composer) {
		if store != nil {
			c.catalogs = store
		}
	}
}

// WithBranding overrides the theme selector.
func WithBranding(sel *branding.Selector) ComposerOption {
	return func(c *Composer) {
		if sel != nil {
			c.brand = sel
		}
	}
}

// NewComposer builds a Composer over the embedded templates, the embedded
// catalogs and the built-in brand manifest unless overridden.
func NewComposer(opts ...ComposerOption) (*Composer, error) {
	c := &Composer{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.renderer == nil {
		engine, err := mailtemplate.New(
			mailtemplate.WithFS(Templates()),
			mailtemplate.WithCompactOutput(true),
		)
		if err != nil {
			return nil, fmt.Errorf("notify: template engine: %w", err)
		}
		c.renderer = engine
	}
	if c.catalogs == nil {
		store, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("notify: catalogs: %w", err)
		}
		c.catalogs = store
	}
	if c.brand == nil {
		sel, err := branding.NewSelector(branding.DefaultManifest())
		if err != nil {
			return nil, fmt.Errorf("notify: branding: %w", err)
		}
		c.brand = sel
	}
	return c, nil
}

// Internal composes the operator notification. The body uses the raw
// values; only the headers are sanitized.
func (c *Composer) Internal(values model.FormValues, env Envelope) (Message, error) {
	cat := c.catalogs.Lookup(env.Lang)
	printer := i18n.Printer(env.Lang)

	company := SanitizeHeader(values.Company)
	if company == "" {
		company = printer.Sprintf(i18n.KeyPrivateCompany)
	}
	subject := printer.Sprintf(i18n.KeyInternalSubject, SanitizeHeader(values.Name), company)

	body, err := c.renderer.RenderTemplate(templateInternal, map[string]any{
		"labels":    cat.Labels,
		"v":         valuesContext(values),
		"extended":  env.Extended,
		"reference": env.Reference,
		"site":      cat.Site,
	})
	if err != nil {
		return Message{}, fmt.Errorf("notify: render internal: %w", err)
	}

	return Message{
		From:    SanitizeHeader(env.Config.FromAddress),
		To:      []string{SanitizeHeader(env.Config.ToAddress)},
		ReplyTo: []string{SanitizeHeader(values.Email)},
		Subject: subject,
		Text:    strings.TrimSpace(body) + "\n",
	}, nil
}

// Confirmation composes the customer acknowledgement with an HTML part and a
// plaintext fallback.
func (c *Composer) Confirmation(values model.FormValues, env Envelope) (Message, error) {
	cat := c.catalogs.Lookup(env.Lang)
	printer := i18n.Printer(env.Lang)
	subject := printer.Sprintf(i18n.KeyConfirmationSubject)
	from := SanitizeHeader(env.Config.FromAddress)
	lang, _ := env.Lang.Base()

	textData := c.confirmationData(values, cat, from, false)
	textData["lang"] = lang.String()
	text, err := c.renderer.RenderTemplate(templateConfirmationText, textData)
	if err != nil {
		return Message{}, fmt.Errorf("notify: render confirmation text: %w", err)
	}

	htmlData := c.confirmationData(values, cat, from, true)
	htmlData["lang"] = lang.String()
	htmlData["subject"] = EscapeHTML(subject)
	htmlData["tokens"] = c.brand.Resolve(env.Config.Theme, env.Config.ThemeVariant)
	html, err := c.renderer.RenderTemplate(templateConfirmationHTML, htmlData)
	if err != nil {
		return Message{}, fmt.Errorf("notify: render confirmation html: %w", err)
	}

	return Message{
		From:    from,
		To:      []string{SanitizeHeader(values.Email)},
		ReplyTo: []string{from},
		Subject: subject,
		Text:    strings.TrimSpace(text) + "\n",
		HTML:    strings.TrimSpace(html) + "\n",
	}, nil
}

// valuesContext exposes values to templates under their JSON keys.
func valuesContext(values model.FormValues) map[string]any {
	out := map[string]any{}
	b, err := json.Marshal(values.Normalize())
	if err != nil {
		return out
	}
	_ = json.Unmarshal(b, &out)
	return out
}

func summaryRow(label, value string) map[string]string {
	return map[string]string{"label": label, "value": value}
}

// confirmationData builds the template context. With html set, customer
// values are escaped and catalog copy keeps its sanitized markup; without
// it, markup is stripped and values pass through untouched.
func (c *Composer) confirmationData(values model.FormValues, cat catalog.Catalog, contact string, html bool) map[string]any {
	out := func(s string) string {
		if html {
			return EscapeHTML(s)
		}
		return s
	}
	copyText := func(s string) string {
		if html {
			return s
		}
		return catalog.Plain(s)
	}
	copyList := func(items []string) []string {
		list := make([]string, 0, len(items))
		for _, item := range items {
			list = append(list, copyText(item))
		}
		return list
	}

	notSpecified := cat.Label("not_specified")
	orNotSpecified := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return notSpecified
		}
		return out(strings.TrimSpace(s))
	}

	greetingTmpl := cat.Confirmation.GreetingPlain
	if html {
		greetingTmpl = cat.Confirmation.Greeting
	}
	greeting := strings.ReplaceAll(copyText(greetingTmpl), "{name}", out(strings.TrimSpace(values.Name)))

	conf := cat.Confirmation
	return map[string]any{
		"brand":    cat.Brand,
		"site":     cat.Site,
		"contact":  out(contact),
		"greeting": greeting,
		"copy": map[string]string{
			"intro":         copyText(conf.Intro),
			"summary_title": copyText(conf.SummaryTitle),
			"next_title":    copyText(conf.NextTitle),
			"think_title":   copyText(conf.ThinkTitle),
			"think_intro":   copyText(conf.ThinkIntro),
			"think_outro":   copyText(conf.ThinkOutro),
			"questions":     copyText(conf.Questions),
			"tagline":       copyText(conf.Tagline),
			"signoff":       copyText(conf.Signoff),
			"signature":     copyText(conf.Signature),
		},
		"summary": []map[string]string{
			summaryRow(cat.Label("projectType"), orNotSpecified(strings.Join(values.Normalize().ProjectType, ", "))),
			summaryRow(cat.Label("deadline"), orNotSpecified(values.Deadline)),
			summaryRow(cat.Label("description"), orNotSpecified(values.Description)),
		},
		"next_steps":  copyList(conf.NextSteps),
		"think_about": copyList(conf.ThinkAbout),
	}
}
