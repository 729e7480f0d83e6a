// Package mailtemplate renders email bodies from pongo2 templates loaded from
// an fs.FS or a directory on disk.
package mailtemplate

import "io"

// TemplateRenderer is the seam the notification composer renders through.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
