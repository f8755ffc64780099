package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// component wraps a render function as a templ component.
func component(render func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(render)
}

// esc escapes a string for HTML text and attribute positions.
func esc(value string) string {
	return templ.EscapeString(value)
}

// el writes a formatted HTML chunk. Arguments must already be escaped.
func el(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
