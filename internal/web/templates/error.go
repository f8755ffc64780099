package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// NotFoundPage renders the localized 404 page inside the app shell.
func NotFoundPage(page PageContext) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		return el(w, `<div class="error-page"><h1>%s</h1><p>%s</p><a class="btn-primary" href="%s">%s</a></div>`,
			esc(T(page.Loc, "core.not_found.title")),
			esc(T(page.Loc, "core.not_found.message")),
			esc(page.Href("/dashboard")),
			esc(T(page.Loc, "core.back_home")))
	})
	return AppLayout(page, T(page.Loc, "core.not_found.title"), body)
}

// ErrorPage renders the generic failure page.
func ErrorPage(page PageContext) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		return el(w, `<div class="error-page"><h1>%s</h1><a class="btn-primary" href="%s">%s</a></div>`,
			esc(T(page.Loc, "errors.generic")),
			esc(page.Href("/dashboard")),
			esc(T(page.Loc, "core.back_home")))
	})
	return AppLayout(page, T(page.Loc, "errors.generic"), body)
}
