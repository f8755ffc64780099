package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func htmlOpen(w io.Writer, page PageContext, title string) error {
	return el(w, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - %s</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>`, esc(page.Lang), esc(title), esc(T(page.Loc, "core.app_name")))
}

func htmlClose(w io.Writer) error {
	return el(w, `</body></html>`)
}

// AuthLayout is the centered single-card layout of the login and
// registration pages.
func AuthLayout(page PageContext, title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := htmlOpen(w, page, title); err != nil {
			return err
		}
		if err := el(w, `<main class="auth-shell"><div class="auth-card"><h1 class="auth-brand">%s</h1><p class="auth-tagline">%s</p>`,
			esc(T(page.Loc, "core.app_name")), esc(T(page.Loc, "core.tagline"))); err != nil {
			return err
		}
		if err := renderNotices(w, page); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if err := el(w, `</div></main>`); err != nil {
			return err
		}
		return htmlClose(w)
	})
}

// AppLayout is the signed-in shell: sidebar plus main content column.
func AppLayout(page PageContext, title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := htmlOpen(w, page, title); err != nil {
			return err
		}
		if err := el(w, `<div class="app-shell">`); err != nil {
			return err
		}
		if err := Sidebar(page).Render(ctx, w); err != nil {
			return err
		}
		if err := el(w, `<main class="app-main">`); err != nil {
			return err
		}
		if err := renderNotices(w, page); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if err := el(w, `</main></div>`); err != nil {
			return err
		}
		return htmlClose(w)
	})
}

func renderNotices(w io.Writer, page PageContext) error {
	for _, notice := range page.Notices {
		if err := el(w, `<div class="notice notice-%s" role="status">%s</div>`,
			esc(notice.Kind), esc(T(page.Loc, notice.Key))); err != nil {
			return err
		}
	}
	return nil
}
