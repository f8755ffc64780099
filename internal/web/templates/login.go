package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/healing-together/recoveryhub/internal/web/forms"
)

// LoginView is the login page state.
type LoginView struct {
	Form     forms.LoginForm
	Errors   forms.Errors
	FormErr  string
	DemoUser string
	DemoPass string
}

// LoginPage renders the login form with field errors and the demo
// credentials box.
func LoginPage(page PageContext, view LoginView) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<h2>%s</h2><p class="auth-subtitle">%s</p>`,
			esc(T(page.Loc, "login.title")), esc(T(page.Loc, "login.subtitle"))); err != nil {
			return err
		}
		if view.FormErr != "" {
			if err := el(w, `<div class="form-error" role="alert">%s</div>`,
				esc(T(page.Loc, view.FormErr))); err != nil {
				return err
			}
		}
		if err := el(w, `<form method="post" action="%s" novalidate>`, esc(page.Href("/login"))); err != nil {
			return err
		}
		if err := renderField(w, page, fieldView{
			Name:        "email",
			Type:        "email",
			Label:       "login.email",
			Placeholder: "login.email_placeholder",
			Value:       view.Form.Email,
			Errors:      view.Errors,
		}); err != nil {
			return err
		}
		if err := renderField(w, page, fieldView{
			Name:        "password",
			Type:        "password",
			Label:       "login.password",
			Placeholder: "login.password_placeholder",
			Errors:      view.Errors,
		}); err != nil {
			return err
		}
		checked := ""
		if view.Form.Remember {
			checked = " checked"
		}
		if err := el(w, `<label class="field-check"><input type="checkbox" name="remember"%s> %s</label>`,
			checked, esc(T(page.Loc, "login.remember_me"))); err != nil {
			return err
		}
		if err := el(w, `<button type="submit" class="btn-primary">%s</button></form>`,
			esc(T(page.Loc, "login.sign_in"))); err != nil {
			return err
		}
		if err := el(w, `<div class="auth-divider">%s</div><form method="post" action="%s"><button type="submit" class="btn-google">%s</button></form>`,
			esc(T(page.Loc, "login.divider")),
			esc(page.Href("/login/google")),
			esc(T(page.Loc, "login.google"))); err != nil {
			return err
		}
		if err := el(w, `<div class="demo-box"><h3>%s</h3><p>%s %s</p><p>%s %s</p></div>`,
			esc(T(page.Loc, "login.demo.admin_title")),
			esc(T(page.Loc, "login.demo.email_label")), esc(view.DemoUser),
			esc(T(page.Loc, "login.demo.password_label")), esc(view.DemoPass)); err != nil {
			return err
		}
		return el(w, `<p class="auth-switch">%s <a href="%s">%s</a></p>`,
			esc(T(page.Loc, "login.signup_prompt")),
			esc(page.Href("/register")),
			esc(T(page.Loc, "login.signup_link")))
	})
	return AuthLayout(page, T(page.Loc, "login.title"), body)
}

type fieldView struct {
	Name        string
	Type        string
	Label       string
	Placeholder string
	Value       string
	Errors      forms.Errors
}

func renderField(w io.Writer, page PageContext, field fieldView) error {
	invalid := ""
	if field.Errors.Has(field.Name) {
		invalid = " is-invalid"
	}
	placeholder := ""
	if field.Placeholder != "" {
		placeholder = ` placeholder="` + esc(T(page.Loc, field.Placeholder)) + `"`
	}
	if err := el(w, `<label class="field%s"><span>%s</span><input type="%s" name="%s" value="%s"%s>`,
		invalid,
		esc(T(page.Loc, field.Label)),
		esc(field.Type),
		esc(field.Name),
		esc(field.Value),
		placeholder); err != nil {
		return err
	}
	if field.Errors.Has(field.Name) {
		if err := el(w, `<span class="field-error">%s</span>`,
			esc(T(page.Loc, field.Errors.Key(field.Name)))); err != nil {
			return err
		}
	}
	return el(w, `</label>`)
}
