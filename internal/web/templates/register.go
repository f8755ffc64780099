package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/healing-together/recoveryhub/internal/web/forms"
)

// RegisterView is the registration page state.
type RegisterView struct {
	Form    forms.RegisterForm
	Errors  forms.Errors
	FormErr string
}

// RegisterPage renders the registration form.
func RegisterPage(page PageContext, view RegisterView) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<h2>%s</h2><p class="auth-subtitle">%s</p>`,
			esc(T(page.Loc, "register.title")), esc(T(page.Loc, "register.subtitle"))); err != nil {
			return err
		}
		if view.FormErr != "" {
			if err := el(w, `<div class="form-error" role="alert">%s</div>`,
				esc(T(page.Loc, view.FormErr))); err != nil {
				return err
			}
		}
		if err := el(w, `<form method="post" action="%s" novalidate>`, esc(page.Href("/register"))); err != nil {
			return err
		}
		fields := []fieldView{
			{Name: "name", Type: "text", Label: "register.name", Placeholder: "register.name_placeholder", Value: view.Form.Name, Errors: view.Errors},
			{Name: "email", Type: "email", Label: "login.email", Placeholder: "login.email_placeholder", Value: view.Form.Email, Errors: view.Errors},
			{Name: "password", Type: "password", Label: "login.password", Errors: view.Errors},
			{Name: "confirmPassword", Type: "password", Label: "register.confirm_password", Errors: view.Errors},
		}
		for _, field := range fields {
			if err := renderField(w, page, field); err != nil {
				return err
			}
		}
		checked := ""
		if view.Form.AgreeToTerms {
			checked = " checked"
		}
		agreeInvalid := ""
		if view.Errors.Has("agreeToTerms") {
			agreeInvalid = " is-invalid"
		}
		if err := el(w, `<label class="field-check%s"><input type="checkbox" name="agreeToTerms"%s> %s</label>`,
			agreeInvalid, checked, esc(T(page.Loc, "register.agree"))); err != nil {
			return err
		}
		if view.Errors.Has("agreeToTerms") {
			if err := el(w, `<span class="field-error">%s</span>`,
				esc(T(page.Loc, view.Errors.Key("agreeToTerms")))); err != nil {
				return err
			}
		}
		if err := el(w, `<button type="submit" class="btn-primary">%s</button></form>`,
			esc(T(page.Loc, "register.submit"))); err != nil {
			return err
		}
		return el(w, `<p class="auth-switch">%s <a href="%s">%s</a></p>`,
			esc(T(page.Loc, "register.login_prompt")),
			esc(page.Href("/login")),
			esc(T(page.Loc, "register.login_link")))
	})
	return AuthLayout(page, T(page.Loc, "register.title"), body)
}
