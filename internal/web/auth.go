package web

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/healing-together/recoveryhub/internal/web/authmock"
	"github.com/healing-together/recoveryhub/internal/web/authtoken"
	"github.com/healing-together/recoveryhub/internal/web/flash"
	"github.com/healing-together/recoveryhub/internal/web/forms"
	"github.com/healing-together/recoveryhub/internal/web/locale"
	"github.com/healing-together/recoveryhub/internal/web/templates"
)

func (h *handler) loginPage(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.LoginPage(page, h.loginView(forms.LoginForm{}, nil, "")))
}

func (h *handler) loginView(form forms.LoginForm, errs forms.Errors, formErr string) templates.LoginView {
	return templates.LoginView{
		Form:     form,
		Errors:   errs,
		FormErr:  formErr,
		DemoUser: "admin@healing-together.com",
		DemoPass: "admin123",
	}
}

func (h *handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := forms.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Remember: r.PostFormValue("remember") != "",
	}
	if errs := form.Validate(); len(errs) > 0 {
		page := h.pageContext(w, r, code)
		h.render(w, r, http.StatusOK, templates.LoginPage(page, h.loginView(form, errs, "")))
		return
	}

	result, err := h.auth.Authenticate(r.Context(), form.Email, form.Password)
	if err != nil {
		h.loginFailure(w, r, code, form, err)
		return
	}
	h.signIn(w, r, code, result)
}

func (h *handler) loginGoogle(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	result, err := h.auth.AuthenticateGoogle(r.Context())
	if err != nil {
		h.loginFailure(w, r, code, forms.LoginForm{}, err)
		return
	}
	h.signIn(w, r, code, result)
}

func (h *handler) loginFailure(w http.ResponseWriter, r *http.Request, code string, form forms.LoginForm, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	formErr := "errors.generic"
	if errors.Is(err, authmock.ErrInvalidCredentials) {
		formErr = "errors.invalid_credentials"
	} else {
		log.Printf("authenticate: %v", err)
	}
	form.Password = ""
	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.LoginPage(page, h.loginView(form, nil, formErr)))
}

func (h *handler) signIn(w http.ResponseWriter, r *http.Request, code string, result authmock.Result) {
	identity := authtoken.Identity{
		AccountID:  result.Account.ID,
		Name:       result.Account.Name,
		InjuryType: result.Account.InjuryType,
		Role:       result.Account.Role,
		JoinedAt:   result.Account.JoinedAt,
	}
	if err := h.tokens.SetCookie(w, identity); err != nil {
		log.Printf("set sign-in cookie: %v", err)
		page := h.pageContext(w, r, code)
		h.render(w, r, http.StatusInternalServerError, templates.ErrorPage(page))
		return
	}
	h.redirect(w, r, code, result.RedirectTo)
}

func (h *handler) registerPage(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.RegisterPage(page, templates.RegisterView{}))
}

func (h *handler) registerSubmit(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := forms.RegisterForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
		AgreeToTerms:    r.PostFormValue("agreeToTerms") != "",
	}
	if errs := form.Validate(); len(errs) > 0 {
		page := h.pageContext(w, r, code)
		h.render(w, r, http.StatusOK, templates.RegisterPage(page, templates.RegisterView{Form: form, Errors: errs}))
		return
	}

	result, err := h.auth.RegisterAccount(r.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		formErr := "errors.generic"
		if errors.Is(err, authmock.ErrEmailTaken) {
			formErr = "errors.email_taken"
		} else {
			log.Printf("register account: %v", err)
		}
		form.Password = ""
		form.ConfirmPassword = ""
		page := h.pageContext(w, r, code)
		h.render(w, r, http.StatusOK, templates.RegisterPage(page, templates.RegisterView{Form: form, FormErr: formErr}))
		return
	}

	if err := h.flashes.Add(w, r, flash.Notice{Kind: flash.KindSuccess, Key: "register.success"}); err != nil {
		log.Printf("queue flash: %v", err)
	}
	h.redirect(w, r, code, result.RedirectTo)
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	authtoken.ClearCookie(w)
	if cookie, err := r.Cookie(flowCookie); err == nil {
		h.flows.Reset(cookie.Value)
	}
	h.redirect(w, r, code, "/login")
}
