package forms

import "testing"

func TestLoginFormValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		form LoginForm
		want map[string]string
	}{
		{
			name: "valid",
			form: LoginForm{Email: "user@example.com", Password: "secret"},
			want: map[string]string{},
		},
		{
			name: "empty form reports every field",
			form: LoginForm{},
			want: map[string]string{
				"email":    "errors.email_required",
				"password": "errors.password_required",
			},
		},
		{
			name: "malformed email",
			form: LoginForm{Email: "not-an-email", Password: "secret"},
			want: map[string]string{"email": "errors.email_invalid"},
		},
		{
			name: "email missing dot",
			form: LoginForm{Email: "user@example", Password: "secret"},
			want: map[string]string{"email": "errors.email_invalid"},
		},
		{
			name: "short password",
			form: LoginForm{Email: "user@example.com", Password: "12345"},
			want: map[string]string{"password": "errors.password_min_length"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.form.Validate()
			assertErrors(t, got, tc.want)
		})
	}
}

func TestRegisterFormValidate(t *testing.T) {
	t.Parallel()

	valid := RegisterForm{
		Name:            "Sarah Chen",
		Email:           "sarah@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AgreeToTerms:    true,
	}

	cases := []struct {
		name   string
		mutate func(form *RegisterForm)
		want   map[string]string
	}{
		{
			name:   "valid",
			mutate: func(form *RegisterForm) {},
			want:   map[string]string{},
		},
		{
			name:   "short password",
			mutate: func(form *RegisterForm) { form.Password = "abc"; form.ConfirmPassword = "abc" },
			want:   map[string]string{"password": "errors.password_min_length"},
		},
		{
			name:   "mismatched confirmation",
			mutate: func(form *RegisterForm) { form.ConfirmPassword = "different" },
			want:   map[string]string{"confirmPassword": "errors.password_mismatch"},
		},
		{
			name:   "terms unchecked",
			mutate: func(form *RegisterForm) { form.AgreeToTerms = false },
			want:   map[string]string{"agreeToTerms": "errors.agree_required"},
		},
		{
			name:   "whitespace-only name",
			mutate: func(form *RegisterForm) { form.Name = "   " },
			want:   map[string]string{"name": "errors.name_required"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			tc.mutate(&form)
			assertErrors(t, form.Validate(), tc.want)
		})
	}
}

func TestRegisterFormEmptyReportsAllFields(t *testing.T) {
	t.Parallel()

	errs := RegisterForm{}.Validate()
	for _, field := range []string{"name", "email", "password", "confirmPassword", "agreeToTerms"} {
		if !errs.Has(field) {
			t.Fatalf("field %q missing from full validation pass: %v", field, errs)
		}
	}
}

func assertErrors(t *testing.T, got Errors, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("errors = %v, want %v", got, want)
	}
	for field, key := range want {
		if got.Key(field) != key {
			t.Fatalf("field %q = %q, want %q", field, got.Key(field), key)
		}
	}
}
