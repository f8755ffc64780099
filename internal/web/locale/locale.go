// Package locale resolves the locale path prefix of dashboard URLs.
//
// Every page lives under /{locale}/...; requests with an unsupported
// prefix are redirected to the same path under the default locale. The
// bare root path is not part of the scheme and is handled by its own
// handler.
package locale

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/healing-together/recoveryhub/internal/platform/i18n"
)

type contextKey struct{}

// Var is the mux path variable holding the locale prefix.
const Var = "locale"

// FromContext returns the locale code resolved by Middleware, or the
// default locale when none was resolved.
func FromContext(ctx context.Context) string {
	if code, ok := ctx.Value(contextKey{}).(string); ok {
		return code
	}
	return i18n.DefaultCode
}

// NewContext returns ctx carrying the given locale code.
func NewContext(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, contextKey{}, code)
}

// Middleware validates the {locale} path variable. Supported locales are
// stored in the request context; anything else is redirected to the same
// trailing path under the default locale. Requests without a locale
// variable (the root and static assets) pass through untouched.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code, ok := mux.Vars(r)[Var]
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if !i18n.IsSupported(code) {
			http.Redirect(w, r, redirectTarget(r.URL.Path, code, r.URL.RawQuery), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), code)))
	})
}

// redirectTarget swaps an unsupported prefix for the default locale,
// keeping the trailing path and query string.
func redirectTarget(path, badPrefix, rawQuery string) string {
	trailing := strings.TrimPrefix(path, "/"+badPrefix)
	target := PathWithLocale(i18n.DefaultCode, trailing)
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// PathWithLocale prefixes a bare path with a locale segment.
func PathWithLocale(code, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path == "/" {
		return "/" + code
	}
	return "/" + code + path
}

// SwitchLocale rewrites the locale prefix of currentPath from one locale
// to another, for the language switcher. Paths without the expected
// prefix are prefixed as-is.
func SwitchLocale(currentPath, from, to string) string {
	prefix := "/" + from
	if currentPath == prefix {
		return "/" + to
	}
	if strings.HasPrefix(currentPath, prefix+"/") {
		return "/" + to + strings.TrimPrefix(currentPath, prefix)
	}
	return PathWithLocale(to, currentPath)
}
