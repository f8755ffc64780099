package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func newTestRouter(t *testing.T, seen *string) *mux.Router {
	t.Helper()
	router := mux.NewRouter()
	router.Use(Middleware)
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		*seen = "root"
	})
	router.HandleFunc("/{locale}/dashboard", func(w http.ResponseWriter, r *http.Request) {
		*seen = FromContext(r.Context())
	})
	return router
}

func TestMiddlewarePassesSupportedLocale(t *testing.T) {
	t.Parallel()

	var seen string
	router := newTestRouter(t, &seen)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/de/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if seen != "de" {
		t.Fatalf("resolved locale = %q, want de", seen)
	}
}

func TestMiddlewareRedirectsUnsupportedLocale(t *testing.T) {
	t.Parallel()

	var seen string
	router := newTestRouter(t, &seen)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/xx/dashboard", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/en/dashboard" {
		t.Fatalf("location = %q, want /en/dashboard", got)
	}
	if seen != "" {
		t.Fatal("handler must not run on redirect")
	}
}

func TestMiddlewareKeepsQueryOnRedirect(t *testing.T) {
	t.Parallel()

	var seen string
	router := newTestRouter(t, &seen)
	router.HandleFunc("/{locale}/dashboard/knowledge", func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/xx/dashboard/knowledge?search=knee", nil))

	if got := rec.Header().Get("Location"); got != "/en/dashboard/knowledge?search=knee" {
		t.Fatalf("location = %q", got)
	}
}

func TestMiddlewareLeavesRootAlone(t *testing.T) {
	t.Parallel()

	var seen string
	router := newTestRouter(t, &seen)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if seen != "root" {
		t.Fatal("root handler must run without locale handling")
	}
}

func TestPathWithLocale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		path string
		want string
	}{
		{code: "en", path: "/dashboard", want: "/en/dashboard"},
		{code: "ja", path: "dashboard/session", want: "/ja/dashboard/session"},
		{code: "de", path: "/", want: "/de"},
	}
	for _, tc := range cases {
		if got := PathWithLocale(tc.code, tc.path); got != tc.want {
			t.Fatalf("PathWithLocale(%q, %q) = %q, want %q", tc.code, tc.path, got, tc.want)
		}
	}
}

func TestSwitchLocale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		from string
		to   string
		want string
	}{
		{path: "/en/dashboard", from: "en", to: "ja", want: "/ja/dashboard"},
		{path: "/en", from: "en", to: "de", want: "/de"},
		{path: "/en/dashboard/session", from: "en", to: "vi", want: "/vi/dashboard/session"},
		{path: "/dashboard", from: "en", to: "fr", want: "/fr/dashboard"},
	}
	for _, tc := range cases {
		if got := SwitchLocale(tc.path, tc.from, tc.to); got != tc.want {
			t.Fatalf("SwitchLocale(%q, %q, %q) = %q, want %q", tc.path, tc.from, tc.to, got, tc.want)
		}
	}
}
