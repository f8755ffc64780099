package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAddPopRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore([]byte("test-signing-key"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/en/register", nil)
	if err := store.Add(rec, req, Notice{Kind: KindSuccess, Key: "register.success"}); err != nil {
		t.Fatalf("add flash: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/en/login", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	notices := store.Pop(httptest.NewRecorder(), next)
	if len(notices) != 1 {
		t.Fatalf("popped %d notices, want 1", len(notices))
	}
	if notices[0].Kind != KindSuccess || notices[0].Key != "register.success" {
		t.Fatalf("notice = %+v", notices[0])
	}
}

func TestPopWithoutCookieIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewStore([]byte("test-signing-key"))
	req := httptest.NewRequest(http.MethodGet, "/en/login", nil)
	if notices := store.Pop(httptest.NewRecorder(), req); len(notices) != 0 {
		t.Fatalf("expected no notices, got %v", notices)
	}
}

func TestPopClearsNotices(t *testing.T) {
	t.Parallel()

	store := NewStore([]byte("test-signing-key"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/en/register", nil)
	if err := store.Add(rec, req, Notice{Kind: KindError, Key: "errors.generic"}); err != nil {
		t.Fatalf("add flash: %v", err)
	}

	carrier := httptest.NewRequest(http.MethodGet, "/en/login", nil)
	for _, cookie := range rec.Result().Cookies() {
		carrier.AddCookie(cookie)
	}
	clearRec := httptest.NewRecorder()
	if notices := store.Pop(clearRec, carrier); len(notices) != 1 {
		t.Fatalf("first pop returned %d notices", len(notices))
	}

	again := httptest.NewRequest(http.MethodGet, "/en/login", nil)
	for _, cookie := range clearRec.Result().Cookies() {
		again.AddCookie(cookie)
	}
	if notices := store.Pop(httptest.NewRecorder(), again); len(notices) != 0 {
		t.Fatalf("second pop returned %v, want none", notices)
	}
}
