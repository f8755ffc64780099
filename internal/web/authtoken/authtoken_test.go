package authtoken

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer([]byte("test-key"))
	identity := Identity{AccountID: "acct-1", Name: "Sarah Chen", InjuryType: "Knee", Role: "admin"}

	signed, err := issuer.Sign(identity)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != identity {
		t.Fatalf("identity = %+v, want %+v", got, identity)
	}
}

func TestSignVerifyCarriesJoinDate(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer([]byte("test-key"))
	joined := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)

	signed, err := issuer.Sign(Identity{AccountID: "acct-1", JoinedAt: joined})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !got.JoinedAt.Equal(joined) {
		t.Fatalf("joined = %v, want %v", got.JoinedAt, joined)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	signed, err := NewIssuer([]byte("key-a")).Sign(Identity{AccountID: "acct-1"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewIssuer([]byte("key-b")).Verify(signed); err == nil {
		t.Fatal("expected verification failure with a different key")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer([]byte("test-key"))
	issued := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	signed, err := issuer.Sign(Identity{AccountID: "acct-1"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issuer.now = func() time.Time { return issued.Add(TokenTTL + time.Minute) }
	if _, err := issuer.Verify(signed); err == nil {
		t.Fatal("expected expiry failure")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer([]byte("test-key"))
	identity := Identity{AccountID: "acct-1", Name: "Sarah Chen"}

	rec := httptest.NewRecorder()
	if err := issuer.SetCookie(rec, identity); err != nil {
		t.Fatalf("set cookie: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	got, err := issuer.FromRequest(req)
	if err != nil {
		t.Fatalf("from request: %v", err)
	}
	if got.AccountID != identity.AccountID || got.Name != identity.Name {
		t.Fatalf("identity = %+v", got)
	}
}

func TestFromRequestWithoutCookie(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer([]byte("test-key"))
	req := httptest.NewRequest(http.MethodGet, "/en/dashboard", nil)
	if _, err := issuer.FromRequest(req); !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
}

func TestClearCookieExpiresSession(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ClearCookie(rec)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].Name != CookieName || cookies[0].MaxAge >= 0 {
		t.Fatalf("cookie = %+v", cookies[0])
	}
}
