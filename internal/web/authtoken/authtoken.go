// Package authtoken issues and reads the signed sign-in cookie. The
// token is an HS256 JWT carrying the account identity shown in the
// dashboard chrome; pages that cannot read one fall back to demo
// content, there is no enforcement.
package authtoken

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the sign-in cookie.
const CookieName = "rh_session"

// TokenTTL is how long a sign-in token stays valid.
const TokenTTL = 24 * time.Hour

// ErrNoToken reports a request without a valid sign-in cookie.
var ErrNoToken = errors.New("no sign-in token")

// Identity is the account payload carried by the token.
type Identity struct {
	AccountID  string
	Name       string
	InjuryType string
	Role       string
	JoinedAt   time.Time
}

type claims struct {
	Name       string `json:"name"`
	InjuryType string `json:"injury_type"`
	Role       string `json:"role"`
	JoinedAt   int64  `json:"joined_at,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies sign-in tokens with a shared HMAC key.
type Issuer struct {
	key []byte
	now func() time.Time
}

// NewIssuer creates an issuer for the given signing key.
func NewIssuer(key []byte) *Issuer {
	return &Issuer{key: key, now: time.Now}
}

// Sign returns a signed token for the identity.
func (i *Issuer) Sign(identity Identity) (string, error) {
	now := i.now().UTC()
	var joined int64
	if !identity.JoinedAt.IsZero() {
		joined = identity.JoinedAt.UTC().Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:       identity.Name,
		InjuryType: identity.InjuryType,
		Role:       identity.Role,
		JoinedAt:   joined,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	})
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a signed token and returns the identity it carries.
func (i *Issuer) Verify(raw string) (Identity, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.key, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}
	identity := Identity{
		AccountID:  parsed.Subject,
		Name:       parsed.Name,
		InjuryType: parsed.InjuryType,
		Role:       parsed.Role,
	}
	if parsed.JoinedAt != 0 {
		identity.JoinedAt = time.Unix(parsed.JoinedAt, 0).UTC()
	}
	return identity, nil
}

// SetCookie writes the sign-in cookie for the identity.
func (i *Issuer) SetCookie(w http.ResponseWriter, identity Identity) error {
	signed, err := i.Sign(identity)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie removes the sign-in cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest reads and verifies the sign-in cookie of a request.
func (i *Issuer) FromRequest(r *http.Request) (Identity, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Identity{}, ErrNoToken
	}
	identity, err := i.Verify(cookie.Value)
	if err != nil {
		return Identity{}, ErrNoToken
	}
	return identity, nil
}
