// Package flash carries one-shot notices across redirects, backed by a
// signed session cookie.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "rh_flash"

// Notice is one pending message. Key is a catalog message key; Kind
// selects the banner style.
type Notice struct {
	Kind string
	Key  string
}

// Notice kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

func init() {
	gob.Register(Notice{})
}

// Store reads and writes flash notices.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a flash store signed with the given key.
func NewStore(key []byte) *Store {
	cookies := sessions.NewCookieStore(key)
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}
}

// Add queues a notice for the next rendered page.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, notice Notice) error {
	session, err := s.cookies.Get(r, sessionName)
	if err != nil {
		// A tampered cookie decodes to a fresh session; keep going.
		session, _ = s.cookies.New(r, sessionName)
	}
	session.AddFlash(notice)
	return session.Save(r, w)
}

// Pop returns all queued notices and clears them.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []Notice {
	session, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w)
	notices := make([]Notice, 0, len(raw))
	for _, value := range raw {
		if notice, ok := value.(Notice); ok {
			notices = append(notices, notice)
		}
	}
	return notices
}
