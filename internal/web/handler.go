package web

import (
	"bytes"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/text/message"

	"github.com/healing-together/recoveryhub/internal/platform/i18n"
	"github.com/healing-together/recoveryhub/internal/platform/i18n/catalog"
	"github.com/healing-together/recoveryhub/internal/storage"
	"github.com/healing-together/recoveryhub/internal/web/authmock"
	"github.com/healing-together/recoveryhub/internal/web/authtoken"
	"github.com/healing-together/recoveryhub/internal/web/flash"
	"github.com/healing-together/recoveryhub/internal/web/locale"
	"github.com/healing-together/recoveryhub/internal/web/navigation"
	"github.com/healing-together/recoveryhub/internal/web/observability"
	"github.com/healing-together/recoveryhub/internal/web/sessionflow"
	"github.com/healing-together/recoveryhub/internal/web/static"
	"github.com/healing-together/recoveryhub/internal/web/templates"
)

// flowCookie identifies a visitor's session flow.
const flowCookie = "rh_flow"

// Loading the default bundle registers every embedded message with
// x/text; the printers built per request resolve against it.
var messageBundle = catalog.Default()

// Demo identity shown when no sign-in cookie is present. Matches the
// seeded admin account.
var demoIdentity = authtoken.Identity{
	AccountID:  "acct-admin",
	Name:       "Sarah Chen",
	InjuryType: "Knee",
	Role:       storage.RoleAdmin,
	JoinedAt:   time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
}

type handler struct {
	store   storage.Store
	auth    *authmock.Service
	tokens  *authtoken.Issuer
	flashes *flash.Store
	flows   *sessionflow.Store
	now     func() time.Time
}

func newHandler(config Config, store storage.Store) *handler {
	return &handler{
		store:   store,
		auth:    authmock.NewService(store, config.AuthDelay),
		tokens:  authtoken.NewIssuer([]byte(config.TokenKey)),
		flashes: flash.NewStore([]byte(config.CookieKey)),
		flows:   sessionflow.NewStore(0),
		now:     time.Now,
	}
}

func (h *handler) routes() http.Handler {
	router := mux.NewRouter()
	router.Use(observability.RequestLogger(log.Default()))
	router.Use(locale.Middleware)
	router.NotFoundHandler = http.HandlerFunc(h.notFound)

	router.PathPrefix("/static/").Handler(static.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/", h.root).Methods(http.MethodGet)

	pages := router.PathPrefix("/{locale}").Subrouter()
	pages.HandleFunc("/login", h.loginPage).Methods(http.MethodGet)
	pages.HandleFunc("/login", h.loginSubmit).Methods(http.MethodPost)
	pages.HandleFunc("/login/google", h.loginGoogle).Methods(http.MethodPost)
	pages.HandleFunc("/register", h.registerPage).Methods(http.MethodGet)
	pages.HandleFunc("/register", h.registerSubmit).Methods(http.MethodPost)
	pages.HandleFunc("/logout", h.logout).Methods(http.MethodGet)
	pages.HandleFunc("/dashboard", h.dashboard).Methods(http.MethodGet)
	pages.HandleFunc("/dashboard/knowledge", h.knowledge).Methods(http.MethodGet)
	pages.HandleFunc("/dashboard/session", h.sessionPage).Methods(http.MethodGet)
	pages.HandleFunc("/dashboard/session/select", h.sessionSelect).Methods(http.MethodPost)
	pages.HandleFunc("/dashboard/session/join", h.sessionJoin).Methods(http.MethodPost)
	pages.HandleFunc("/dashboard/session/leave", h.sessionLeave).Methods(http.MethodPost)
	pages.HandleFunc("/dashboard/session/toggle", h.sessionToggle).Methods(http.MethodPost)

	return router
}

// root redirects the bare origin to the signed-in dashboard or the
// login page, always under the default locale.
func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	target := locale.PathWithLocale(i18n.DefaultCode, "/login")
	if _, err := h.tokens.FromRequest(r); err == nil {
		target = locale.PathWithLocale(i18n.DefaultCode, "/dashboard")
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// notFound handles every unrouted path. Paths with an unsupported
// first segment redirect to the default locale; everything else gets
// the localized 404 page.
func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	segments := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	code := segments[0]
	if !i18n.IsSupported(code) {
		trailing := "/"
		if len(segments) == 2 {
			trailing = "/" + segments[1]
		}
		http.Redirect(w, r, locale.PathWithLocale(i18n.DefaultCode, trailing), http.StatusFound)
		return
	}
	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusNotFound, templates.NotFoundPage(page))
}

// identity returns the signed-in identity or the demo fallback.
func (h *handler) identity(r *http.Request) authtoken.Identity {
	identity, err := h.tokens.FromRequest(r)
	if err != nil {
		return demoIdentity
	}
	return identity
}

func (h *handler) printer(code string) *message.Printer {
	tag, ok := i18n.Parse(code)
	if !ok || !messageBundle.HasLocale(code) {
		tag = i18n.DefaultTag()
	}
	return message.NewPrinter(tag)
}

func (h *handler) pageContext(w http.ResponseWriter, r *http.Request, code string) templates.PageContext {
	identity := h.identity(r)
	return templates.PageContext{
		Lang:        code,
		Loc:         h.printer(code),
		CurrentPath: r.URL.Path,
		UserName:    identity.Name,
		InjuryType:  identity.InjuryType,
		Nav:         navigation.Resolve(code, r.URL.Path),
		Notices:     h.flashes.Pop(w, r),
	}
}

// render buffers the component so a mid-render failure can still
// produce a clean error response.
func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, comp templ.Component) {
	var buf bytes.Buffer
	if err := comp.Render(r.Context(), &buf); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// flowID returns the visitor's flow cookie, minting one when absent.
func (h *handler) flowID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(flowCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     flowCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// redirect sends the visitor to a locale-prefixed path.
func (h *handler) redirect(w http.ResponseWriter, r *http.Request, code, path string) {
	http.Redirect(w, r, locale.PathWithLocale(code, path), http.StatusSeeOther)
}
