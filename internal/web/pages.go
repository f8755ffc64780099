package web

import (
	"log"
	"net/http"

	"github.com/healing-together/recoveryhub/internal/storage"
	"github.com/healing-together/recoveryhub/internal/web/locale"
	"github.com/healing-together/recoveryhub/internal/web/templates"
)

// greetingKey buckets the local hour the way the original dashboard
// greeting does.
func greetingKey(hour int) string {
	switch {
	case hour < 6:
		return "dashboard.greeting.late_night"
	case hour < 12:
		return "dashboard.greeting.morning"
	case hour < 18:
		return "dashboard.greeting.afternoon"
	default:
		return "dashboard.greeting.evening"
	}
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	h.resetFlow(w, r)

	week, err := h.store.ListWeeklyProgress(r.Context())
	if err != nil {
		h.serverError(w, r, code, err)
		return
	}

	now := h.now()
	identity := h.identity(r)
	recoveryDay := 1
	if !identity.JoinedAt.IsZero() && now.After(identity.JoinedAt) {
		recoveryDay = int(now.Sub(identity.JoinedAt).Hours()/24) + 1
	}

	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.DashboardPage(page, templates.DashboardView{
		GreetingKey: greetingKey(now.Hour()),
		UserName:    identity.Name,
		Today:       now.Format("Monday, January 2"),
		RecoveryDay: recoveryDay,
		Week:        week,
	}))
}

func (h *handler) knowledge(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	h.resetFlow(w, r)

	articles, err := h.store.ListArticles(r.Context())
	if err != nil {
		h.serverError(w, r, code, err)
		return
	}

	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = storage.CategoryAll
	}

	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.KnowledgePage(page, templates.KnowledgeView{
		Search:   search,
		Category: category,
		Counts:   storage.CategoryCounts(articles),
		Articles: storage.FilterArticles(articles, search, category),
		Stats:    storage.Stats(articles),
	}))
}

// resetFlow discards the visitor's session flow when they navigate to
// a page outside the session lifecycle.
func (h *handler) resetFlow(_ http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(flowCookie); err == nil {
		h.flows.Reset(cookie.Value)
	}
}

func (h *handler) serverError(w http.ResponseWriter, r *http.Request, code string, err error) {
	log.Printf("load page data: %v", err)
	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusInternalServerError, templates.ErrorPage(page))
}
