package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/healing-together/recoveryhub/internal/platform/i18n"
	"github.com/healing-together/recoveryhub/internal/web/locale"
	"github.com/healing-together/recoveryhub/internal/web/navigation"
)

// Sidebar renders the navigation column: brand, entry tree, weekly
// mission card, language switcher and the user footer.
func Sidebar(page PageContext) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<nav class="sidebar"><div class="sidebar-brand">%s</div><ul class="sidebar-nav">`,
			esc(T(page.Loc, "core.app_name"))); err != nil {
			return err
		}
		for _, entry := range navigation.Entries() {
			if err := renderEntry(w, page, entry); err != nil {
				return err
			}
		}
		if err := el(w, `</ul>`); err != nil {
			return err
		}
		if err := renderMissionCard(w, page); err != nil {
			return err
		}
		if err := renderLanguageSwitcher(w, page); err != nil {
			return err
		}
		return renderUserFooter(w, page)
	})
}

func renderEntry(w io.Writer, page PageContext, entry navigation.Entry) error {
	active := ""
	if page.Nav.IsActive(entry.Key) {
		active = " is-active"
	}
	label := esc(T(page.Loc, "core.nav."+entry.Key))
	if len(entry.Children) == 0 {
		return el(w, `<li><a class="nav-link%s" href="%s">%s</a></li>`,
			active, esc(page.Href(entry.Path)), label)
	}

	expanded := ""
	if page.Nav.IsExpanded(entry.Key) {
		expanded = " is-expanded"
	}
	if err := el(w, `<li class="nav-branch%s"><span class="nav-link%s">%s</span><ul class="nav-children">`,
		expanded, active, label); err != nil {
		return err
	}
	for _, child := range entry.Children {
		childActive := ""
		if page.Nav.IsActive(child.Key) {
			childActive = " is-active"
		}
		if err := el(w, `<li><a class="nav-link%s" href="%s">%s</a></li>`,
			childActive, esc(page.Href(child.Path)), esc(T(page.Loc, "core.nav."+child.Key))); err != nil {
			return err
		}
	}
	return el(w, `</ul></li>`)
}

// Weekly mission card numbers are part of the demo chrome, not stored
// state.
const (
	missionPercent = 65
	missionsDone   = 2
	missionsTotal  = 3
	streakDays     = 5
)

func renderMissionCard(w io.Writer, page PageContext) error {
	return el(w, `<div class="mission-card"><h3>%s</h3><p>%s</p><div class="mission-bar"><div class="mission-fill" style="width: %d%%"></div></div><p class="mission-percent">%s</p><p>%s</p><p>%s</p></div>`,
		esc(T(page.Loc, "core.progress.title")),
		esc(T(page.Loc, "core.progress.description")),
		missionPercent,
		esc(T(page.Loc, "core.progress.percent", missionPercent)),
		esc(T(page.Loc, "core.progress.missions", missionsDone, missionsTotal)),
		esc(T(page.Loc, "core.progress.streak", streakDays)))
}

func renderLanguageSwitcher(w io.Writer, page PageContext) error {
	if err := el(w, `<div class="lang-switcher"><span class="lang-label">%s</span><ul>`,
		esc(T(page.Loc, "core.lang.select"))); err != nil {
		return err
	}
	for _, lang := range i18n.Languages() {
		active := ""
		if lang.Code == page.Lang {
			active = " is-active"
		}
		href := locale.SwitchLocale(page.CurrentPath, page.Lang, lang.Code)
		if err := el(w, `<li><a class="lang-option%s" href="%s">%s %s</a></li>`,
			active, esc(href), lang.Flag, esc(T(page.Loc, "core.lang."+lang.Code))); err != nil {
			return err
		}
	}
	return el(w, `</ul></div>`)
}

func renderUserFooter(w io.Writer, page PageContext) error {
	return el(w, `<div class="sidebar-user"><span class="user-name">%s</span><span class="user-injury">%s</span><a class="user-logout" href="%s">%s</a></div></nav>`,
		esc(page.UserName),
		esc(page.InjuryType),
		esc(page.Href("/logout")),
		esc(T(page.Loc, "core.logout")))
}
