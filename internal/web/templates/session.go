package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// GroupCard is one rendered listing entry.
type GroupCard struct {
	ID                string
	Title             string
	ExerciseType      string
	Category          string
	StartLabel        string
	ParticipantsLabel string
}

// SessionListingView is the group listing state.
type SessionListingView struct {
	Pinned []GroupCard
	Others []GroupCard
}

// SessionListingPage renders the pinned section followed by all
// remaining sessions.
func SessionListingPage(page PageContext, view SessionListingView) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<header class="page-header"><h1>%s</h1><p>%s</p></header>`,
			esc(T(page.Loc, "session.title")),
			esc(T(page.Loc, "session.subtitle"))); err != nil {
			return err
		}
		if len(view.Pinned) > 0 {
			if err := el(w, `<section class="session-pinned"><h2>%s</h2><p>%s</p>`,
				esc(T(page.Loc, "session.recommended.title")),
				esc(T(page.Loc, "session.recommended.tagline"))); err != nil {
				return err
			}
			if err := renderGroupCards(w, page, view.Pinned); err != nil {
				return err
			}
			if err := el(w, `</section>`); err != nil {
				return err
			}
		}
		if err := el(w, `<section class="session-all"><h2>%s</h2>`,
			esc(T(page.Loc, "session.all.title"))); err != nil {
			return err
		}
		if err := renderGroupCards(w, page, view.Others); err != nil {
			return err
		}
		return el(w, `</section>`)
	})
	return AppLayout(page, T(page.Loc, "session.title"), body)
}

func renderGroupCards(w io.Writer, page PageContext, cards []GroupCard) error {
	if err := el(w, `<ul class="group-list">`); err != nil {
		return err
	}
	for _, card := range cards {
		if err := el(w, `<li class="group-card"><h3>%s</h3><p class="group-meta">%s · %s</p><p class="group-start">%s</p><p class="group-participants">%s</p><form method="post" action="%s"><input type="hidden" name="group" value="%s"><button type="submit" class="btn-primary">%s</button></form></li>`,
			esc(card.Title),
			esc(card.ExerciseType),
			esc(card.Category),
			esc(card.StartLabel),
			esc(card.ParticipantsLabel),
			esc(page.Href("/dashboard/session/select")),
			esc(card.ID),
			esc(T(page.Loc, "session.join"))); err != nil {
			return err
		}
	}
	return el(w, `</ul>`)
}

// RosterEntry is one waiting-room participant row.
type RosterEntry struct {
	Name       string
	InjuryType string
	Online     bool
	IsSelf     bool
}

// WaitingRoomView is the waiting-room state.
type WaitingRoomView struct {
	Title      string
	StartLabel string
	Roster     []RosterEntry
	MicOn      bool
	CameraOn   bool
}

// WaitingRoomPage renders the pre-session lobby with the roster and
// device toggles.
func WaitingRoomPage(page PageContext, view WaitingRoomView) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<header class="page-header"><h1>%s</h1><p>%s</p></header>`,
			esc(T(page.Loc, "session.waiting.title")),
			esc(view.Title)); err != nil {
			return err
		}
		if err := el(w, `<p class="waiting-notice">%s</p><p class="waiting-start">%s</p><p class="waiting-hint">%s</p>`,
			esc(T(page.Loc, "session.waiting.notice")),
			esc(view.StartLabel),
			esc(T(page.Loc, "session.waiting.hint"))); err != nil {
			return err
		}
		if err := el(w, `<section class="waiting-roster"><h2>%s</h2><ul>`,
			esc(T(page.Loc, "session.waiting.participants", len(view.Roster)))); err != nil {
			return err
		}
		for _, entry := range view.Roster {
			presenceKey := "core.offline"
			if entry.Online {
				presenceKey = "core.online"
			}
			name := esc(entry.Name)
			if entry.IsSelf {
				name += " (" + esc(T(page.Loc, "session.waiting.you")) + ")"
			}
			if err := el(w, `<li class="roster-entry"><span class="roster-avatar">%s</span><span class="roster-name">%s</span><span class="roster-injury">%s</span><span class="roster-presence">%s</span></li>`,
				esc(initials(entry.Name)), name, esc(entry.InjuryType), esc(T(page.Loc, presenceKey))); err != nil {
				return err
			}
		}
		if err := el(w, `</ul></section>`); err != nil {
			return err
		}
		if err := renderToggleControls(w, page, view.MicOn, view.CameraOn); err != nil {
			return err
		}
		return el(w, `<div class="waiting-actions"><form method="post" action="%s"><button type="submit" class="btn-primary">%s</button></form><form method="post" action="%s"><button type="submit" class="btn-secondary">%s</button></form></div>`,
			esc(page.Href("/dashboard/session/join")),
			esc(T(page.Loc, "session.waiting.join")),
			esc(page.Href("/dashboard/session/leave")),
			esc(T(page.Loc, "session.waiting.leave")))
	})
	return AppLayout(page, T(page.Loc, "session.waiting.title"), body)
}

// ActiveSessionView is the live session state.
type ActiveSessionView struct {
	Title            string
	ParticipantCount int
	MicOn            bool
	CameraOn         bool
}

// ActiveSessionPage renders the live session room.
func ActiveSessionPage(page PageContext, view ActiveSessionView) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := el(w, `<header class="page-header"><h1>%s</h1><span class="live-badge">%s</span><p>%s</p></header>`,
			esc(view.Title),
			esc(T(page.Loc, "session.room.live")),
			esc(T(page.Loc, "session.room.participants", view.ParticipantCount))); err != nil {
			return err
		}
		if err := renderToggleControls(w, page, view.MicOn, view.CameraOn); err != nil {
			return err
		}
		return el(w, `<form method="post" action="%s"><button type="submit" class="btn-danger">%s</button></form>`,
			esc(page.Href("/dashboard/session/leave")),
			esc(T(page.Loc, "session.room.leave")))
	})
	return AppLayout(page, view.Title, body)
}

func renderToggleControls(w io.Writer, page PageContext, micOn, cameraOn bool) error {
	micState := "off"
	if micOn {
		micState = "on"
	}
	cameraState := "off"
	if cameraOn {
		cameraState = "on"
	}
	return el(w, `<div class="device-toggles"><form method="post" action="%s"><input type="hidden" name="device" value="mic"><button type="submit" class="toggle toggle-%s" aria-label="%s">%s</button></form><form method="post" action="%s"><input type="hidden" name="device" value="camera"><button type="submit" class="toggle toggle-%s" aria-label="%s">%s</button></form></div>`,
		esc(page.Href("/dashboard/session/toggle")),
		micState,
		esc(T(page.Loc, "session.waiting.mic")),
		esc(T(page.Loc, "session.waiting.mic")),
		esc(page.Href("/dashboard/session/toggle")),
		cameraState,
		esc(T(page.Loc, "session.waiting.camera")),
		esc(T(page.Loc, "session.waiting.camera")))
}

func initials(name string) string {
	fields := strings.Fields(name)
	out := ""
	for _, field := range fields {
		runes := []rune(field)
		out += strings.ToUpper(string(runes[0]))
		if len(out) >= 2 {
			break
		}
	}
	if out == "" {
		return "?"
	}
	return out
}
