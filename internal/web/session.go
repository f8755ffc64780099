package web

import (
	"net/http"
	"time"

	"golang.org/x/text/message"

	"github.com/healing-together/recoveryhub/internal/storage"
	"github.com/healing-together/recoveryhub/internal/web/locale"
	"github.com/healing-together/recoveryhub/internal/web/sessionflow"
	"github.com/healing-together/recoveryhub/internal/web/templates"
	"github.com/healing-together/recoveryhub/internal/web/timefmt"
)

// fallbackParticipantCount stands in when the selected group is
// unknown; views never fail on a missing group.
const fallbackParticipantCount = 6

// waitingRoomSize caps the rendered roster, current user included.
const waitingRoomSize = 6

func (h *handler) sessionPage(w http.ResponseWriter, r *http.Request) {
	code := locale.FromContext(r.Context())
	flow := h.flows.Get(h.flowID(w, r))

	switch flow.Stage {
	case sessionflow.StageWaitingRoom:
		h.waitingRoom(w, r, code, flow)
	case sessionflow.StageActiveSession:
		h.activeSession(w, r, code, flow)
	default:
		h.sessionListing(w, r, code)
	}
}

func (h *handler) sessionListing(w http.ResponseWriter, r *http.Request, code string) {
	groups, err := h.store.ListGroupExercises(r.Context())
	if err != nil {
		h.serverError(w, r, code, err)
		return
	}
	sorted := storage.SortGroups(groups)
	printer := h.printer(code)
	now := h.now()

	var view templates.SessionListingView
	for _, group := range sorted {
		card := h.groupCard(printer, now, group)
		if group.Pinned {
			view.Pinned = append(view.Pinned, card)
		} else {
			view.Others = append(view.Others, card)
		}
	}

	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.SessionListingPage(page, view))
}

func (h *handler) groupCard(printer *message.Printer, now time.Time, group storage.GroupExercise) templates.GroupCard {
	return templates.GroupCard{
		ID:                group.ID,
		Title:             group.Title,
		ExerciseType:      group.ExerciseType,
		Category:          group.Category,
		StartLabel:        timefmt.RelativeStart(printer, now, group.StartTime),
		ParticipantsLabel: printer.Sprintf("session.participants_ratio", group.ParticipantCount, group.MaxParticipants),
	}
}

func (h *handler) waitingRoom(w http.ResponseWriter, r *http.Request, code string, flow sessionflow.Flow) {
	printer := h.printer(code)
	title, participantCount := h.resolveGroup(r, printer, flow.GroupID)

	startLabel := printer.Sprintf("session.starting_now")
	if group, found, err := h.store.GetGroupExercise(r.Context(), flow.GroupID); err == nil && found {
		startLabel = printer.Sprintf("session.starting_in", timefmt.RelativeStart(printer, h.now(), group.StartTime))
	}

	roster, err := h.store.ListRoster(r.Context())
	if err != nil {
		h.serverError(w, r, code, err)
		return
	}
	identity := h.identity(r)
	entries := []templates.RosterEntry{{
		Name:       identity.Name,
		InjuryType: identity.InjuryType,
		Online:     true,
		IsSelf:     true,
	}}
	others := participantCount - 1
	if others < 0 {
		others = 0
	}
	if others > len(roster) {
		others = len(roster)
	}
	if others > waitingRoomSize-1 {
		others = waitingRoomSize - 1
	}
	for _, participant := range roster[:others] {
		entries = append(entries, templates.RosterEntry{
			Name:       participant.Name,
			InjuryType: participant.InjuryType,
			Online:     participant.Online,
		})
	}

	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.WaitingRoomPage(page, templates.WaitingRoomView{
		Title:      title,
		StartLabel: startLabel,
		Roster:     entries,
		MicOn:      flow.MicOn,
		CameraOn:   flow.CameraOn,
	}))
}

func (h *handler) activeSession(w http.ResponseWriter, r *http.Request, code string, flow sessionflow.Flow) {
	printer := h.printer(code)
	title, participantCount := h.resolveGroup(r, printer, flow.GroupID)

	page := h.pageContext(w, r, code)
	h.render(w, r, http.StatusOK, templates.ActiveSessionPage(page, templates.ActiveSessionView{
		Title:            title,
		ParticipantCount: participantCount,
		MicOn:            flow.MicOn,
		CameraOn:         flow.CameraOn,
	}))
}

// resolveGroup looks up the selected group, falling back to the
// default title and participant count when the id is unknown.
func (h *handler) resolveGroup(r *http.Request, printer *message.Printer, groupID string) (string, int) {
	group, found, err := h.store.GetGroupExercise(r.Context(), groupID)
	if err != nil || !found {
		return printer.Sprintf("session.default_title"), fallbackParticipantCount
	}
	return group.Title, group.ParticipantCount
}

func (h *handler) sessionSelect(w http.ResponseWriter, r *http.Request) {
	h.applyFlowTransition(w, r, func(flow *sessionflow.Flow) error {
		return flow.SelectGroup(r.PostFormValue("group"))
	})
}

func (h *handler) sessionJoin(w http.ResponseWriter, r *http.Request) {
	h.applyFlowTransition(w, r, func(flow *sessionflow.Flow) error {
		return flow.ConfirmJoin()
	})
}

func (h *handler) sessionLeave(w http.ResponseWriter, r *http.Request) {
	h.applyFlowTransition(w, r, func(flow *sessionflow.Flow) error {
		flow.Leave()
		return nil
	})
}

func (h *handler) sessionToggle(w http.ResponseWriter, r *http.Request) {
	h.applyFlowTransition(w, r, func(flow *sessionflow.Flow) error {
		if r.PostFormValue("device") == "camera" {
			return flow.ToggleCamera()
		}
		return flow.ToggleMic()
	})
}

// applyFlowTransition runs one lifecycle operation and returns to the
// session page. Rejected transitions are dropped silently; the page
// re-renders whatever stage the flow is actually in.
func (h *handler) applyFlowTransition(w http.ResponseWriter, r *http.Request, op func(flow *sessionflow.Flow) error) {
	code := locale.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	id := h.flowID(w, r)
	flow := h.flows.Get(id)
	if err := op(&flow); err == nil {
		h.flows.Put(id, flow)
	}
	h.redirect(w, r, code, "/dashboard/session")
}
