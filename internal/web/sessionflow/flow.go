// Package sessionflow tracks a visitor's progress through the group
// exercise lifecycle: browsing the listing, sitting in the waiting room
// and being in the live session.
package sessionflow

import (
	"errors"
	"fmt"
)

// Stage is the visitor's current lifecycle stage.
type Stage string

// Lifecycle stages.
const (
	StageListing       Stage = "listing"
	StageWaitingRoom   Stage = "waiting_room"
	StageActiveSession Stage = "active_session"
)

// ErrInvalidTransition reports a lifecycle operation applied in the
// wrong stage.
var ErrInvalidTransition = errors.New("invalid session transition")

// Flow is one visitor's lifecycle state. The zero value is a fresh flow
// on the listing with both devices muted.
type Flow struct {
	Stage    Stage
	GroupID  string
	MicOn    bool
	CameraOn bool
}

func (f *Flow) stage() Stage {
	if f.Stage == "" {
		return StageListing
	}
	return f.Stage
}

// SelectGroup moves from the listing into the waiting room for a group.
// The id is recorded as given; unknown groups are resolved to fallback
// content at render time, not rejected here.
func (f *Flow) SelectGroup(groupID string) error {
	if f.stage() != StageListing {
		return fmt.Errorf("%w: select group from %s", ErrInvalidTransition, f.stage())
	}
	f.Stage = StageWaitingRoom
	f.GroupID = groupID
	return nil
}

// ConfirmJoin moves from the waiting room into the live session. There
// is no capacity check; the waiting room always admits.
func (f *Flow) ConfirmJoin() error {
	if f.stage() != StageWaitingRoom {
		return fmt.Errorf("%w: join from %s", ErrInvalidTransition, f.stage())
	}
	f.Stage = StageActiveSession
	return nil
}

// Leave returns to the listing from any stage, clearing the selected
// group and device toggles.
func (f *Flow) Leave() {
	*f = Flow{Stage: StageListing}
}

// ToggleMic flips the microphone. Toggles only exist once a group is
// selected.
func (f *Flow) ToggleMic() error {
	if f.stage() == StageListing {
		return fmt.Errorf("%w: toggle mic on listing", ErrInvalidTransition)
	}
	f.MicOn = !f.MicOn
	return nil
}

// ToggleCamera flips the camera.
func (f *Flow) ToggleCamera() error {
	if f.stage() == StageListing {
		return fmt.Errorf("%w: toggle camera on listing", ErrInvalidTransition)
	}
	f.CameraOn = !f.CameraOn
	return nil
}
