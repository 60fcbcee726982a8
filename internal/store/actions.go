package store

import "nelotsavam/internal/model"

// Action is the closed set of state transitions. Every mutation of session
// state goes through Store.Dispatch with one of these.
type Action interface {
	isAction()
}

// SetUser replaces the current user wholesale. A nil user clears the session.
type SetUser struct {
	User *model.User
}

// SetMissions replaces the entire mission list. Used at initialization and
// when restoring a saved session.
type SetMissions struct {
	Missions []model.Mission
}

// UpdateMission replaces the single mission with a matching ID, leaving the
// rest of the list and its ordering untouched.
type UpdateMission struct {
	Mission model.Mission
}

type SetLanguage struct {
	Language model.Language
}

type SetLoading struct {
	Loading bool
}

type SetOnboardingComplete struct {
	Complete bool
}

// AddPoints adds a non-negative delta to the user's score. Negative deltas and
// dispatches without an active user are no-ops. Crossing a badge threshold
// awards the badge within the same dispatch.
type AddPoints struct {
	Points int
}

// AddBadge appends a badge to the user's earned set. Duplicate badge IDs are
// dropped here, in the single mutation path, rather than left to callers.
type AddBadge struct {
	Badge model.Badge
}

// Logout resets everything to initial values except the active language.
type Logout struct{}

func (SetUser) isAction()               {}
func (SetMissions) isAction()           {}
func (UpdateMission) isAction()         {}
func (SetLanguage) isAction()           {}
func (SetLoading) isAction()            {}
func (SetOnboardingComplete) isAction() {}
func (AddPoints) isAction()             {}
func (AddBadge) isAction()              {}
func (Logout) isAction()                {}
