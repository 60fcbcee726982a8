package store

import (
	"sync"
	"time"

	"nelotsavam/internal/model"
	"nelotsavam/pkg/logger"

	"go.uber.org/zap"
)

// State is the whole of session state. Snapshots returned by Store.State are
// deep copies; a dispatch is never observable half-applied.
type State struct {
	User               *model.User
	Missions           []model.Mission
	Language           model.Language
	IsLoading          bool
	OnboardingComplete bool
}

// Store is the single source of truth for a session. All mutation is routed
// through Dispatch, which applies one transition at a time under a single
// writer lock.
type Store struct {
	mu    sync.Mutex
	state State

	seedMissions []model.Mission
	badgeCatalog []model.Badge

	now func() time.Time
}

// New seeds a store with the mission and badge catalogs and the initial
// language. The badge catalog's order is the award order.
func New(missions []model.Mission, badges []model.Badge, language model.Language) *Store {
	s := &Store{
		seedMissions: append([]model.Mission(nil), missions...),
		badgeCatalog: append([]model.Badge(nil), badges...),
		now:          time.Now,
	}
	s.state = s.initialState(language)
	return s
}

func (s *Store) initialState(language model.Language) State {
	missions := make([]model.Mission, len(s.seedMissions))
	copy(missions, s.seedMissions)
	return State{
		User:               nil,
		Missions:           missions,
		Language:           language,
		IsLoading:          false,
		OnboardingComplete: false,
	}
}

// Dispatch applies a transition. After an AddPoints transition the badge
// evaluator runs against the just-produced state, inside the same critical
// section, so eligibility is never judged from a stale snapshot.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.reduce(s.state, action)

	if _, ok := action.(AddPoints); !ok {
		return
	}
	for _, b := range Eligible(s.state.User, s.badgeCatalog) {
		earned := b
		t := s.now().UTC()
		earned.EarnedAt = &t
		s.state = s.reduce(s.state, AddBadge{Badge: earned})
		logger.Logger().Info("badge earned",
			zap.String("badge_id", earned.ID),
			zap.String("badge", earned.Name.EN))
	}
}

func (s *Store) reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetUser:
		state.User = a.User

	case SetMissions:
		state.Missions = append([]model.Mission(nil), a.Missions...)

	case UpdateMission:
		missions := make([]model.Mission, len(state.Missions))
		copy(missions, state.Missions)
		for i := range missions {
			if missions[i].ID == a.Mission.ID {
				missions[i] = a.Mission
			}
		}
		state.Missions = missions

	case SetLanguage:
		state.Language = a.Language

	case SetLoading:
		state.IsLoading = a.Loading

	case SetOnboardingComplete:
		state.OnboardingComplete = a.Complete

	case AddPoints:
		if state.User == nil || a.Points < 0 {
			return state
		}
		user := state.User.Clone()
		user.Score += a.Points
		state.User = user

	case AddBadge:
		if state.User == nil || state.User.HasBadge(a.Badge.ID) {
			return state
		}
		user := state.User.Clone()
		user.Badges = append(user.Badges, a.Badge)
		state.User = user

	case Logout:
		state = s.initialState(state.Language)
	}

	return state
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.User = s.state.User.Clone()
	snapshot.Missions = make([]model.Mission, len(s.state.Missions))
	copy(snapshot.Missions, s.state.Missions)
	return snapshot
}
