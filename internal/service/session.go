package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"nelotsavam/internal/catalog"
	"nelotsavam/internal/model"
	"nelotsavam/internal/storage"
	"nelotsavam/internal/store"
	"nelotsavam/pkg/logger"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minAcres = 0.1
	maxAcres = 100
)

// Session drives a user's session: it owns the state store and routes every
// compound operation through it, persisting write-through — storage first,
// in-memory state only after the write succeeds — so memory never runs ahead
// of a failed write.
type Session struct {
	store   *store.Store
	storage StorageGateway

	now func() time.Time
}

func NewSession(st *store.Store, gw StorageGateway) *Session {
	return &Session{
		store:   st,
		storage: gw,
		now:     time.Now,
	}
}

// State returns a snapshot of the current session state.
func (s *Session) State() store.State {
	return s.store.State()
}

// CreateProfile validates the input, builds a fresh user and persists it
// write-through. The generated ID and CreatedAt are immutable from then on.
func (s *Session) CreateProfile(ctx context.Context, in ProfileInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !model.IsKeralaDistrict(in.District) {
		return nil, ErrInvalidDistrict
	}
	if math.IsNaN(in.Acres) || in.Acres < minAcres || in.Acres > maxAcres {
		return nil, ErrInvalidAcres
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		District:  in.District,
		Acres:     in.Acres,
		Crops:     []string{},
		Score:     0,
		Badges:    []model.Badge{},
		CreatedAt: s.now().UTC(),
		Phone:     strings.TrimSpace(in.Phone),
	}

	if err := s.SaveUserData(ctx, user); err != nil {
		return nil, err
	}

	logger.Logger().Info("profile created",
		zap.String("user_id", user.ID),
		zap.String("district", user.District))

	return user, nil
}

type ProfileInput struct {
	Name     string
	District string
	Acres    float64
	Phone    string
}

// SelectCrops records the farmer's crops. The set is chosen once, during
// onboarding, and persisted write-through.
func (s *Session) SelectCrops(ctx context.Context, cropIDs []string) error {
	state := s.store.State()
	if state.User == nil {
		return ErrNoUser
	}
	if len(cropIDs) == 0 {
		return ErrNoCropsSelected
	}
	if len(state.User.Crops) > 0 {
		return ErrCropsAlreadySet
	}

	seen := make(map[string]struct{}, len(cropIDs))
	crops := make([]string, 0, len(cropIDs))
	for _, id := range cropIDs {
		if _, ok := catalog.CropByID(id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCrop, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		crops = append(crops, id)
	}

	user := state.User.Clone()
	user.Crops = crops
	return s.SaveUserData(ctx, user)
}

// AcceptMission marks a mission accepted and stamps AcceptedAt. Unknown,
// already accepted and completed missions are silent no-ops.
func (s *Session) AcceptMission(id string) {
	mission, ok := s.findMission(id)
	if !ok || mission.IsAccepted || mission.IsCompleted {
		return
	}

	t := s.now().UTC()
	mission.IsAccepted = true
	mission.AcceptedAt = &t
	s.store.Dispatch(store.UpdateMission{Mission: mission})

	logger.Logger().Info("mission accepted", zap.String("mission_id", id))
}

// CompleteMission completes a previously accepted mission, submits proof and
// awards its points (which in turn runs badge evaluation). A mission that is
// unknown, not yet accepted or already completed is a silent no-op.
func (s *Session) CompleteMission(id string) {
	mission, ok := s.findMission(id)
	if !ok || !mission.IsAccepted || mission.IsCompleted {
		return
	}

	t := s.now().UTC()
	mission.IsCompleted = true
	mission.CompletedAt = &t
	mission.ProofSubmitted = true
	s.store.Dispatch(store.UpdateMission{Mission: mission})
	s.store.Dispatch(store.AddPoints{Points: mission.Points})

	logger.Logger().Info("mission completed",
		zap.String("mission_id", id),
		zap.Int("points", mission.Points))
}

func (s *Session) findMission(id string) (model.Mission, bool) {
	for _, m := range s.store.State().Missions {
		if m.ID == id {
			return m, true
		}
	}
	return model.Mission{}, false
}

// SaveUserData persists the full user record, then applies it to the store.
// On a failed write the in-memory state is left untouched.
func (s *Session) SaveUserData(ctx context.Context, user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}

	if err := s.storage.Set(ctx, storage.UserDataKey, string(raw)); err != nil {
		logger.Logger().Error("failed to save user data", zap.Error(err))
		return fmt.Errorf("failed to save user data: %w", err)
	}

	s.store.Dispatch(store.SetUser{User: user})
	return nil
}

// LoadUserData reads the three persisted records — user, onboarding flag,
// language — and applies whichever are present. The records are independent:
// an absent onboarding flag means onboarding is not complete, and a failure
// on one read does not stop the others. The loading flag is cleared on every
// path. The returned error reports read failures that were tolerated.
func (s *Session) LoadUserData(ctx context.Context) error {
	s.store.Dispatch(store.SetLoading{Loading: true})
	defer s.store.Dispatch(store.SetLoading{Loading: false})

	var errs []error

	raw, err := s.storage.Get(ctx, storage.UserDataKey)
	switch {
	case err == nil:
		var user model.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			logger.Logger().Error("failed to decode stored user data", zap.Error(err))
			errs = append(errs, err)
		} else {
			s.store.Dispatch(store.SetUser{User: &user})
		}
	case !errors.Is(err, storage.ErrNotFound):
		logger.Logger().Error("failed to read user data", zap.Error(err))
		errs = append(errs, err)
	}

	flag, err := s.storage.Get(ctx, storage.OnboardingCompleteKey)
	switch {
	case err == nil:
		if flag == "true" {
			s.store.Dispatch(store.SetOnboardingComplete{Complete: true})
		}
	case !errors.Is(err, storage.ErrNotFound):
		logger.Logger().Error("failed to read onboarding flag", zap.Error(err))
		errs = append(errs, err)
	}

	raw, err = s.storage.Get(ctx, storage.AppLanguageKey)
	switch {
	case err == nil:
		var language model.Language
		if err := json.Unmarshal([]byte(raw), &language); err != nil {
			logger.Logger().Error("failed to decode stored language", zap.Error(err))
			errs = append(errs, err)
		} else {
			s.store.Dispatch(store.SetLanguage{Language: language})
		}
	case !errors.Is(err, storage.ErrNotFound):
		logger.Logger().Error("failed to read language preference", zap.Error(err))
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ChangeLanguage persists the preference, then applies it.
func (s *Session) ChangeLanguage(ctx context.Context, language model.Language) error {
	raw, err := json.Marshal(language)
	if err != nil {
		return fmt.Errorf("failed to encode language: %w", err)
	}

	if err := s.storage.Set(ctx, storage.AppLanguageKey, string(raw)); err != nil {
		logger.Logger().Error("failed to save language preference", zap.Error(err))
		return fmt.Errorf("failed to save language preference: %w", err)
	}

	s.store.Dispatch(store.SetLanguage{Language: language})

	logger.Logger().Info("language changed", zap.String("language", language.Name))
	return nil
}

// CompleteOnboarding flips the one-way onboarding flag, write-through.
func (s *Session) CompleteOnboarding(ctx context.Context) error {
	if err := s.storage.Set(ctx, storage.OnboardingCompleteKey, "true"); err != nil {
		logger.Logger().Error("failed to save onboarding flag", zap.Error(err))
		return fmt.Errorf("failed to save onboarding flag: %w", err)
	}

	s.store.Dispatch(store.SetOnboardingComplete{Complete: true})
	return nil
}

// Logout removes the persisted session records (best effort, each key
// independently) and resets in-memory state. The language preference survives
// both in storage and in memory.
func (s *Session) Logout(ctx context.Context) error {
	err := s.storage.Remove(ctx, storage.UserDataKey, storage.OnboardingCompleteKey)
	if err != nil {
		logger.Logger().Error("failed to remove session records", zap.Error(err))
	}

	s.store.Dispatch(store.Logout{})
	return err
}

// Leaderboard merges the live user into the sample standings and ranks by
// score, stable on ties.
func (s *Session) Leaderboard() []model.LeaderboardEntry {
	entries := catalog.Leaderboard()

	if u := s.store.State().User; u != nil {
		entries = append(entries, model.LeaderboardEntry{
			UserID:   u.ID,
			UserName: u.Name,
			Score:    u.Score,
			Badges:   u.Badges,
			District: u.District,
			Crops:    u.Crops,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
