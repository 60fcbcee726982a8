package service

import (
	"context"
	"testing"
	"time"

	"nelotsavam/internal/catalog"
	"nelotsavam/internal/model"
	"nelotsavam/internal/service/mocks"
	"nelotsavam/internal/storage"
	"nelotsavam/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSession() (*Session, *storage.Memory) {
	gw := storage.NewMemory()
	st := store.New(catalog.Missions(), catalog.Badges(), model.English)
	return NewSession(st, gw), gw
}

func testUser() *model.User {
	return &model.User{
		ID:        "farmer-1",
		Name:      "Radha",
		District:  "Thrissur",
		Acres:     1.5,
		Crops:     []string{"paddy"},
		Score:     0,
		Badges:    []model.Badge{},
		CreatedAt: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSession_CreateProfile(t *testing.T) {
	tests := []struct {
		name          string
		input         ProfileInput
		expectedError error
		check         func(t *testing.T, s *Session, user *model.User)
	}{
		{
			name:  "valid profile",
			input: ProfileInput{Name: "  Radha  ", District: "Thrissur", Acres: 1.5},
			check: func(t *testing.T, s *Session, user *model.User) {
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, "Radha", user.Name, "name is trimmed")
				assert.Equal(t, 0, user.Score)
				assert.Empty(t, user.Crops)
				assert.Empty(t, user.Badges)
				assert.False(t, user.CreatedAt.IsZero())

				state := s.State()
				require.NotNil(t, state.User)
				assert.Equal(t, user.ID, state.User.ID)
			},
		},
		{
			name:          "missing name",
			input:         ProfileInput{Name: "   ", District: "Thrissur", Acres: 1.5},
			expectedError: ErrNameRequired,
		},
		{
			name:          "unknown district",
			input:         ProfileInput{Name: "Radha", District: "Mumbai", Acres: 1.5},
			expectedError: ErrInvalidDistrict,
		},
		{
			name:          "acres below minimum",
			input:         ProfileInput{Name: "Radha", District: "Thrissur", Acres: 0.05},
			expectedError: ErrInvalidAcres,
		},
		{
			name:          "acres above maximum",
			input:         ProfileInput{Name: "Radha", District: "Thrissur", Acres: 250},
			expectedError: ErrInvalidAcres,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession()

			user, err := s.CreateProfile(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, s.State().User, "validation failures must not mutate state")
				return
			}

			require.NoError(t, err)
			tt.check(t, s, user)
		})
	}
}

func TestSession_SelectCrops(t *testing.T) {
	tests := []struct {
		name          string
		prepare       func(s *Session)
		cropIDs       []string
		expectedError error
		check         func(t *testing.T, s *Session)
	}{
		{
			name:          "no user",
			cropIDs:       []string{"paddy"},
			expectedError: ErrNoUser,
		},
		{
			name: "empty selection",
			prepare: func(s *Session) {
				_, err := s.CreateProfile(context.Background(), ProfileInput{Name: "Radha", District: "Thrissur", Acres: 1})
				require.NoError(t, err)
			},
			cropIDs:       nil,
			expectedError: ErrNoCropsSelected,
		},
		{
			name: "unknown crop id",
			prepare: func(s *Session) {
				_, err := s.CreateProfile(context.Background(), ProfileInput{Name: "Radha", District: "Thrissur", Acres: 1})
				require.NoError(t, err)
			},
			cropIDs:       []string{"paddy", "wheat"},
			expectedError: ErrUnknownCrop,
		},
		{
			name: "already chosen",
			prepare: func(s *Session) {
				_, err := s.CreateProfile(context.Background(), ProfileInput{Name: "Radha", District: "Thrissur", Acres: 1})
				require.NoError(t, err)
				require.NoError(t, s.SelectCrops(context.Background(), []string{"paddy"}))
			},
			cropIDs:       []string{"coconut"},
			expectedError: ErrCropsAlreadySet,
		},
		{
			name: "valid selection deduplicates",
			prepare: func(s *Session) {
				_, err := s.CreateProfile(context.Background(), ProfileInput{Name: "Radha", District: "Thrissur", Acres: 1})
				require.NoError(t, err)
			},
			cropIDs: []string{"paddy", "coconut", "paddy"},
			check: func(t *testing.T, s *Session) {
				assert.Equal(t, []string{"paddy", "coconut"}, s.State().User.Crops)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession()
			if tt.prepare != nil {
				tt.prepare(s)
			}

			err := s.SelectCrops(context.Background(), tt.cropIDs)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}

func TestSession_MissionLifecycle(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.SaveUserData(context.Background(), testUser()))

	// Completing before accepting is a no-op.
	s.CompleteMission("soil_test")
	m := missionByID(t, s, "soil_test")
	assert.False(t, m.IsCompleted)
	assert.Equal(t, 0, s.State().User.Score)

	s.AcceptMission("soil_test")
	m = missionByID(t, s, "soil_test")
	assert.True(t, m.IsAccepted)
	assert.NotNil(t, m.AcceptedAt)
	assert.False(t, m.IsCompleted)

	s.CompleteMission("soil_test")
	m = missionByID(t, s, "soil_test")
	assert.True(t, m.IsCompleted)
	assert.NotNil(t, m.CompletedAt)
	assert.True(t, m.ProofSubmitted)
	assert.Equal(t, 50, s.State().User.Score)

	// Completing again must not double-award.
	s.CompleteMission("soil_test")
	assert.Equal(t, 50, s.State().User.Score)
}

func TestSession_MissionUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.SaveUserData(context.Background(), testUser()))
	before := s.State()

	s.AcceptMission("no_such_mission")
	s.CompleteMission("no_such_mission")

	after := s.State()
	assert.Equal(t, before.Missions, after.Missions)
	assert.Equal(t, before.User, after.User)
}

func TestSession_SaveLoadRoundTrip(t *testing.T) {
	s, gw := newTestSession()

	user := testUser()
	user.Score = 480
	require.NoError(t, s.SaveUserData(context.Background(), user))
	require.NoError(t, s.ChangeLanguage(context.Background(), model.Malayalam))
	require.NoError(t, s.CompleteOnboarding(context.Background()))

	// Fresh store over the same gateway simulates a process restart.
	restarted := NewSession(store.New(catalog.Missions(), catalog.Badges(), model.English), gw)
	require.NoError(t, restarted.LoadUserData(context.Background()))

	state := restarted.State()
	require.NotNil(t, state.User)
	assert.Equal(t, user, state.User)
	assert.True(t, state.OnboardingComplete)
	assert.Equal(t, model.CodeMalayalam, state.Language.Code)
	assert.False(t, state.IsLoading)
}

func TestSession_LoadUserDataFreshInstall(t *testing.T) {
	s, _ := newTestSession()

	require.NoError(t, s.LoadUserData(context.Background()))

	state := s.State()
	assert.Nil(t, state.User)
	assert.False(t, state.OnboardingComplete, "absent flag means onboarding not complete")
	assert.Equal(t, model.CodeEnglish, state.Language.Code)
	assert.False(t, state.IsLoading)
}

func TestSession_LoadUserDataClearsLoadingOnFailure(t *testing.T) {
	mockGw := &mocks.MockStorageGateway{}
	mockGw.On("Get", mock.Anything, mock.Anything).Return("", assert.AnError)

	st := store.New(catalog.Missions(), catalog.Badges(), model.English)
	s := NewSession(st, mockGw)

	err := s.LoadUserData(context.Background())
	assert.Error(t, err)
	assert.False(t, s.State().IsLoading, "loading flag must be cleared regardless of read outcome")

	mockGw.AssertExpectations(t)
}

func TestSession_SaveUserDataWriteThrough(t *testing.T) {
	mockGw := &mocks.MockStorageGateway{}
	mockGw.On("Set", mock.Anything, storage.UserDataKey, mock.Anything).Return(assert.AnError)

	st := store.New(catalog.Missions(), catalog.Badges(), model.English)
	s := NewSession(st, mockGw)

	err := s.SaveUserData(context.Background(), testUser())
	assert.Error(t, err)
	assert.Nil(t, s.State().User, "failed write must leave memory untouched")

	mockGw.AssertExpectations(t)
}

func TestSession_ChangeLanguageWriteThrough(t *testing.T) {
	mockGw := &mocks.MockStorageGateway{}
	mockGw.On("Set", mock.Anything, storage.AppLanguageKey, mock.Anything).Return(assert.AnError)

	st := store.New(catalog.Missions(), catalog.Badges(), model.English)
	s := NewSession(st, mockGw)

	err := s.ChangeLanguage(context.Background(), model.Malayalam)
	assert.Error(t, err)
	assert.Equal(t, model.CodeEnglish, s.State().Language.Code)

	mockGw.AssertExpectations(t)
}

func TestSession_Logout(t *testing.T) {
	s, gw := newTestSession()
	ctx := context.Background()

	require.NoError(t, s.SaveUserData(ctx, testUser()))
	require.NoError(t, s.CompleteOnboarding(ctx))
	require.NoError(t, s.ChangeLanguage(ctx, model.Malayalam))
	s.AcceptMission("soil_test")

	require.NoError(t, s.Logout(ctx))

	state := s.State()
	assert.Nil(t, state.User)
	assert.False(t, state.OnboardingComplete)
	assert.Equal(t, model.CodeMalayalam, state.Language.Code, "language survives logout")
	for _, m := range state.Missions {
		assert.False(t, m.IsAccepted)
	}

	_, err := gw.Get(ctx, storage.UserDataKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = gw.Get(ctx, storage.OnboardingCompleteKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = gw.Get(ctx, storage.AppLanguageKey)
	assert.NoError(t, err, "language record is kept")
}

func TestSession_CompleteMissionAwardsBadges(t *testing.T) {
	s, _ := newTestSession()
	user := testUser()
	user.Score = 480
	require.NoError(t, s.SaveUserData(context.Background(), user))

	// soil_test is worth 50: 480 -> 530 crosses every threshold up to 500.
	s.AcceptMission("soil_test")
	s.CompleteMission("soil_test")

	state := s.State()
	assert.Equal(t, 530, state.User.Score)
	assert.True(t, state.User.HasBadge("eco_warrior"))
	for _, b := range state.User.Badges {
		assert.NotNil(t, b.EarnedAt)
	}
}

func TestSession_Leaderboard(t *testing.T) {
	s, _ := newTestSession()
	user := testUser()
	user.Score = 700
	require.NoError(t, s.SaveUserData(context.Background(), user))

	entries := s.Leaderboard()
	require.Len(t, entries, 6)

	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, entries[i-1].Score, entry.Score)
		}
	}

	// 700 slots between Sunitha Devi (720) and Anil Varma (680).
	assert.Equal(t, "farmer-1", entries[2].UserID)
}

func missionByID(t *testing.T, s *Session, id string) model.Mission {
	t.Helper()
	for _, m := range s.State().Missions {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("mission %q not found", id)
	return model.Mission{}
}
