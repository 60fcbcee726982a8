package main

import (
	"context"
	"log"

	"nelotsavam/internal/catalog"
	"nelotsavam/internal/i18n"
	"nelotsavam/internal/model"
	"nelotsavam/internal/service"
	"nelotsavam/internal/storage"
	"nelotsavam/internal/store"
	"nelotsavam/internal/voice"
	"nelotsavam/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	gw, err := storage.New(cfg.Storage)
	if err != nil {
		zapLogger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer gw.Close()

	language := model.LanguageByCode(model.LanguageCode(cfg.Language))
	st := store.New(catalog.Missions(), catalog.Badges(), language)
	session := service.NewSession(st, gw)

	var speaker voice.Speaker = voice.NopSpeaker{}
	if cfg.Voice.Enabled {
		speaker = voice.LogSpeaker{}
	}
	announcer := voice.NewService(speaker)

	ctx := context.Background()

	if err := session.LoadUserData(ctx); err != nil {
		zapLogger.Warn("Some session records could not be loaded", zap.Error(err))
	}

	state := session.State()
	zapLogger.Info(i18n.T("welcomeToNelotsavam", state.Language))

	if state.User == nil {
		user, err := session.CreateProfile(ctx, service.ProfileInput{
			Name:     "Demo Farmer",
			District: "Ernakulam",
			Acres:    2.5,
		})
		if err != nil {
			zapLogger.Fatal("Failed to create profile", zap.Error(err))
		}

		if err := session.SelectCrops(ctx, []string{"paddy", "coconut"}); err != nil {
			zapLogger.Fatal("Failed to select crops", zap.Error(err))
		}

		if err := session.CompleteOnboarding(ctx); err != nil {
			zapLogger.Warn("Failed to record onboarding completion", zap.Error(err))
		}

		zapLogger.Info("Onboarding finished", zap.String("user_id", user.ID))
	}

	state = session.State()
	announcer.Announce(ctx, voice.WelcomeText(state.User.Name, state.User.Score, state.Language.Code), state.Language.Code)

	// Run the next available mission through its lifecycle.
	var next *model.Mission
	for i := range state.Missions {
		if !state.Missions[i].IsAccepted && !state.Missions[i].IsCompleted {
			next = &state.Missions[i]
			break
		}
	}
	if next == nil {
		zapLogger.Info("All missions completed", zap.Int("score", state.User.Score))
		return
	}

	before := session.State()
	session.AcceptMission(next.ID)
	announcer.Announce(ctx, voice.MissionAcceptedText(next.Title, state.Language.Code), state.Language.Code)

	session.CompleteMission(next.ID)
	announcer.Announce(ctx, voice.MissionCompletedText(next.Title, next.Points, state.Language.Code), state.Language.Code)

	after := session.State()
	for _, b := range after.User.Badges[len(before.User.Badges):] {
		announcer.Announce(ctx, voice.BadgeEarnedText(b.Name, state.Language.Code), state.Language.Code)
	}

	if err := session.SaveUserData(ctx, after.User); err != nil {
		zapLogger.Error("Failed to save session", zap.Error(err))
	}

	for _, entry := range session.Leaderboard() {
		zapLogger.Info("leaderboard",
			zap.Int("rank", entry.Rank),
			zap.String("name", entry.UserName),
			zap.Int("score", entry.Score))
	}
}
