package voice

import (
	"context"
	"sync"

	"nelotsavam/internal/model"
	"nelotsavam/pkg/logger"

	"go.uber.org/zap"
)

// Service enforces the gateway contract: at most one utterance at a time
// (a new announcement stops any utterance in progress first), and errors are
// swallowed after logging. Announcements are decoupled from state
// correctness; nothing is returned to callers.
type Service struct {
	speaker Speaker

	mu       sync.Mutex
	speaking bool
}

func NewService(speaker Speaker) *Service {
	return &Service{
		speaker: speaker,
	}
}

func (s *Service) Announce(ctx context.Context, text string, locale model.LanguageCode) {
	s.mu.Lock()
	if s.speaking {
		if err := s.speaker.Stop(ctx); err != nil {
			logger.Logger().Warn("failed to stop current utterance", zap.Error(err))
		}
	}
	s.speaking = true
	s.mu.Unlock()

	if err := s.speaker.Speak(ctx, text, locale); err != nil {
		logger.Logger().Error("speech failed", zap.Error(err))
	}

	s.mu.Lock()
	s.speaking = false
	s.mu.Unlock()
}

func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.speaker.Stop(ctx); err != nil {
		logger.Logger().Warn("failed to stop utterance", zap.Error(err))
	}
	s.speaking = false
}

func (s *Service) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}
