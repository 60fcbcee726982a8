// Package voice is the announcement gateway: it turns progression events into
// spoken feedback. The platform text-to-speech call is behind the Speaker
// interface; the rest of the app only ever sees Service.
package voice

import (
	"context"

	"nelotsavam/internal/model"
	"nelotsavam/pkg/logger"

	"go.uber.org/zap"
)

// Speaker is the opaque text-to-speech capability. Implementations are
// injected, never reached through a process-wide singleton, so tests can
// substitute a no-op.
type Speaker interface {
	Speak(ctx context.Context, text string, locale model.LanguageCode) error
	Stop(ctx context.Context) error
}

// NopSpeaker discards all utterances.
type NopSpeaker struct{}

func (NopSpeaker) Speak(context.Context, string, model.LanguageCode) error { return nil }
func (NopSpeaker) Stop(context.Context) error                              { return nil }

// LogSpeaker writes utterances to the log. It stands in for the platform
// engine on builds without audio output.
type LogSpeaker struct{}

func (LogSpeaker) Speak(_ context.Context, text string, locale model.LanguageCode) error {
	logger.Logger().Info("speaking",
		zap.String("locale", string(locale)),
		zap.String("text", text))
	return nil
}

func (LogSpeaker) Stop(context.Context) error {
	return nil
}
