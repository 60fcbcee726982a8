package i18n

import (
	"testing"

	"nelotsavam/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		language model.Language
		expected string
	}{
		{
			name:     "english string",
			key:      "missions",
			language: model.English,
			expected: "Missions",
		},
		{
			name:     "malayalam string",
			key:      "missions",
			language: model.Malayalam,
			expected: "ദൗത്യങ്ങൾ",
		},
		{
			name:     "unknown key falls back to the key itself",
			key:      "no_such_key",
			language: model.Malayalam,
			expected: "no_such_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, T(tt.key, tt.language))
		})
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	translations["__english_only"] = model.Text{EN: "English only"}
	defer delete(translations, "__english_only")

	assert.Equal(t, "English only", T("__english_only", model.Malayalam))
}
