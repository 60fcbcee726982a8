package voice

import (
	"strings"

	"nelotsavam/internal/model"
)

// Spoken phrase fragments mapped to app actions, per locale. Matching is a
// simple substring check on the normalized phrase.
var commandMappings = map[model.LanguageCode]map[string]string{
	model.CodeMalayalam: {
		"പ്രൊഫൈൽ ഉണ്ടാക്കുക":     "create_profile",
		"ദൗത്യങ്ങൾ കാണിക്കുക":    "show_missions",
		"ദൗത്യം സ്വീകരിക്കുക":    "accept_mission",
		"ലീഡർബോർഡ് കാണിക്കുക":    "show_leaderboard",
		"ഫോറം കാണിക്കുക":         "show_forum",
		"പ്രൊഫൈൽ കാണിക്കുക":      "show_profile",
		"വീട്ടിലേക്ക് പോകുക":     "go_home",
	},
	model.CodeEnglish: {
		"create profile":   "create_profile",
		"show missions":    "show_missions",
		"accept mission":   "accept_mission",
		"show leaderboard": "show_leaderboard",
		"show forum":       "show_forum",
		"show profile":     "show_profile",
		"go home":          "go_home",
	},
}

// RecognizeCommand maps a spoken phrase to an app action name. The second
// return is false when no known phrase matches.
func RecognizeCommand(phrase string, locale model.LanguageCode) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(phrase))

	for fragment, action := range commandMappings[locale] {
		if strings.Contains(normalized, fragment) {
			return action, true
		}
	}
	return "", false
}
