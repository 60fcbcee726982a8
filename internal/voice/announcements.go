package voice

import (
	"fmt"

	"nelotsavam/internal/model"
)

// Announcement text builders, bilingual like the rest of the app content.

func WelcomeText(name string, score int, locale model.LanguageCode) string {
	if locale == model.CodeMalayalam {
		return fmt.Sprintf("സ്വാഗതം %s! നിങ്ങളുടെ സ്കോർ: %d പോയിന്റുകൾ", name, score)
	}
	return fmt.Sprintf("Welcome %s! Your score: %d points", name, score)
}

func MissionAcceptedText(title model.Text, locale model.LanguageCode) string {
	if locale == model.CodeMalayalam {
		return fmt.Sprintf("ദൗത്യം സ്വീകരിച്ചു: %s", title.In(locale))
	}
	return fmt.Sprintf("Mission accepted: %s", title.In(locale))
}

func MissionCompletedText(title model.Text, points int, locale model.LanguageCode) string {
	if locale == model.CodeMalayalam {
		return fmt.Sprintf("ദൗത്യം പൂർത്തിയായി: %s. %d പോയിന്റുകൾ നേടി!", title.In(locale), points)
	}
	return fmt.Sprintf("Mission completed: %s. Earned %d points!", title.In(locale), points)
}

func BadgeEarnedText(name model.Text, locale model.LanguageCode) string {
	if locale == model.CodeMalayalam {
		return fmt.Sprintf("പുതിയ ബാഡ്ജ് നേടി: %s!", name.In(locale))
	}
	return fmt.Sprintf("New badge earned: %s!", name.In(locale))
}

func SoilReportText(soil model.SoilData, locale model.LanguageCode) string {
	if locale == model.CodeMalayalam {
		return fmt.Sprintf("മണ്ണിന്റെ വിവരങ്ങൾ: തരം - %s, ജലാംശം - %s, നൈട്രജൻ - %s",
			soil.Type.In(locale), soil.WaterContent, soil.Nitrogen)
	}
	return fmt.Sprintf("Soil information: Type - %s, Water content - %s, Nitrogen - %s",
		soil.Type.In(locale), soil.WaterContent, soil.Nitrogen)
}
