// Package i18n holds the app's translation table. Lookup falls back to the
// English string, then to the raw key; a missing key is a warning, never an
// error.
package i18n

import (
	"nelotsavam/internal/model"
	"nelotsavam/pkg/logger"

	"go.uber.org/zap"
)

var translations = map[string]model.Text{
	// Common
	"loading":  {EN: "Loading...", ML: "ലോഡിംഗ്..."},
	"welcome":  {EN: "Welcome", ML: "സ്വാഗതം"},
	"continue": {EN: "Continue", ML: "തുടരുക"},
	"next":     {EN: "Next", ML: "അടുത്തത്"},
	"previous": {EN: "Previous", ML: "മുമ്പോട്ട്"},
	"start":    {EN: "Start", ML: "ആരംഭിക്കുക"},
	"save":     {EN: "Save", ML: "സേവ് ചെയ്യുക"},
	"cancel":   {EN: "Cancel", ML: "റദ്ദാക്കുക"},
	"accept":   {EN: "Accept", ML: "സ്വീകരിക്കുക"},
	"complete": {EN: "Complete", ML: "പൂർത്തിയാക്കുക"},
	"submit":   {EN: "Submit", ML: "സമർപ്പിക്കുക"},

	// Navigation
	"home":        {EN: "Home", ML: "ഹോം"},
	"missions":    {EN: "Missions", ML: "ദൗത്യങ്ങൾ"},
	"profile":     {EN: "Profile", ML: "പ്രൊഫൈൽ"},
	"forum":       {EN: "Forum", ML: "ഫോറം"},
	"leaderboard": {EN: "Leaderboard", ML: "ലീഡർബോർഡ്"},

	// Onboarding
	"welcomeToNelotsavam": {
		EN: "Welcome to Nelotsavam! The sustainable farming app for Kerala farmers",
		ML: "നേലോത്സവത്തിലേക്ക് സ്വാഗതം! കേരള കർഷകർക്കുള്ള സുസ്ഥിര കൃഷി ആപ്പ്",
	},
	"welcomeToSustainableFarming": {
		EN: "Welcome to the sustainable farming app for Kerala farmers",
		ML: "കേരള കർഷകർക്കുള്ള സുസ്ഥിര കൃഷി ആപ്പിലേക്ക് സ്വാഗതം",
	},

	// Profile creation
	"createProfile":        {EN: "Create Profile", ML: "പ്രൊഫൈൽ ഉണ്ടാക്കുക"},
	"name":                 {EN: "Name", ML: "പേര്"},
	"district":             {EN: "District", ML: "ജില്ല"},
	"acres":                {EN: "Acres", ML: "ഏക്കർ"},
	"nameRequired":         {EN: "Name Required", ML: "പേര് ആവശ്യമാണ്"},
	"pleaseEnterName":      {EN: "Please enter your name", ML: "ദയവായി നിങ്ങളുടെ പേര് നൽകുക"},
	"districtRequired":     {EN: "District Required", ML: "ജില്ല ആവശ്യമാണ്"},
	"pleaseSelectDistrict": {EN: "Please select your district", ML: "ദയവായി നിങ്ങളുടെ ജില്ല തിരഞ്ഞെടുക്കുക"},
	"invalidAcres":         {EN: "Invalid Acres", ML: "തെറ്റായ ഏക്കർ"},
	"pleaseEnterValidAcres": {
		EN: "Please enter a value between 0.1 and 100 acres",
		ML: "ദയവായി 0.1 നും 100 നും ഇടയിലുള്ള ഏക്കർ നൽകുക",
	},

	// Crop selection
	"selectCrops":     {EN: "Select Crops", ML: "വിളകൾ തിരഞ്ഞെടുക്കുക"},
	"selectAtLeastOne": {
		EN: "Please select at least one crop",
		ML: "ദയവായി കുറഞ്ഞത് ഒരു വിളയെങ്കിലും തിരഞ്ഞെടുക്കുക",
	},

	// Missions
	"missionAccepted":  {EN: "Mission accepted", ML: "ദൗത്യം സ്വീകരിച്ചു"},
	"missionCompleted": {EN: "Mission completed", ML: "ദൗത്യം പൂർത്തിയായി"},
	"points":           {EN: "Points", ML: "പോയിന്റുകൾ"},
	"badgeEarned":      {EN: "New badge earned", ML: "പുതിയ ബാഡ്ജ് നേടി"},

	// Errors
	"error": {EN: "Error", ML: "പിശക്"},
	"profileCreationError": {
		EN: "Could not create profile. Please try again.",
		ML: "പ്രൊഫൈൽ ഉണ്ടാക്കാൻ കഴിഞ്ഞില്ല. വീണ്ടും ശ്രമിക്കുക.",
	},

	// Logout
	"logout": {EN: "Logout", ML: "ലോഗൗട്ട്"},
}

// T resolves a translation key for the given language.
func T(key string, language model.Language) string {
	text, ok := translations[key]
	if !ok {
		logger.Logger().Warn("translation key not found", zap.String("key", key))
		return key
	}

	if s := text.In(language.Code); s != "" {
		return s
	}
	return key
}
