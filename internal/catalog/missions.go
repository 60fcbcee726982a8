package catalog

import "nelotsavam/internal/model"

var missions = []model.Mission{
	{
		ID:                "soil_test",
		Title:             model.Text{EN: "Soil Test", ML: "മണ്ണ് പരിശോധന"},
		Description:       model.Text{EN: "Test your soil nutrients and pH levels", ML: "നിങ്ങളുടെ മണ്ണിന്റെ പോഷകങ്ങളും pH നിലവാരവും പരിശോധിക്കുക"},
		Difficulty:        model.DifficultyEasy,
		Points:            50,
		Category:          model.CategoryGeneral,
		ProofRequired:     true,
		EstimatedDuration: "1 day",
	},
	{
		ID:                "bio_pesticides",
		Title:             model.Text{EN: "Switch to Bio-Pesticides", ML: "ജൈവ കീടനാശിനികളിലേക്ക് മാറുക"},
		Description:       model.Text{EN: "Use bio-pesticides for 1 acre of your farm", ML: "നിങ്ങളുടെ ഫാമിന്റെ 1 ഏക്കറിൽ ജൈവ കീടനാശിനികൾ ഉപയോഗിക്കുക"},
		Difficulty:        model.DifficultyMedium,
		Points:            100,
		Category:          model.CategoryGeneral,
		ProofRequired:     true,
		EstimatedDuration: "1 week",
	},
	{
		ID:                "mulching",
		Title:             model.Text{EN: "Implement Mulching", ML: "മൾച്ചിംഗ് നടപ്പാക്കുക"},
		Description:       model.Text{EN: "Apply mulching technique for 3 weeks", ML: "3 ആഴ്ചയ്ക്ക് മൾച്ചിംഗ് സാങ്കേതികത പ്രയോഗിക്കുക"},
		Difficulty:        model.DifficultyHard,
		Points:            150,
		Category:          model.CategoryGeneral,
		ProofRequired:     true,
		EstimatedDuration: "3 weeks",
	},
	{
		ID:                "mixed_cropping",
		Title:             model.Text{EN: "Mixed Cropping with Legumes", ML: "പയർവർഗ്ഗങ്ങളുമായി മിശ്ര കൃഷി"},
		Description:       model.Text{EN: "Implement mixed cropping with legumes in paddy fields", ML: "നെൽവയലുകളിൽ പയർവർഗ്ഗങ്ങളുമായി മിശ്ര കൃഷി നടപ്പാക്കുക"},
		Difficulty:        model.DifficultyMedium,
		Points:            120,
		Category:          model.CategoryPaddy,
		ProofRequired:     true,
		EstimatedDuration: "2 weeks",
	},
	{
		ID:                "organic_manure_coconut",
		Title:             model.Text{EN: "Organic Manure for Coconut", ML: "തെങ്ങിന് ജൈവ വളം"},
		Description:       model.Text{EN: "Apply organic manure to coconut trees", ML: "തെങ്ങുകൾക്ക് ജൈവ വളം പ്രയോഗിക്കുക"},
		Difficulty:        model.DifficultyEasy,
		Points:            80,
		Category:          model.CategoryCoconut,
		ProofRequired:     true,
		EstimatedDuration: "3 days",
	},
	{
		ID:                "water_conservation",
		Title:             model.Text{EN: "Water Conservation System", ML: "ജല സംരക്ഷണ സംവിധാനം"},
		Description:       model.Text{EN: "Install rainwater harvesting or drip irrigation", ML: "മഴവെള്ള സംഭരണം അല്ലെങ്കിൽ ഡ്രിപ്പ് ജലസേചനം സ്ഥാപിക്കുക"},
		Difficulty:        model.DifficultyHard,
		Points:            200,
		Category:          model.CategoryGeneral,
		ProofRequired:     true,
		EstimatedDuration: "1 month",
	},
	{
		ID:                "composting",
		Title:             model.Text{EN: "Start Composting", ML: "കമ്പോസ്റ്റിംഗ് ആരംഭിക്കുക"},
		Description:       model.Text{EN: "Create compost from farm waste", ML: "കാർഷിക മാലിന്യങ്ങളിൽ നിന്ന് കമ്പോസ്റ്റ് ഉണ്ടാക്കുക"},
		Difficulty:        model.DifficultyEasy,
		Points:            60,
		Category:          model.CategoryGeneral,
		ProofRequired:     true,
		EstimatedDuration: "2 weeks",
	},
	{
		ID:                "intercropping_rubber",
		Title:             model.Text{EN: "Intercropping in Rubber Plantation", ML: "റബ്ബർ തോട്ടത്തിൽ ഇടവിള"},
		Description:       model.Text{EN: "Grow vegetables between rubber trees", ML: "റബ്ബർ മരങ്ങൾക്കിടയിൽ പച്ചക്കറികൾ വളർത്തുക"},
		Difficulty:        model.DifficultyMedium,
		Points:            110,
		Category:          model.CategoryRubber,
		ProofRequired:     true,
		EstimatedDuration: "1 month",
	},
	{
		ID:                "organic_tea",
		Title:             model.Text{EN: "Organic Tea Cultivation", ML: "ജൈവ ചായ കൃഷി"},
		Description:       model.Text{EN: "Switch to organic methods for tea cultivation", ML: "ചായ കൃഷിയിൽ ജൈവ രീതികളിലേക്ക് മാറുക"},
		Difficulty:        model.DifficultyHard,
		Points:            180,
		Category:          model.CategoryTea,
		ProofRequired:     true,
		EstimatedDuration: "2 months",
	},
	{
		ID:                "spice_processing",
		Title:             model.Text{EN: "Value Addition to Spices", ML: "സുഗന്ധവ്യഞ്ജനങ്ങൾക്ക് മൂല്യവർദ്ധന"},
		Description:       model.Text{EN: "Process and package spices for better market value", ML: "മികച്ച വിപണി മൂല്യത്തിനായി സുഗന്ധവ്യഞ്ജനങ്ങൾ സംസ്കരിച്ച് പാക്കേജ് ചെയ്യുക"},
		Difficulty:        model.DifficultyMedium,
		Points:            130,
		Category:          model.CategorySpices,
		ProofRequired:     true,
		EstimatedDuration: "2 weeks",
	},
}

// Missions returns a fresh copy of the mission catalog with all lifecycle
// flags in their initial (available) position.
func Missions() []model.Mission {
	out := make([]model.Mission, len(missions))
	copy(out, missions)
	return out
}
