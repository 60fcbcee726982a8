package catalog

import "nelotsavam/internal/model"

// Declaration order is award order: when several thresholds are crossed in one
// evaluation pass, badges are granted in this sequence.
var badges = []model.Badge{
	{
		ID:             "eco_warrior",
		Name:           model.Text{EN: "Eco Warrior", ML: "പരിസ്ഥിതി യോദ്ധാവ്"},
		Description:    model.Text{EN: "Earned 500 points", ML: "500 പോയിന്റുകൾ നേടി"},
		Icon:           "🌿",
		PointsRequired: 500,
	},
	{
		ID:             "soil_guardian",
		Name:           model.Text{EN: "Soil Guardian", ML: "മണ്ണിന്റെ കാവൽക്കാരൻ"},
		Description:    model.Text{EN: "Completed 5 soil missions", ML: "5 മണ്ണ് ദൗത്യങ്ങൾ പൂർത്തിയാക്കി"},
		Icon:           "🌱",
		PointsRequired: 250,
	},
	{
		ID:             "water_saver",
		Name:           model.Text{EN: "Water Saver", ML: "ജല സംരക്ഷകൻ"},
		Description:    model.Text{EN: "Implemented water conservation", ML: "ജല സംരക്ഷണം നടപ്പാക്കി"},
		Icon:           "💧",
		PointsRequired: 300,
	},
	{
		ID:             "organic_champion",
		Name:           model.Text{EN: "Organic Champion", ML: "ജൈവിക ചാമ്പ്യൻ"},
		Description:    model.Text{EN: "Switched to organic farming", ML: "ജൈവിക കൃഷിയിലേക്ക് മാറി"},
		Icon:           "🍃",
		PointsRequired: 400,
	},
	{
		ID:             "community_leader",
		Name:           model.Text{EN: "Community Leader", ML: "സമുദായ നേതാവ്"},
		Description:    model.Text{EN: "Active in forum discussions", ML: "ഫോറം ചർച്ചകളിൽ സജീവം"},
		Icon:           "👥",
		PointsRequired: 600,
	},
}

// Badges returns a fresh copy of the badge catalog. Entries carry no EarnedAt;
// that is stamped on the user's copy at award time.
func Badges() []model.Badge {
	out := make([]model.Badge, len(badges))
	copy(out, badges)
	return out
}
