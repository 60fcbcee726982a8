package catalog

import "nelotsavam/internal/model"

var crops = []model.Crop{
	{
		ID:          "coconut",
		Name:        model.Text{EN: "Coconut", ML: "തെങ്ങ്"},
		Icon:        "🥥",
		Description: model.Text{EN: "Kerala's primary tree crop", ML: "കേരളത്തിന്റെ പ്രധാന വൃക്ഷവിള"},
	},
	{
		ID:          "rubber",
		Name:        model.Text{EN: "Rubber", ML: "റബ്ബർ"},
		Icon:        "🌳",
		Description: model.Text{EN: "Important cash crop", ML: "പ്രധാന നാണ്യവിള"},
	},
	{
		ID:          "paddy",
		Name:        model.Text{EN: "Paddy", ML: "നെല്ല്"},
		Icon:        "🌾",
		Description: model.Text{EN: "Traditional rice cultivation", ML: "പരമ്പരാഗത നെല്ലുകൃഷി"},
	},
	{
		ID:          "tea",
		Name:        model.Text{EN: "Tea", ML: "ചായ"},
		Icon:        "🍃",
		Description: model.Text{EN: "Hill station specialty", ML: "മലയോര പ്രത്യേകത"},
	},
	{
		ID:          "coffee",
		Name:        model.Text{EN: "Coffee", ML: "കാപ്പി"},
		Icon:        "☕",
		Description: model.Text{EN: "Aromatic hill crop", ML: "സുഗന്ധമുള്ള മലയോര വിള"},
	},
	{
		ID:          "spices",
		Name:        model.Text{EN: "Spices", ML: "സുഗന്ധവ്യഞ്ജനങ്ങൾ"},
		Icon:        "🌶️",
		Description: model.Text{EN: "Pepper, cardamom, etc.", ML: "കുരുമുളക്, ഏലം മുതലായവ"},
	},
}

func Crops() []model.Crop {
	out := make([]model.Crop, len(crops))
	copy(out, crops)
	return out
}

func CropByID(id string) (model.Crop, bool) {
	for _, c := range crops {
		if c.ID == id {
			return c, true
		}
	}
	return model.Crop{}, false
}
