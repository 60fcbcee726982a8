package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_In(t *testing.T) {
	text := Text{EN: "Missions", ML: "ദൗത്യങ്ങൾ"}

	assert.Equal(t, "Missions", text.In(CodeEnglish))
	assert.Equal(t, "ദൗത്യങ്ങൾ", text.In(CodeMalayalam))

	englishOnly := Text{EN: "Missions"}
	assert.Equal(t, "Missions", englishOnly.In(CodeMalayalam), "missing Malayalam falls back to English")
}

func TestUser_Clone(t *testing.T) {
	earned := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	user := &User{
		ID:     "farmer-1",
		Crops:  []string{"paddy"},
		Badges: []Badge{{ID: "eco_warrior", EarnedAt: &earned}},
	}

	clone := user.Clone()
	require.NotNil(t, clone)
	clone.Crops[0] = "coconut"
	clone.Badges[0].ID = "changed"

	assert.Equal(t, "paddy", user.Crops[0])
	assert.Equal(t, "eco_warrior", user.Badges[0].ID)

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
}

func TestIsKeralaDistrict(t *testing.T) {
	assert.True(t, IsKeralaDistrict("Ernakulam"))
	assert.True(t, IsKeralaDistrict("Kasaragod"))
	assert.False(t, IsKeralaDistrict("Mumbai"))
	assert.False(t, IsKeralaDistrict("ernakulam"), "matching is exact")

	assert.Len(t, KeralaDistricts, 14)
	assert.Len(t, KeralaDistrictsMalayalam, 14)
}

func TestLanguageByCode(t *testing.T) {
	assert.Equal(t, Malayalam, LanguageByCode(CodeMalayalam))
	assert.Equal(t, English, LanguageByCode(CodeEnglish))
	assert.Equal(t, English, LanguageByCode("fr"), "unknown codes default to English")
}
