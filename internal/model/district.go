package model

// The 14 districts of Kerala, in the conventional north-to-south listing used
// throughout the app.
var KeralaDistricts = []string{
	"Thiruvananthapuram",
	"Kollam",
	"Pathanamthitta",
	"Alappuzha",
	"Kottayam",
	"Idukki",
	"Ernakulam",
	"Thrissur",
	"Palakkad",
	"Malappuram",
	"Kozhikode",
	"Wayanad",
	"Kannur",
	"Kasaragod",
}

var KeralaDistrictsMalayalam = []string{
	"തിരുവനന്തപുരം",
	"കൊല്ലം",
	"പത്തനംതിട്ട",
	"ആലപ്പുഴ",
	"കോട്ടയം",
	"ഇടുക്കി",
	"എറണാകുളം",
	"തൃശ്ശൂർ",
	"പാലക്കാട്",
	"മലപ്പുറം",
	"കോഴിക്കോട്",
	"വയനാട്",
	"കണ്ണൂർ",
	"കാസർഗോഡ്",
}

func IsKeralaDistrict(name string) bool {
	for _, d := range KeralaDistricts {
		if d == name {
			return true
		}
	}
	return false
}
