package store

import "nelotsavam/internal/model"

// Eligible returns the catalog badges whose threshold the user's score now
// satisfies and which the user does not already hold, in catalog order.
// It is a pure function of the state it is handed: re-running it after the
// awards have been applied yields nothing, so evaluation is idempotent.
func Eligible(user *model.User, catalog []model.Badge) []model.Badge {
	if user == nil {
		return nil
	}

	var earned []model.Badge
	for _, b := range catalog {
		if user.Score >= b.PointsRequired && !user.HasBadge(b.ID) {
			earned = append(earned, b)
		}
	}
	return earned
}
