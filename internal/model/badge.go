package model

import "time"

// Badge is a catalog achievement gated by a points threshold. A badge held by
// a user is a copy of the catalog entry with EarnedAt stamped at award time;
// the catalog entry itself is never mutated.
type Badge struct {
	ID             string     `json:"id"`
	Name           Text       `json:"name"`
	Description    Text       `json:"description"`
	Icon           string     `json:"icon"`
	PointsRequired int        `json:"pointsRequired"`
	EarnedAt       *time.Time `json:"earnedAt,omitempty"`
}
