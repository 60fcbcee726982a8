package model

import "time"

// User is the farmer profile. JSON tags match the shape persisted by the
// mobile shell so stored records remain readable across versions.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	District  string    `json:"district"`
	Acres     float64   `json:"acres"`
	Crops     []string  `json:"crops"`
	Score     int       `json:"score"`
	Badges    []Badge   `json:"badges"`
	CreatedAt time.Time `json:"createdAt"`
	Phone     string    `json:"phone,omitempty"`
}

func (u *User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so state snapshots never alias live slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Crops = append([]string(nil), u.Crops...)
	clone.Badges = append([]Badge(nil), u.Badges...)
	return &clone
}
