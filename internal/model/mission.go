package model

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Category string

const (
	CategoryGeneral Category = "General"
	CategoryPaddy   Category = "Paddy"
	CategoryCoconut Category = "Coconut"
	CategoryRubber  Category = "Rubber"
	CategoryTea     Category = "Tea"
	CategoryCoffee  Category = "Coffee"
	CategorySpices  Category = "Spices"
)

// Mission is a catalog task with a three-state lifecycle:
// available -> accepted -> completed, never backward, never skipping accepted.
type Mission struct {
	ID                string     `json:"id"`
	Title             Text       `json:"title"`
	Description       Text       `json:"description"`
	Difficulty        Difficulty `json:"difficulty"`
	Points            int        `json:"points"`
	Category          Category   `json:"category"`
	IsAccepted        bool       `json:"isAccepted"`
	AcceptedAt        *time.Time `json:"acceptedAt,omitempty"`
	IsCompleted       bool       `json:"isCompleted"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	ProofRequired     bool       `json:"proofRequired"`
	ProofSubmitted    bool       `json:"proofSubmitted"`
	EstimatedDuration string     `json:"estimatedDuration"`
}
