package model

type Crop struct {
	ID          string `json:"id"`
	Name        Text   `json:"name"`
	Icon        string `json:"icon"`
	Description Text   `json:"description"`
}
