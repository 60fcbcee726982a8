package model

import "time"

type SoilData struct {
	Type         Text   `json:"type"`
	WaterContent string `json:"waterContent"`
	Nitrogen     string `json:"nitrogen"`
	Phosphorus   string `json:"phosphorus"`
	Potassium    string `json:"potassium"`
	PH           string `json:"ph"`
	Description  Text   `json:"description"`
}

type LeaderboardEntry struct {
	UserID   string   `json:"userId"`
	UserName string   `json:"userName"`
	Score    int      `json:"score"`
	Badges   []Badge  `json:"badges"`
	District string   `json:"district"`
	Crops    []string `json:"crops"`
	Rank     int      `json:"rank"`
}

type ForumPost struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	UserName  string       `json:"userName"`
	UserScore int          `json:"userScore"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  string       `json:"category"`
	CreatedAt time.Time    `json:"createdAt"`
	Replies   []ForumReply `json:"replies"`
	Likes     int          `json:"likes"`
	HasPhoto  bool         `json:"hasPhoto"`
}

type ForumReply struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserScore int       `json:"userScore"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
}
