package catalog

import (
	"time"

	"nelotsavam/internal/model"
)

var soilData = model.SoilData{
	Type:         model.Text{EN: "Laterite", ML: "ലാറ്ററൈറ്റ്"},
	WaterContent: "60-70%",
	Nitrogen:     "Medium (50-100 kg/ha)",
	Phosphorus:   "Low (20-40 kg/ha)",
	Potassium:    "High (150-200 kg/ha)",
	PH:           "5.5-6.5",
	Description: model.Text{
		EN: "Red, well-drained soil typical of Kerala. Good for most crops with proper fertilization.",
		ML: "കേരളത്തിലെ സാധാരണ ചുവന്ന, നല്ല നീർവാർച്ചയുള്ള മണ്ണ്. ശരിയായ വളപ്രയോഗത്തോടെ മിക്ക വിളകൾക്കും അനുയോജ്യം.",
	},
}

func SoilReport() model.SoilData {
	return soilData
}

var leaderboard = []model.LeaderboardEntry{
	{UserID: "user1", UserName: "Rajesh Kumar", Score: 850, Badges: []model.Badge{badges[0], badges[1]}, District: "Ernakulam", Crops: []string{"coconut", "spices"}},
	{UserID: "user2", UserName: "Sunitha Devi", Score: 720, Badges: []model.Badge{badges[1], badges[2]}, District: "Thrissur", Crops: []string{"paddy", "coconut"}},
	{UserID: "user3", UserName: "Anil Varma", Score: 680, Badges: []model.Badge{badges[0]}, District: "Kottayam", Crops: []string{"rubber", "tea"}},
	{UserID: "user4", UserName: "Priya Menon", Score: 590, Badges: []model.Badge{badges[2]}, District: "Palakkad", Crops: []string{"paddy"}},
	{UserID: "user5", UserName: "Vinod Krishnan", Score: 540, Badges: []model.Badge{}, District: "Wayanad", Crops: []string{"coffee", "spices"}},
}

// Leaderboard returns copies of the sample standings without ranks assigned;
// ranking happens after the live user is merged in.
func Leaderboard() []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, len(leaderboard))
	copy(out, leaderboard)
	return out
}

var forumPosts = []model.ForumPost{
	{
		ID:        "post1",
		UserID:    "user1",
		UserName:  "Rajesh Kumar",
		UserScore: 650,
		Title:     "Best organic fertilizer for coconut?",
		Content:   "I want to switch to organic fertilizers for my coconut farm. What are your recommendations?",
		Category:  "Coconut",
		CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Replies: []model.ForumReply{
			{
				ID:        "reply1",
				UserID:    "user2",
				UserName:  "Sunitha Devi",
				UserScore: 520,
				Content:   "I use cow dung compost mixed with neem cake. Works great!",
				CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
				Likes:     5,
			},
		},
		Likes:    12,
		HasPhoto: false,
	},
	{
		ID:        "post2",
		UserID:    "user3",
		UserName:  "Anil Varma",
		UserScore: 780,
		Title:     "Water conservation techniques",
		Content:   "Sharing my experience with drip irrigation system. Reduced water usage by 40%!",
		Category:  "General",
		CreatedAt: time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
		Replies:   []model.ForumReply{},
		Likes:     18,
		HasPhoto:  true,
	},
}

func ForumPosts() []model.ForumPost {
	out := make([]model.ForumPost, len(forumPosts))
	copy(out, forumPosts)
	return out
}
