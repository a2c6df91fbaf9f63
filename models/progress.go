package models

// UserProgress is the single, hardcoded reputation record.
type UserProgress struct {
	CurrentPoints   int    `json:"current_points" validate:"gte=0"`
	NextLevelPoints int    `json:"next_level_points" validate:"gt=0"`
	CurrentLevel    string `json:"current_level" validate:"required"`
	NextLevel       string `json:"next_level" validate:"required"`
}

// LevelSnapshot is UserProgress plus the computed bar.
type LevelSnapshot struct {
	UserProgress
	Percent         float64 `json:"percent"`
	PointsRemaining int     `json:"points_remaining"`
}

// ProfileRewards is the rewards tab payload.
type ProfileRewards struct {
	Level       LevelSnapshot      `json:"level"`
	Unlocked    []RewardView       `json:"unlocked"`
	Locked      []RewardView       `json:"locked"`
	Collections []ArtistCollection `json:"collections"`
	Labels      ProfileLabels      `json:"labels"`
}

type ProfileLabels struct {
	CurrentLevel string `json:"current_level"`
	NextLevel    string `json:"next_level"`
	Points       string `json:"points"`
	NFTs         string `json:"nfts"`
}
