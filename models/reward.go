package models

// RewardState tells whether a reward is granted unconditionally or gated.
type RewardState string

const (
	RewardUnlocked RewardState = "unlocked"
	RewardLocked   RewardState = "locked"
)

// Reward is a reward definition. PointsRequired of zero means no threshold.
type Reward struct {
	ID             string      `json:"id" validate:"required"`
	Title          string      `json:"title" validate:"required"`
	Description    string      `json:"description,omitempty"`
	Icon           Icon        `json:"icon" validate:"icon"`
	State          RewardState `json:"state" validate:"oneof=unlocked locked"`
	PointsRequired int         `json:"points_required,omitempty" validate:"gte=0"`
	IsSpecial      bool        `json:"is_special,omitempty"`
}

// RewardView is a reward annotated against a point balance.
type RewardView struct {
	Reward
	Unlocked        bool    `json:"unlocked"`
	ReadyToUnlock   bool    `json:"ready_to_unlock"`
	ProgressPercent float64 `json:"progress_percent"`
}

// RewardSummary is the completion bar under the reward lists.
type RewardSummary struct {
	Unlocked int     `json:"unlocked"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
}

// ArtistRewards is the partitioned reward panel for one artist.
type ArtistRewards struct {
	Artist   string        `json:"artist"`
	Points   int           `json:"points"`
	Unlocked []RewardView  `json:"unlocked"`
	Locked   []RewardView  `json:"locked"`
	Summary  RewardSummary `json:"summary"`
	Labels   RewardLabels  `json:"labels"`
}

// RewardLabels are the localized strings the panel renders.
type RewardLabels struct {
	Title         string `json:"title"`
	Points        string `json:"points"`
	UnlockedTitle string `json:"unlocked_title"`
	LockedTitle   string `json:"locked_title"`
	Active        string `json:"active"`
	Special       string `json:"special"`
	ReadyToUnlock string `json:"ready_to_unlock"`
	Hint          string `json:"hint"`
}

// ArtistRewardsRequest binds the optional point override.
type ArtistRewardsRequest struct {
	Points *int `form:"points" binding:"omitempty,gte=0"`
}
