package progression

import "musicpass-backend/models"

// LevelProgress is clamp(100*current/next, 0, 100). next must be positive;
// a non-positive next is treated as an already reached level.
func LevelProgress(current, next int) float64 {
	if next <= 0 {
		return 100
	}
	pct := 100 * float64(current) / float64(next)
	return min(max(pct, 0), 100)
}

// Snapshot computes the level bar for p.
func Snapshot(p models.UserProgress) models.LevelSnapshot {
	return models.LevelSnapshot{
		UserProgress:    p,
		Percent:         LevelProgress(p.CurrentPoints, p.NextLevelPoints),
		PointsRemaining: max(p.NextLevelPoints-p.CurrentPoints, 0),
	}
}
