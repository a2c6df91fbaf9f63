// Package rewards annotates reward definitions against a point balance.
// Every function is pure: same inputs, same ordered output.
package rewards

import (
	"musicpass-backend/models"
	"musicpass-backend/textmatch"
)

const defaultArtistPoints = 500

var baseRewards = []models.Reward{
	{ID: "1", Title: "10% de Desconto em Merch", Description: "Desconto exclusivo na loja oficial", Icon: models.IconGift, State: models.RewardUnlocked},
	{ID: "2", Title: "Badge Exclusivo", Description: "Badge especial no seu perfil", Icon: models.IconBadge, State: models.RewardUnlocked},
	{ID: "4", Title: "Votar no Setlist", Description: "Ajude a escolher as músicas do show", Icon: models.IconMusic, State: models.RewardLocked, PointsRequired: 1500},
	{ID: "5", Title: "Audição Antecipada", Description: "Ouça o novo álbum antes do lançamento", Icon: models.IconDiscAlbum, State: models.RewardLocked, PointsRequired: 2000},
	{ID: "3", Title: "Meet & Greet", Description: "Encontro exclusivo com o artista", Icon: models.IconMic, State: models.RewardLocked, PointsRequired: 1200, IsSpecial: true},
}

type artistTrigger struct {
	match   string
	points  int
	rewards []models.Reward
}

// Triggers are checked in order; every matching trigger contributes.
var artistTriggers = []artistTrigger{
	{
		match:  "pitty",
		points: 850,
		rewards: []models.Reward{
			{ID: "6", Title: "Backstage VIP", Description: "Acesso exclusivo ao backstage", Icon: models.IconStar, State: models.RewardLocked, PointsRequired: 2500, IsSpecial: true},
		},
	},
	{
		match:  "titãs",
		points: 650,
		rewards: []models.Reward{
			{ID: "7", Title: "Sessão de Fotos", Description: "Foto oficial com a banda", Icon: models.IconTrophy, State: models.RewardLocked, PointsRequired: 1800, IsSpecial: true},
		},
	},
}

// Definitions returns the base rewards followed by every artist-specific
// reward whose trigger appears in artistName.
func Definitions(artistName string) []models.Reward {
	defs := append([]models.Reward(nil), baseRewards...)
	for _, t := range artistTriggers {
		if textmatch.Contains(artistName, t.match) {
			defs = append(defs, t.rewards...)
		}
	}
	return defs
}

// ComputeRewards evaluates the artist's reward list against userPoints.
func ComputeRewards(artistName string, userPoints int) []models.RewardView {
	return Evaluate(Definitions(artistName), userPoints)
}

// Evaluate annotates defs in order.
func Evaluate(defs []models.Reward, userPoints int) []models.RewardView {
	views := make([]models.RewardView, 0, len(defs))
	for _, d := range defs {
		views = append(views, evaluate(d, userPoints))
	}
	return views
}

func evaluate(r models.Reward, points int) models.RewardView {
	reached := r.PointsRequired > 0 && points >= r.PointsRequired

	view := models.RewardView{
		Reward:   r,
		Unlocked: r.State == models.RewardUnlocked || reached,
	}

	if r.State == models.RewardUnlocked {
		view.ProgressPercent = 100
		return view
	}

	view.ReadyToUnlock = reached
	view.ProgressPercent = ProgressPercent(points, r.PointsRequired)
	return view
}

// ProgressPercent is min(100, 100*points/max(threshold, 1)), floored at 0.
func ProgressPercent(points, threshold int) float64 {
	pct := 100 * float64(points) / float64(max(threshold, 1))
	return min(max(pct, 0), 100)
}

// Partition splits views by definition state, keeping relative order.
func Partition(views []models.RewardView) (unlocked, locked []models.RewardView) {
	unlocked = []models.RewardView{}
	locked = []models.RewardView{}
	for _, v := range views {
		if v.State == models.RewardUnlocked {
			unlocked = append(unlocked, v)
		} else {
			locked = append(locked, v)
		}
	}
	return unlocked, locked
}

// Summary is the completion bar: unlocked definitions over all definitions.
func Summary(views []models.RewardView) models.RewardSummary {
	s := models.RewardSummary{Total: len(views)}
	for _, v := range views {
		if v.State == models.RewardUnlocked {
			s.Unlocked++
		}
	}
	if s.Total > 0 {
		s.Percent = 100 * float64(s.Unlocked) / float64(s.Total)
	}
	return s
}

// PointsForArtist is the mock per-artist balance shown on a ticket.
func PointsForArtist(artistName string) int {
	for _, t := range artistTriggers {
		if textmatch.Contains(artistName, t.match) {
			return t.points
		}
	}
	return defaultArtistPoints
}
