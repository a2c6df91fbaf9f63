package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"musicpass-backend/catalog"
	"musicpass-backend/locale"
	"musicpass-backend/models"
	"musicpass-backend/progression"
	"musicpass-backend/rewards"
)

type RewardHandler struct {
	catalog *catalog.Catalog
	locales *locale.Bundle
}

func NewRewardHandler(cat *catalog.Catalog, locales *locale.Bundle) *RewardHandler {
	return &RewardHandler{
		catalog: cat,
		locales: locales,
	}
}

// GetArtistRewards returns the reward panel for an artist. The balance
// defaults to the artist's mock balance unless ?points= overrides it.
func (h *RewardHandler) GetArtistRewards(c *gin.Context) {
	artist := strings.TrimSpace(c.Param("artist"))

	var req models.ArtistRewardsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	points := rewards.PointsForArtist(artist)
	if req.Points != nil {
		points = *req.Points
	}

	loc := h.locales.Localizer(c.GetHeader("Accept-Language"))
	c.JSON(http.StatusOK, artistRewards(loc, artist, points))
}

func (h *RewardHandler) GetProfileRewards(c *gin.Context) {
	progress := h.catalog.Progress()
	unlocked, locked := rewards.Partition(rewards.Evaluate(h.catalog.ProfileRewards(), progress.CurrentPoints))
	loc := h.locales.Localizer(c.GetHeader("Accept-Language"))

	c.JSON(http.StatusOK, models.ProfileRewards{
		Level:       progression.Snapshot(progress),
		Unlocked:    unlocked,
		Locked:      locked,
		Collections: catalog.GroupNFTsByArtist(h.catalog.NFTs()),
		Labels: models.ProfileLabels{
			CurrentLevel: loc.Text(locale.LevelCurrent, nil),
			NextLevel:    loc.Text(locale.LevelNext, nil),
			Points: loc.Text(locale.LevelPoints, map[string]interface{}{
				"Current": progress.CurrentPoints,
				"Next":    progress.NextLevelPoints,
			}),
			NFTs: loc.Text(locale.NFTsTitle, nil),
		},
	})
}

func (h *RewardHandler) GetNFTs(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.GroupNFTsByArtist(h.catalog.NFTs()))
}

func artistRewards(loc *locale.Localizer, artist string, points int) models.ArtistRewards {
	views := rewards.ComputeRewards(artist, points)
	unlocked, locked := rewards.Partition(views)
	data := map[string]interface{}{"Artist": artist, "Points": points}

	return models.ArtistRewards{
		Artist:   artist,
		Points:   points,
		Unlocked: unlocked,
		Locked:   locked,
		Summary:  rewards.Summary(views),
		Labels: models.RewardLabels{
			Title:         loc.Text(locale.RewardsTitle, data),
			Points:        loc.Text(locale.RewardsPoints, data),
			UnlockedTitle: loc.Text(locale.RewardsUnlockedTitle, nil),
			LockedTitle:   loc.Text(locale.RewardsLockedTitle, nil),
			Active:        loc.Text(locale.RewardActive, nil),
			Special:       loc.Text(locale.RewardSpecial, nil),
			ReadyToUnlock: loc.Text(locale.RewardReady, nil),
			Hint:          loc.Text(locale.RewardsHint, data),
		},
	}
}
