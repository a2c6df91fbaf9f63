package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"musicpass-backend/catalog"
	"musicpass-backend/discovery"
	"musicpass-backend/marketplace"
	"musicpass-backend/models"
)

type EventHandler struct {
	catalog *catalog.Catalog
	market  marketplace.Marketplace
	logger  *log.Logger
}

func NewEventHandler(cat *catalog.Catalog, market marketplace.Marketplace, logger *log.Logger) *EventHandler {
	return &EventHandler{
		catalog: cat,
		market:  market,
		logger:  logger,
	}
}

// GetEvents filters the discovery list. Without q and genre parameters the
// session's last search is used.
func (h *EventHandler) GetEvents(c *gin.Context) {
	var req models.SearchEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	_, hasQuery := c.GetQuery("q")
	_, hasGenre := c.GetQuery("genre")
	if !hasQuery && !hasGenre {
		state := currentSession(c).State
		req.Query, req.Genre = state.Query, state.Genre
	}
	if req.Genre == "" {
		req.Genre = discovery.AllGenres
	}
	if !discovery.IsGenre(req.Genre) {
		handleError(c, fmt.Errorf("unknown genre %q: %w", req.Genre, models.ErrValidation))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":  req.Query,
		"genre":  req.Genre,
		"events": discovery.FilterEvents(h.catalog.Events(), req.Query, req.Genre),
	})
}

func (h *EventHandler) GetGenres(c *gin.Context) {
	c.JSON(http.StatusOK, discovery.Genres)
}

func (h *EventHandler) ToggleFavorite(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		handleError(c, err)
		return
	}
	if _, err := h.catalog.Event(id); err != nil {
		handleError(c, err)
		return
	}

	sess := currentSession(c)
	if err := h.market.ToggleFavorite(c.Request.Context(), sess.ID, id); err != nil {
		h.logger.Warn().Err(err).Int("event_id", id).Str("session_id", sess.ID).Msg("toggle favorite failed")
		handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"event_id": id, "status": "toggled"})
}

// SelectEvent acknowledges a tap on an event card. There is no event detail
// screen, so the selection is only logged.
func (h *EventHandler) SelectEvent(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		handleError(c, err)
		return
	}

	event, err := h.catalog.Event(id)
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info().Int("event_id", id).Str("artist", event.Artist).Str("session_id", currentSession(c).ID).Msg("event selected")

	c.JSON(http.StatusOK, event)
}
