package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"musicpass-backend/catalog"
	"musicpass-backend/locale"
	"musicpass-backend/marketplace"
	"musicpass-backend/models"
	"musicpass-backend/navigation"
	"musicpass-backend/rewards"
	"musicpass-backend/session"
)

type TicketHandler struct {
	catalog *catalog.Catalog
	market  marketplace.Marketplace
	locales *locale.Bundle
	logger  *log.Logger
}

func NewTicketHandler(cat *catalog.Catalog, market marketplace.Marketplace, locales *locale.Bundle, logger *log.Logger) *TicketHandler {
	return &TicketHandler{
		catalog: cat,
		market:  market,
		locales: locales,
		logger:  logger,
	}
}

// GetTickets lists the owned tickets grouped by genre.
func (h *TicketHandler) GetTickets(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.GroupTicketsByGenre(h.catalog.Tickets()))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		handleError(c, err)
		return
	}

	ticket, err := h.catalog.Ticket(id)
	if err != nil {
		handleError(c, err)
		return
	}

	points := rewards.PointsForArtist(ticket.Artist)
	loc := h.locales.Localizer(c.GetHeader("Accept-Language"))

	c.JSON(http.StatusOK, models.TicketDetail{
		Ticket:       ticket,
		ArtistPoints: points,
		Rewards:      artistRewards(loc, ticket.Artist, points),
		QRAvailable:  ticket.Sellable,
		QRRevealed:   qrRevealed(currentSession(c), id),
	})
}

// SellTicket forwards a resale listing to the marketplace.
func (h *TicketHandler) SellTicket(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		handleError(c, err)
		return
	}

	ticket, err := h.catalog.Ticket(id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !ticket.Sellable {
		handleError(c, fmt.Errorf("ticket %d: %w", id, models.ErrNotSellable))
		return
	}

	sess := currentSession(c)
	if err := h.market.ListForSale(c.Request.Context(), sess.ID, id); err != nil {
		h.logger.Warn().Err(err).Int("ticket_id", id).Str("session_id", sess.ID).Msg("sell ticket failed")
		handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"ticket_id": id, "status": "listed"})
}

func qrRevealed(sess session.Session, ticketID int) bool {
	return sess.State.Screen == navigation.ScreenTicketDetail &&
		sess.State.TicketID == ticketID &&
		sess.State.QRRevealed
}

func paramID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s %q is not a positive integer: %w", name, c.Param(name), models.ErrValidation)
	}
	return id, nil
}
