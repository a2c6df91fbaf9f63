package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"musicpass-backend/catalog"
	"musicpass-backend/contracts"
	"musicpass-backend/models"
)

// CheckinHandler serves the entry QR code of an owned ticket.
type CheckinHandler struct {
	catalog *catalog.Catalog
	logger  *log.Logger
}

func NewCheckinHandler(cat *catalog.Catalog, logger *log.Logger) *CheckinHandler {
	return &CheckinHandler{
		catalog: cat,
		logger:  logger,
	}
}

// GetTicketQR returns the payload only while the session has the QR of this
// ticket revealed on the detail screen.
func (h *CheckinHandler) GetTicketQR(c *gin.Context) {
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
	if !qrRevealed(sess, id) {
		handleError(c, fmt.Errorf("ticket %d: %w", id, models.ErrQRHidden))
		return
	}

	h.logger.Debug().Int("ticket_id", id).Str("session_id", sess.ID).Msg("qr payload served")

	c.JSON(http.StatusOK, models.TicketQR{
		TicketID: id,
		Payload:  contracts.TicketQRPayload(id, sess.ID),
	})
}
