package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"musicpass-backend/catalog"
	"musicpass-backend/locale"
	"musicpass-backend/models"
	"musicpass-backend/monitoring"
	"musicpass-backend/navigation"
	"musicpass-backend/session"
)

type SessionHandler struct {
	catalog *catalog.Catalog
	store   *session.Store
	issuer  *session.Issuer
	locales *locale.Bundle
	logger  *log.Logger
}

func NewSessionHandler(cat *catalog.Catalog, store *session.Store, issuer *session.Issuer, locales *locale.Bundle, logger *log.Logger) *SessionHandler {
	return &SessionHandler{
		catalog: cat,
		store:   store,
		issuer:  issuer,
		locales: locales,
		logger:  logger,
	}
}

// Login opens a session and moves it past the login screen. No credentials
// are checked.
func (h *SessionHandler) Login(c *gin.Context) {
	created := h.store.Create()

	sess, err := h.store.Apply(created.ID, navigation.Action{Kind: navigation.ActionLogin})
	monitoring.TrackTransition(string(navigation.ActionLogin), err)
	if err != nil {
		handleError(c, err)
		return
	}

	token, expiresAt, err := h.issuer.Issue(sess.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	monitoring.SetActiveSessions(h.store.Len())

	h.logger.Info().Str("session_id", sess.ID).Msg("session opened")

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Screen:    h.screen(c, sess.State),
	})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.screen(c, currentSession(c).State))
}

// ApplyAction runs one navigation action. A selected ticket must exist in
// the catalog.
func (h *SessionHandler) ApplyAction(c *gin.Context) {
	var req models.SessionActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	action := navigation.Action{
		Kind:     navigation.ActionKind(req.Action),
		Tab:      navigation.Screen(req.Tab),
		TicketID: req.TicketID,
		Query:    req.Query,
		Genre:    req.Genre,
	}

	if action.Kind == navigation.ActionSelectTicket && req.TicketID > 0 {
		if _, err := h.catalog.Ticket(req.TicketID); err != nil {
			handleError(c, err)
			return
		}
	}

	sess, err := h.store.Apply(currentSession(c).ID, action)
	monitoring.TrackTransition(req.Action, err)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.screen(c, sess.State))
}

var tabLabels = map[navigation.Screen]struct {
	message string
	icon    models.Icon
}{
	navigation.ScreenTickets:  {locale.TabTickets, models.IconTicket},
	navigation.ScreenDiscover: {locale.TabDiscover, models.IconSearch},
	navigation.ScreenRewards:  {locale.TabRewards, models.IconTrophy},
}

func (h *SessionHandler) screen(c *gin.Context, state navigation.State) models.ScreenResponse {
	loc := h.locales.Localizer(c.GetHeader("Accept-Language"))

	active := state.Screen
	if active == navigation.ScreenTicketDetail {
		active = navigation.ScreenTickets
	}

	nav := make([]models.NavItem, 0, len(navigation.Tabs))
	for _, tab := range navigation.Tabs {
		label := tabLabels[tab]
		nav = append(nav, models.NavItem{
			ID:     string(tab),
			Label:  loc.Text(label.message, nil),
			Icon:   label.icon,
			Active: tab == active,
		})
	}

	return models.ScreenResponse{
		Screen:     string(state.Screen),
		TicketID:   state.TicketID,
		QRRevealed: state.QRRevealed,
		Query:      state.Query,
		Genre:      state.Genre,
		Nav:        nav,
	}
}
