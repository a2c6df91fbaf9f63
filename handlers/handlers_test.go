package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"musicpass-backend/catalog"
	"musicpass-backend/locale"
	"musicpass-backend/logging"
	"musicpass-backend/marketplace"
	"musicpass-backend/models"
	"musicpass-backend/session"
)

type mockMarket struct {
	mock.Mock
}

func (m *mockMarket) ToggleFavorite(ctx context.Context, sessionID string, eventID int) error {
	return m.Called(ctx, sessionID, eventID).Error(0)
}

func (m *mockMarket) ListForSale(ctx context.Context, sessionID string, ticketID int) error {
	return m.Called(ctx, sessionID, ticketID).Error(0)
}

type testServer struct {
	router http.Handler
	store  *session.Store
}

func setupServer(t *testing.T, market marketplace.Marketplace) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	locales, err := locale.NewBundle("pt-BR")
	require.NoError(t, err)

	store := session.NewStore()
	router := NewRouter(Dependencies{
		Catalog:        catalog.Default(),
		Store:          store,
		Issuer:         session.NewIssuer("handler-test-secret", time.Hour),
		Market:         market,
		Locales:        locales,
		Logger:         logging.NewWriter("error", io.Discard),
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	return &testServer{router: router, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/session/login", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testServer) act(t *testing.T, token string, action models.SessionActionRequest) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodPost, "/api/v1/session/actions", token, action)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// --- Session ---

func TestLogin(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})

	w := s.do(t, http.MethodPost, "/api/v1/session/login", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.LoginResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, "tickets", resp.Screen.Screen)
	require.Len(t, resp.Screen.Nav, 3)
	assert.Equal(t, "Ingressos", resp.Screen.Nav[0].Label)
	assert.True(t, resp.Screen.Nav[0].Active)
	assert.False(t, resp.Screen.Nav[1].Active)
	assert.Equal(t, 1, s.store.Len())
}

func TestRequireSession(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	foreign, _, err := session.NewIssuer("some-other-secret", time.Hour).Issue("unknown")
	require.NoError(t, err)
	orphan, _, err := session.NewIssuer("handler-test-secret", time.Hour).Issue("swept-session")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage", "abc.def.ghi"},
		{"foreign signature", foreign},
		{"unknown session", orphan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/api/v1/tickets", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetSession_Localized(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ScreenResponse](t, w)
	assert.Equal(t, []string{"Tickets", "Discover", "Rewards"}, []string{resp.Nav[0].Label, resp.Nav[1].Label, resp.Nav[2].Label})
}

func TestApplyAction(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	tests := []struct {
		name   string
		action models.SessionActionRequest
		code   int
		screen string
	}{
		{"back from tickets", models.SessionActionRequest{Action: "back"}, http.StatusConflict, ""},
		{"unknown ticket", models.SessionActionRequest{Action: "select_ticket", TicketID: 99}, http.StatusNotFound, ""},
		{"unknown action", models.SessionActionRequest{Action: "dance"}, http.StatusBadRequest, ""},
		{"bad tab", models.SessionActionRequest{Action: "select_tab", Tab: "settings"}, http.StatusBadRequest, ""},
		{"to discover", models.SessionActionRequest{Action: "select_tab", Tab: "discover"}, http.StatusOK, "discover"},
		{"search", models.SessionActionRequest{Action: "search", Query: "ludmilla"}, http.StatusOK, "discover"},
		{"back from discover", models.SessionActionRequest{Action: "back"}, http.StatusOK, "tickets"},
		{"open ticket", models.SessionActionRequest{Action: "select_ticket", TicketID: 9}, http.StatusOK, "ticket_detail"},
		{"tab from detail", models.SessionActionRequest{Action: "select_tab", Tab: "rewards"}, http.StatusConflict, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.act(t, token, tt.action)
			require.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.screen != "" {
				assert.Equal(t, tt.screen, decode[models.ScreenResponse](t, w).Screen)
			}
		})
	}
}

// --- Tickets ---

func TestGetTickets(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	w := s.do(t, http.MethodGet, "/api/v1/tickets", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	buckets := decode[[]models.GenreBucket](t, w)
	require.Len(t, buckets, 1)
	assert.Equal(t, "Rock", buckets[0].Genre)
	require.Len(t, buckets[0].Tickets, 2)
	assert.Equal(t, "Pitty", buckets[0].Tickets[0].Artist)
	assert.Equal(t, "Titãs", buckets[0].Tickets[1].Artist)
}

func TestGetTicket(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	w := s.do(t, http.MethodGet, "/api/v1/tickets/8", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	detail := decode[models.TicketDetail](t, w)
	assert.Equal(t, "Pitty", detail.Ticket.Artist)
	assert.Equal(t, "R$ 100", detail.Ticket.PriceLabel)
	assert.Equal(t, 850, detail.ArtistPoints)
	assert.True(t, detail.QRAvailable)
	assert.False(t, detail.QRRevealed)
	assert.Equal(t, "Recompensas do Pitty", detail.Rewards.Labels.Title)
	assert.Equal(t, "850 pontos", detail.Rewards.Labels.Points)
	assert.Len(t, detail.Rewards.Unlocked, 2)
	require.Len(t, detail.Rewards.Locked, 4)
	assert.Equal(t, "Backstage VIP", detail.Rewards.Locked[3].Title)
	assert.Equal(t, 6, detail.Rewards.Summary.Total)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/tickets/99", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/tickets/abc", token, nil).Code)
}

func TestTicketQR(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/tickets/8/qr", token, nil).Code)

	require.Equal(t, http.StatusOK, s.act(t, token, models.SessionActionRequest{Action: "select_ticket", TicketID: 8}).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/tickets/8/qr", token, nil).Code)

	require.Equal(t, http.StatusOK, s.act(t, token, models.SessionActionRequest{Action: "toggle_qr"}).Code)

	w := s.do(t, http.MethodGet, "/api/v1/tickets/8/qr", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	qr := decode[models.TicketQR](t, w)
	assert.Equal(t, 8, qr.TicketID)
	assert.True(t, strings.HasPrefix(qr.Payload, "MUSICPASS:8:"))

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/tickets/9/qr", token, nil).Code)

	detail := decode[models.TicketDetail](t, s.do(t, http.MethodGet, "/api/v1/tickets/8", token, nil))
	assert.True(t, detail.QRRevealed)

	require.Equal(t, http.StatusOK, s.act(t, token, models.SessionActionRequest{Action: "back"}).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/tickets/8/qr", token, nil).Code)
}

func TestSellTicket(t *testing.T) {
	t.Run("no marketplace", func(t *testing.T) {
		s := setupServer(t, marketplace.Unavailable{})
		token := s.login(t)

		assert.Equal(t, http.StatusNotImplemented, s.do(t, http.MethodPost, "/api/v1/tickets/8/sell", token, nil).Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/tickets/99/sell", token, nil).Code)
	})

	t.Run("listed", func(t *testing.T) {
		market := &mockMarket{}
		s := setupServer(t, market)
		token := s.login(t)
		market.On("ListForSale", mock.Anything, mock.AnythingOfType("string"), 9).Return(nil).Once()

		w := s.do(t, http.MethodPost, "/api/v1/tickets/9/sell", token, nil)

		assert.Equal(t, http.StatusAccepted, w.Code)
		market.AssertExpectations(t)
	})
}

// --- Events ---

func TestGetEvents(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	type eventsResponse struct {
		Query  string         `json:"query"`
		Genre  string         `json:"genre"`
		Events []models.Event `json:"events"`
	}

	all := decode[eventsResponse](t, s.do(t, http.MethodGet, "/api/v1/events", token, nil))
	assert.Len(t, all.Events, 4)
	assert.Equal(t, "Todos", all.Genre)

	found := decode[eventsResponse](t, s.do(t, http.MethodGet, "/api/v1/events?q=ludmilla&genre=Todos", token, nil))
	require.Len(t, found.Events, 1)
	assert.Equal(t, "Numanice World Tour", found.Events[0].Event)

	pop := decode[eventsResponse](t, s.do(t, http.MethodGet, "/api/v1/events?genre=Pop", token, nil))
	assert.Len(t, pop.Events, 2)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/events?genre=Jazz", token, nil).Code)
}

func TestGetEvents_UsesStoredSearch(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	require.Equal(t, http.StatusOK, s.act(t, token, models.SessionActionRequest{Action: "select_tab", Tab: "discover"}).Code)
	require.Equal(t, http.StatusOK, s.act(t, token, models.SessionActionRequest{Action: "search", Query: "salvador", Genre: "Axé"}).Code)

	w := s.do(t, http.MethodGet, "/api/v1/events", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Events []models.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Ivete Sangalo", resp.Events[0].Artist)
}

func TestGetGenres(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	w := s.do(t, http.MethodGet, "/api/v1/events/genres", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Todos", "Pop", "Hip-Hop", "Rock", "Eletrônica", "Axé", "MPB"}, decode[[]string](t, w))
}

func TestToggleFavorite(t *testing.T) {
	t.Run("no marketplace", func(t *testing.T) {
		s := setupServer(t, marketplace.Unavailable{})
		token := s.login(t)

		assert.Equal(t, http.StatusNotImplemented, s.do(t, http.MethodPost, "/api/v1/events/2/favorite", token, nil).Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/events/42/favorite", token, nil).Code)
	})

	t.Run("toggled", func(t *testing.T) {
		market := &mockMarket{}
		s := setupServer(t, market)
		token := s.login(t)
		market.On("ToggleFavorite", mock.Anything, mock.AnythingOfType("string"), 2).Return(nil).Once()

		assert.Equal(t, http.StatusAccepted, s.do(t, http.MethodPost, "/api/v1/events/2/favorite", token, nil).Code)
		market.AssertExpectations(t)
	})
}

func TestSelectEvent(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	w := s.do(t, http.MethodPost, "/api/v1/events/3/select", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Projota", decode[models.Event](t, w).Artist)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/events/42/select", token, nil).Code)
}

// --- Rewards ---

func TestGetArtistRewards(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	anitta := decode[models.ArtistRewards](t, s.do(t, http.MethodGet, "/api/v1/rewards/artists/Anitta", token, nil))
	assert.Equal(t, 500, anitta.Points)
	assert.Equal(t, 5, anitta.Summary.Total)
	assert.Equal(t, 40.0, anitta.Summary.Percent)

	titas := decode[models.ArtistRewards](t, s.do(t, http.MethodGet, "/api/v1/rewards/artists/Titas?points=1900", token, nil))
	assert.Equal(t, 1900, titas.Points)
	require.Len(t, titas.Locked, 4)
	photo := titas.Locked[3]
	assert.Equal(t, "Sessão de Fotos", photo.Title)
	assert.True(t, photo.Unlocked)
	assert.True(t, photo.ReadyToUnlock)
	assert.Equal(t, 100.0, photo.ProgressPercent)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/rewards/artists/Pitty?points=-1", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/rewards/artists/Pitty?points=lots", token, nil).Code)
}

func TestGetProfileRewards(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	w := s.do(t, http.MethodGet, "/api/v1/rewards/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	profile := decode[models.ProfileRewards](t, w)
	assert.Equal(t, 75.0, profile.Level.Percent)
	assert.Equal(t, 250, profile.Level.PointsRemaining)
	assert.Len(t, profile.Unlocked, 3)
	assert.Len(t, profile.Locked, 3)
	require.Len(t, profile.Collections, 2)
	assert.Equal(t, "Pitty", profile.Collections[0].Artist)
	assert.Equal(t, "750 / 1000 Pontos", profile.Labels.Points)
}

func TestGetNFTs(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	token := s.login(t)

	w := s.do(t, http.MethodGet, "/api/v1/nfts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	collections := decode[[]models.ArtistCollection](t, w)
	require.Len(t, collections, 2)
	assert.Len(t, collections[0].NFTs, 4)
	assert.Equal(t, "Titãs", collections[1].Artist)
	assert.True(t, strings.HasPrefix(collections[1].NFTs[0].TokenID, "0x"))
}

// --- Infra ---

func TestHealthAndMetrics(t *testing.T) {
	s := setupServer(t, marketplace.Unavailable{})
	s.login(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessions":1`)

	w = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "musicpass_http_requests_total")
}
