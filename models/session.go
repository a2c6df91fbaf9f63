package models

import "time"

// SessionActionRequest is a navigation action sent by the front end.
type SessionActionRequest struct {
	Action   string `json:"action" binding:"required,oneof=select_tab select_ticket back toggle_qr search"`
	Tab      string `json:"tab"`
	TicketID int    `json:"ticket_id"`
	Query    string `json:"query"`
	Genre    string `json:"genre"`
}

// NavItem is one entry of the bottom navigation bar.
type NavItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Icon   Icon   `json:"icon"`
	Active bool   `json:"active"`
}

// ScreenResponse describes what the front end should render.
type ScreenResponse struct {
	Screen     string    `json:"screen"`
	TicketID   int       `json:"ticket_id,omitempty"`
	QRRevealed bool      `json:"qr_revealed"`
	Query      string    `json:"query,omitempty"`
	Genre      string    `json:"genre,omitempty"`
	Nav        []NavItem `json:"nav"`
}

// LoginResponse is returned by the login action.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Screen    ScreenResponse `json:"screen"`
}
