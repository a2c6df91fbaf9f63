// Package navigation is the per-session screen state machine. Apply is pure;
// callers own the state and decide where it lives.
package navigation

import (
	"fmt"

	"musicpass-backend/discovery"
	"musicpass-backend/models"
)

type Screen string

const (
	ScreenLoggedOut    Screen = "logged_out"
	ScreenTickets      Screen = "tickets"
	ScreenDiscover     Screen = "discover"
	ScreenRewards      Screen = "rewards"
	ScreenTicketDetail Screen = "ticket_detail"
)

// Tabs are the mutually exclusive top-level screens, in bottom bar order.
var Tabs = []Screen{ScreenTickets, ScreenDiscover, ScreenRewards}

func (s Screen) IsTab() bool {
	switch s {
	case ScreenTickets, ScreenDiscover, ScreenRewards:
		return true
	}
	return false
}

type ActionKind string

const (
	ActionLogin        ActionKind = "login"
	ActionSelectTab    ActionKind = "select_tab"
	ActionSelectTicket ActionKind = "select_ticket"
	ActionBack         ActionKind = "back"
	ActionToggleQR     ActionKind = "toggle_qr"
	ActionSearch       ActionKind = "search"
)

type Action struct {
	Kind     ActionKind
	Tab      Screen
	TicketID int
	Query    string
	Genre    string
}

// State is everything a client's screen depends on. TicketID and QRRevealed
// are only meaningful on ScreenTicketDetail. Query and Genre are the last
// discovery search and survive tab switches.
type State struct {
	Screen     Screen
	TicketID   int
	QRRevealed bool
	Query      string
	Genre      string
}

func Initial() State {
	return State{Screen: ScreenLoggedOut, Genre: discovery.AllGenres}
}

// Apply returns the state reached from s by a. Rejected actions leave s
// untouched and return an error wrapping models.ErrInvalidTransition or, for
// malformed arguments, models.ErrValidation.
func Apply(s State, a Action) (State, error) {
	switch a.Kind {
	case ActionLogin:
		if s.Screen != ScreenLoggedOut {
			return s, reject(s, a)
		}
		s.Screen = ScreenTickets
		return s, nil

	case ActionSelectTab:
		if !s.Screen.IsTab() {
			return s, reject(s, a)
		}
		if !a.Tab.IsTab() {
			return s, fmt.Errorf("unknown tab %q: %w", a.Tab, models.ErrValidation)
		}
		s.Screen = a.Tab
		return s, nil

	case ActionSelectTicket:
		if s.Screen != ScreenTickets {
			return s, reject(s, a)
		}
		if a.TicketID <= 0 {
			return s, fmt.Errorf("ticket id %d: %w", a.TicketID, models.ErrValidation)
		}
		s.Screen = ScreenTicketDetail
		s.TicketID = a.TicketID
		s.QRRevealed = false
		return s, nil

	case ActionBack:
		switch s.Screen {
		case ScreenTicketDetail, ScreenDiscover:
			s.Screen = ScreenTickets
			s.TicketID = 0
			s.QRRevealed = false
			return s, nil
		}
		return s, reject(s, a)

	case ActionToggleQR:
		if s.Screen != ScreenTicketDetail {
			return s, reject(s, a)
		}
		s.QRRevealed = !s.QRRevealed
		return s, nil

	case ActionSearch:
		if s.Screen != ScreenDiscover {
			return s, reject(s, a)
		}
		genre := a.Genre
		if genre == "" {
			genre = discovery.AllGenres
		}
		if !discovery.IsGenre(genre) {
			return s, fmt.Errorf("unknown genre %q: %w", genre, models.ErrValidation)
		}
		s.Query = a.Query
		s.Genre = genre
		return s, nil
	}

	return s, fmt.Errorf("unknown action %q: %w", a.Kind, models.ErrValidation)
}

func reject(s State, a Action) error {
	return fmt.Errorf("%s from %s: %w", a.Kind, s.Screen, models.ErrInvalidTransition)
}
