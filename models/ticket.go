package models

import "github.com/shopspring/decimal"

// Ticket is an owned ticket. Rows are immutable once the catalog is loaded.
type Ticket struct {
	ID         int             `json:"id" db:"id" validate:"gt=0"`
	Artist     string          `json:"artist" db:"artist" validate:"required"`
	Event      string          `json:"event" db:"event_name" validate:"required"`
	Date       string          `json:"date" db:"event_date" validate:"required"`
	City       string          `json:"city" db:"city" validate:"required"`
	Venue      string          `json:"venue,omitempty" db:"venue"`
	Time       string          `json:"time,omitempty" db:"event_time"`
	Price      decimal.Decimal `json:"price" db:"price"`
	PriceLabel string          `json:"price_label,omitempty" db:"-"`
	Genre      string          `json:"genre" db:"genre"`
	ImageURL   string          `json:"image_url" db:"image_url"`
	Sellable   bool            `json:"sellable" db:"sellable"`
}

// GenreBucket groups tickets sharing a genre.
type GenreBucket struct {
	Genre   string   `json:"genre"`
	Tickets []Ticket `json:"tickets"`
}

// TicketDetail is the ticket screen payload.
type TicketDetail struct {
	Ticket       Ticket        `json:"ticket"`
	ArtistPoints int           `json:"artist_points"`
	Rewards      ArtistRewards `json:"rewards"`
	QRAvailable  bool          `json:"qr_available"`
	QRRevealed   bool          `json:"qr_revealed"`
}

// TicketQR carries the check-in payload rendered as a QR code.
type TicketQR struct {
	TicketID int    `json:"ticket_id"`
	Payload  string `json:"payload"`
}
