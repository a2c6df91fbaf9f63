package models

import "github.com/shopspring/decimal"

// Event is a row of the discovery catalog.
type Event struct {
	ID         int             `json:"id" db:"id" validate:"gt=0"`
	Artist     string          `json:"artist" db:"artist" validate:"required"`
	Event      string          `json:"event" db:"event_name" validate:"required"`
	Date       string          `json:"date" db:"event_date" validate:"required"`
	City       string          `json:"city" db:"city" validate:"required"`
	Venue      string          `json:"venue" db:"venue"`
	ImageURL   string          `json:"image_url" db:"image_url"`
	Genre      string          `json:"genre" db:"genre"`
	Price      decimal.Decimal `json:"price" db:"price"`
	PriceLabel string          `json:"price_label" db:"-"`
	Rating     float64         `json:"rating" db:"rating" validate:"gte=0,lte=5"`
	IsFavorite bool            `json:"is_favorite" db:"is_favorite"`
}

// SearchEventsRequest binds the discovery query string.
type SearchEventsRequest struct {
	Query string `form:"q"`
	Genre string `form:"genre"`
}
