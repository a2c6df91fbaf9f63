// Package catalog holds the immutable, process-lifetime data the screens
// render: owned tickets, discovery events, collectibles, profile rewards and
// the user's progression record.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"musicpass-backend/models"
)

type Catalog struct {
	tickets        []models.Ticket
	events         []models.Event
	nfts           []models.NFT
	profileRewards []models.Reward
	progress       models.UserProgress
}

// Data is the raw material a Catalog is built from.
type Data struct {
	Tickets        []models.Ticket
	Events         []models.Event
	NFTs           []models.NFT
	ProfileRewards []models.Reward
	Progress       models.UserProgress
}

// New validates every row and builds a Catalog. Slices are copied so later
// changes to data do not leak in.
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		tickets:        append([]models.Ticket(nil), data.Tickets...),
		events:         append([]models.Event(nil), data.Events...),
		nfts:           append([]models.NFT(nil), data.NFTs...),
		profileRewards: append([]models.Reward(nil), data.ProfileRewards...),
		progress:       data.Progress,
	}

	for i := range c.tickets {
		if c.tickets[i].PriceLabel == "" {
			c.tickets[i].PriceLabel = FormatPrice(c.tickets[i].Price)
		}
	}
	for i := range c.events {
		if c.events[i].PriceLabel == "" {
			c.events[i].PriceLabel = FormatPrice(c.events[i].Price)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks struct constraints on every row plus id uniqueness.
func (c *Catalog) Validate() error {
	v := newValidator()

	ticketIDs := make(map[int]struct{}, len(c.tickets))
	for _, t := range c.tickets {
		if err := v.Struct(t); err != nil {
			return fmt.Errorf("%w: ticket %d: %v", models.ErrValidation, t.ID, err)
		}
		if _, dup := ticketIDs[t.ID]; dup {
			return fmt.Errorf("%w: duplicate ticket id %d", models.ErrValidation, t.ID)
		}
		ticketIDs[t.ID] = struct{}{}
	}

	eventIDs := make(map[int]struct{}, len(c.events))
	for _, e := range c.events {
		if err := v.Struct(e); err != nil {
			return fmt.Errorf("%w: event %d: %v", models.ErrValidation, e.ID, err)
		}
		if _, dup := eventIDs[e.ID]; dup {
			return fmt.Errorf("%w: duplicate event id %d", models.ErrValidation, e.ID)
		}
		eventIDs[e.ID] = struct{}{}
	}

	for _, n := range c.nfts {
		if err := v.Struct(n); err != nil {
			return fmt.Errorf("%w: nft %d: %v", models.ErrValidation, n.ID, err)
		}
	}

	for _, r := range c.profileRewards {
		if err := v.Struct(r); err != nil {
			return fmt.Errorf("%w: reward %s: %v", models.ErrValidation, r.ID, err)
		}
	}

	if err := v.Struct(c.progress); err != nil {
		return fmt.Errorf("%w: progress: %v", models.ErrValidation, err)
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rarity", func(fl validator.FieldLevel) bool {
		return models.Rarity(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return models.Icon(fl.Field().String()).Valid()
	})
	return v
}

func (c *Catalog) Tickets() []models.Ticket {
	return append([]models.Ticket(nil), c.tickets...)
}

func (c *Catalog) Ticket(id int) (models.Ticket, error) {
	for _, t := range c.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, fmt.Errorf("ticket %d: %w", id, models.ErrTicketNotFound)
}

func (c *Catalog) Events() []models.Event {
	return append([]models.Event(nil), c.events...)
}

func (c *Catalog) Event(id int) (models.Event, error) {
	for _, e := range c.events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, fmt.Errorf("event %d: %w", id, models.ErrEventNotFound)
}

func (c *Catalog) NFTs() []models.NFT {
	return append([]models.NFT(nil), c.nfts...)
}

func (c *Catalog) ProfileRewards() []models.Reward {
	return append([]models.Reward(nil), c.profileRewards...)
}

func (c *Catalog) Progress() models.UserProgress {
	return c.progress
}
