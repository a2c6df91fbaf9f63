// Package marketplace is the boundary to the services that would persist a
// favorite or list a ticket for resale. Neither exists yet.
package marketplace

import (
	"context"
	"fmt"

	"musicpass-backend/models"
)

type Marketplace interface {
	ToggleFavorite(ctx context.Context, sessionID string, eventID int) error
	ListForSale(ctx context.Context, sessionID string, ticketID int) error
}

// Unavailable rejects every call with models.ErrCollaboratorUnavailable.
type Unavailable struct{}

func (Unavailable) ToggleFavorite(_ context.Context, _ string, eventID int) error {
	return fmt.Errorf("toggle favorite for event %d: %w", eventID, models.ErrCollaboratorUnavailable)
}

func (Unavailable) ListForSale(_ context.Context, _ string, ticketID int) error {
	return fmt.Errorf("list ticket %d for sale: %w", ticketID, models.ErrCollaboratorUnavailable)
}
