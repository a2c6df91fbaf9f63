package models

import "errors"

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrSessionNotFound = errors.New("session not found")
)

var (
	ErrInvalidTransition = errors.New("invalid navigation transition")
	ErrNotSellable       = errors.New("ticket is not owned by this session")
	ErrQRHidden          = errors.New("qr code has not been revealed")
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrValidation   = errors.New("validation error")
)

var (
	ErrCollaboratorUnavailable = errors.New("collaborator not available")
)
