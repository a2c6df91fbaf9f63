package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"musicpass-backend/contracts"
	"musicpass-backend/models"
)

const (
	selectTicketsQuery = `
		SELECT id, artist, event_name, event_date, city, venue, event_time, price::text, genre, image_url, sellable
		FROM tickets
		ORDER BY position, id
	`
	selectEventsQuery = `
		SELECT id, artist, event_name, event_date, city, venue, image_url, genre, price::text, rating, is_favorite
		FROM events
		ORDER BY position, id
	`
	selectNFTsQuery = `
		SELECT id, artist, name, description, image_url, rarity, collection, mint_date, serial
		FROM nfts
		ORDER BY position, id
	`
)

// Connect opens a pool and checks it answers.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping catalog database: %w", err)
	}

	return pool, nil
}

// LoadFromPostgres reads a one-time snapshot of tickets, events and NFTs.
// Profile rewards and progression come from base, which the database does not
// carry. Nothing is ever written back.
func LoadFromPostgres(ctx context.Context, pool *pgxpool.Pool, base Data) (*Catalog, error) {
	tickets, err := loadTickets(ctx, pool)
	if err != nil {
		return nil, err
	}

	events, err := loadEvents(ctx, pool)
	if err != nil {
		return nil, err
	}

	nfts, err := loadNFTs(ctx, pool)
	if err != nil {
		return nil, err
	}

	base.Tickets = tickets
	base.Events = events
	base.NFTs = nfts

	return New(base)
}

func loadTickets(ctx context.Context, pool *pgxpool.Pool) ([]models.Ticket, error) {
	rows, err := pool.Query(ctx, selectTicketsQuery)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}

	tickets, err := pgx.CollectRows(rows, scanTicket)
	if err != nil {
		return nil, fmt.Errorf("scan tickets: %w", err)
	}

	return tickets, nil
}

func loadEvents(ctx context.Context, pool *pgxpool.Pool) ([]models.Event, error) {
	rows, err := pool.Query(ctx, selectEventsQuery)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	events, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}

	return events, nil
}

func loadNFTs(ctx context.Context, pool *pgxpool.Pool) ([]models.NFT, error) {
	rows, err := pool.Query(ctx, selectNFTsQuery)
	if err != nil {
		return nil, fmt.Errorf("query nfts: %w", err)
	}

	nfts, err := pgx.CollectRows(rows, scanNFT)
	if err != nil {
		return nil, fmt.Errorf("scan nfts: %w", err)
	}

	return nfts, nil
}

// scanTicket follows the column order of selectTicketsQuery.
func scanTicket(row pgx.CollectableRow) (models.Ticket, error) {
	var t models.Ticket
	var price string
	if err := row.Scan(
		&t.ID,
		&t.Artist,
		&t.Event,
		&t.Date,
		&t.City,
		&t.Venue,
		&t.Time,
		&price,
		&t.Genre,
		&t.ImageURL,
		&t.Sellable,
	); err != nil {
		return t, err
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return t, fmt.Errorf("ticket %d price %q: %w", t.ID, price, models.ErrValidation)
	}
	t.Price = amount
	return t, nil
}

// scanEvent follows the column order of selectEventsQuery.
func scanEvent(row pgx.CollectableRow) (models.Event, error) {
	var e models.Event
	var price string
	if err := row.Scan(
		&e.ID,
		&e.Artist,
		&e.Event,
		&e.Date,
		&e.City,
		&e.Venue,
		&e.ImageURL,
		&e.Genre,
		&price,
		&e.Rating,
		&e.IsFavorite,
	); err != nil {
		return e, err
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return e, fmt.Errorf("event %d price %q: %w", e.ID, price, models.ErrValidation)
	}
	e.Price = amount
	return e, nil
}

// scanNFT follows the column order of selectNFTsQuery.
func scanNFT(row pgx.CollectableRow) (models.NFT, error) {
	var n models.NFT
	var rarity string
	var serial int64
	if err := row.Scan(
		&n.ID,
		&n.Artist,
		&n.Name,
		&n.Description,
		&n.ImageURL,
		&rarity,
		&n.Collection,
		&n.MintDate,
		&serial,
	); err != nil {
		return n, err
	}

	n.Rarity = models.Rarity(rarity)
	if !n.Rarity.Valid() {
		return n, fmt.Errorf("nft %d rarity %q: %w", n.ID, rarity, models.ErrValidation)
	}
	n.TokenID = contracts.DeriveTokenID(n.Collection, serial).Display()
	return n, nil
}
