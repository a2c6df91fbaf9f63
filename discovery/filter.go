package discovery

import (
	"slices"

	"musicpass-backend/models"
	"musicpass-backend/textmatch"
)

// AllGenres disables genre filtering.
const AllGenres = "Todos"

// Genres lists the selectable filters in display order.
var Genres = []string{AllGenres, "Pop", "Hip-Hop", "Rock", "Eletrônica", "Axé", "MPB"}

func IsGenre(genre string) bool {
	return slices.Contains(Genres, genre)
}

// FilterEvents returns the events, in input order, whose genre matches and
// whose artist, event name or city contains query. The genre comparison is
// exact; the text comparison is case and accent insensitive.
func FilterEvents(events []models.Event, query, genre string) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if genre != AllGenres && e.Genre != genre {
			continue
		}
		if !textmatch.ContainsAny(query, e.Artist, e.Event, e.City) {
			continue
		}
		out = append(out, e)
	}
	return out
}
