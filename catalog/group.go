package catalog

import "musicpass-backend/models"

// FallbackGenre receives tickets without a genre.
const FallbackGenre = "Outros"

// GroupTicketsByGenre buckets tickets by genre in order of first appearance.
// Every ticket lands in exactly one bucket and keeps its relative order.
func GroupTicketsByGenre(tickets []models.Ticket) []models.GenreBucket {
	buckets := []models.GenreBucket{}
	index := make(map[string]int)

	for _, t := range tickets {
		genre := t.Genre
		if genre == "" {
			genre = FallbackGenre
		}
		i, ok := index[genre]
		if !ok {
			i = len(buckets)
			index[genre] = i
			buckets = append(buckets, models.GenreBucket{Genre: genre})
		}
		buckets[i].Tickets = append(buckets[i].Tickets, t)
	}

	return buckets
}

// GroupNFTsByArtist buckets collectibles by artist in order of first appearance.
func GroupNFTsByArtist(nfts []models.NFT) []models.ArtistCollection {
	collections := []models.ArtistCollection{}
	index := make(map[string]int)

	for _, n := range nfts {
		i, ok := index[n.Artist]
		if !ok {
			i = len(collections)
			index[n.Artist] = i
			collections = append(collections, models.ArtistCollection{Artist: n.Artist})
		}
		collections[i].NFTs = append(collections[i].NFTs, n)
	}

	return collections
}
