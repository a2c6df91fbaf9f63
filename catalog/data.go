package catalog

import (
	"musicpass-backend/contracts"
	"musicpass-backend/models"
)

func defaultTickets() []models.Ticket {
	return []models.Ticket{
		{
			ID:       8,
			Artist:   "Pitty",
			Event:    "ACNXX",
			Date:     "05 OUT 2025",
			City:     "Porto Alegre, RS",
			Venue:    "Arena do Grêmio",
			Time:     "21:30",
			Price:    mustPrice("R$ 100"),
			Genre:    "Rock",
			ImageURL: "https://placehold.co/200x200/ef4444/FFFFFF?text=Pitty",
			Sellable: true,
		},
		{
			ID:       9,
			Artist:   "Titãs",
			Event:    "Encontro",
			Date:     "19 OUT 2025",
			City:     "Brasília, DF",
			Venue:    "Arena BRB",
			Time:     "20:00",
			Price:    mustPrice("R$ 90"),
			Genre:    "Rock",
			ImageURL: "https://placehold.co/200x200/78716c/FFFFFF?text=Tit%C3%A3s",
			Sellable: true,
		},
	}
}

func defaultEvents() []models.Event {
	return []models.Event{
		{
			ID:       1,
			Artist:   "Anitta",
			Event:    "Funk Generation World Tour",
			Date:     "15 JAN 2025",
			City:     "São Paulo, SP",
			Venue:    "Allianz Parque",
			ImageURL: "https://placehold.co/300x200/FF6B6B/FFFFFF?text=Anitta",
			Genre:    "Pop",
			Price:    mustPrice("R$ 120"),
			Rating:   4.8,
		},
		{
			ID:         2,
			Artist:     "Ludmilla",
			Event:      "Numanice World Tour",
			Date:       "22 JAN 2025",
			City:       "Rio de Janeiro, RJ",
			Venue:      "Maracanã",
			ImageURL:   "https://placehold.co/300x200/4ECDC4/FFFFFF?text=Ludmilla",
			Genre:      "Pop",
			Price:      mustPrice("R$ 150"),
			Rating:     4.9,
			IsFavorite: true,
		},
		{
			ID:       3,
			Artist:   "Projota",
			Event:    "Projota Acústico",
			Date:     "28 JAN 2025",
			City:     "Belo Horizonte, MG",
			Venue:    "Teatro Bradesco",
			ImageURL: "https://placehold.co/300x200/45B7D1/FFFFFF?text=Projota",
			Genre:    "Hip-Hop",
			Price:    mustPrice("R$ 80"),
			Rating:   4.7,
		},
		{
			ID:       4,
			Artist:   "Ivete Sangalo",
			Event:    "Ivete Sangalo Live",
			Date:     "05 FEV 2025",
			City:     "Salvador, BA",
			Venue:    "Arena Fonte Nova",
			ImageURL: "https://placehold.co/300x200/96CEB4/FFFFFF?text=Ivete",
			Genre:    "Axé",
			Price:    mustPrice("R$ 200"),
			Rating:   4.9,
		},
	}
}

func nft(id int, artist string, serial int64, name, description, image string, rarity models.Rarity, collection, minted string) models.NFT {
	return models.NFT{
		ID:          id,
		Artist:      artist,
		Name:        name,
		Description: description,
		ImageURL:    image,
		Rarity:      rarity,
		Collection:  collection,
		MintDate:    minted,
		TokenID:     contracts.DeriveTokenID(collection, serial).Display(),
	}
}

func defaultNFTs() []models.NFT {
	const (
		acnxx    = "ACNXX Collection"
		encontro = "Encontro Collection"
	)

	return []models.NFT{
		nft(1, "Pitty", 1, "Pitty #001 - ACNXX Tour", "NFT exclusivo da turnê ACNXX",
			"https://placehold.co/300x300/ef4444/FFFFFF?text=Pitty+NFT+001", models.RarityRare, acnxx, "2024-03-15"),
		nft(2, "Pitty", 2, "Pitty #002 - Backstage Pass", "Acesso exclusivo ao backstage",
			"https://placehold.co/300x300/dc2626/FFFFFF?text=Pitty+NFT+002", models.RarityEpic, acnxx, "2024-04-20"),
		nft(3, "Pitty", 3, "Pitty #003 - Meet & Greet", "Encontro exclusivo com Pitty",
			"https://placehold.co/300x300/b91c1c/FFFFFF?text=Pitty+NFT+003", models.RarityLegendary, acnxx, "2024-05-10"),
		nft(4, "Pitty", 4, "Pitty #004 - Setlist Vote", "Direito de votar no setlist",
			"https://placehold.co/300x300/991b1b/FFFFFF?text=Pitty+NFT+004", models.RarityRare, acnxx, "2024-06-05"),
		nft(5, "Titãs", 1, "Titãs #001 - Encontro Tour", "NFT exclusivo da turnê Encontro",
			"https://placehold.co/300x300/78716c/FFFFFF?text=Tit%C3%A3s+NFT+001", models.RarityRare, encontro, "2024-02-28"),
		nft(6, "Titãs", 2, "Titãs #002 - Sessão de Fotos", "Foto oficial com a banda",
			"https://placehold.co/300x300/57534e/FFFFFF?text=Tit%C3%A3s+NFT+002", models.RarityEpic, encontro, "2024-03-30"),
		nft(7, "Titãs", 3, "Titãs #003 - Soundcheck VIP", "Acesso ao soundcheck exclusivo",
			"https://placehold.co/300x300/44403c/FFFFFF?text=Tit%C3%A3s+NFT+003", models.RarityLegendary, encontro, "2024-04-15"),
		nft(8, "Titãs", 4, "Titãs #004 - Merch Exclusivo", "Produtos exclusivos da banda",
			"https://placehold.co/300x300/292524/FFFFFF?text=Tit%C3%A3s+NFT+004", models.RarityRare, encontro, "2024-05-22"),
	}
}

func defaultProfileRewards() []models.Reward {
	return []models.Reward{
		{ID: "p1", Title: "10% de Desconto em Merch", Icon: models.IconGift, State: models.RewardUnlocked},
		{ID: "p2", Title: "Acesso à Pré-venda Exclusiva", Icon: models.IconTicket, State: models.RewardUnlocked},
		{ID: "p3", Title: "Badge Exclusivo no Perfil", Icon: models.IconBadge, State: models.RewardUnlocked},
		{ID: "p4", Title: "Acesso a Meet & Greet", Icon: models.IconMic, State: models.RewardLocked, PointsRequired: 1200},
		{ID: "p5", Title: "Votar no Setlist do Show", Icon: models.IconMusic, State: models.RewardLocked, PointsRequired: 1500},
		{ID: "p6", Title: "Audição Antecipada de Álbum", Icon: models.IconDiscAlbum, State: models.RewardLocked, PointsRequired: 2000},
	}
}

func defaultProgress() models.UserProgress {
	return models.UserProgress{
		CurrentPoints:   750,
		NextLevelPoints: 1000,
		CurrentLevel:    "Fã Lendário",
		NextLevel:       "Ícone Musical",
	}
}

// DefaultData returns the built-in mock catalog.
func DefaultData() Data {
	return Data{
		Tickets:        defaultTickets(),
		Events:         defaultEvents(),
		NFTs:           defaultNFTs(),
		ProfileRewards: defaultProfileRewards(),
		Progress:       defaultProgress(),
	}
}

// Default builds the built-in catalog. The data is static, so a failure is a
// programming error.
func Default() *Catalog {
	c, err := New(DefaultData())
	if err != nil {
		panic(err)
	}
	return c
}
