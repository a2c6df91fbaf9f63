package models

// Rarity of a collectible.
type Rarity string

const (
	RarityRare      Rarity = "Raro"
	RarityEpic      Rarity = "Épico"
	RarityLegendary Rarity = "Lendário"
)

func (r Rarity) Valid() bool {
	switch r {
	case RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// NFT is an illustrative collectible. TokenID is a display string only.
type NFT struct {
	ID          int    `json:"id" db:"id" validate:"gt=0"`
	Artist      string `json:"artist" db:"artist" validate:"required"`
	Name        string `json:"name" db:"name" validate:"required"`
	Description string `json:"description" db:"description"`
	ImageURL    string `json:"image_url" db:"image_url"`
	Rarity      Rarity `json:"rarity" db:"rarity" validate:"required,rarity"`
	Collection  string `json:"collection" db:"collection" validate:"required"`
	MintDate    string `json:"mint_date" db:"mint_date" validate:"required"`
	TokenID     string `json:"token_id" db:"-"`
}

// ArtistCollection groups the NFTs of one artist.
type ArtistCollection struct {
	Artist string `json:"artist"`
	NFTs   []NFT  `json:"nfts"`
}
