package models

// Icon is a symbolic glyph identifier resolved by the front end.
type Icon string

const (
	IconGift      Icon = "gift"
	IconBadge     Icon = "badge"
	IconMusic     Icon = "music"
	IconDiscAlbum Icon = "disc_album"
	IconMic       Icon = "mic"
	IconStar      Icon = "star"
	IconTrophy    Icon = "trophy"
	IconTicket    Icon = "ticket"
	IconSearch    Icon = "search"
)

var knownIcons = map[Icon]struct{}{
	IconGift:      {},
	IconBadge:     {},
	IconMusic:     {},
	IconDiscAlbum: {},
	IconMic:       {},
	IconStar:      {},
	IconTrophy:    {},
	IconTicket:    {},
	IconSearch:    {},
}

func (i Icon) Valid() bool {
	_, ok := knownIcons[i]
	return ok
}
