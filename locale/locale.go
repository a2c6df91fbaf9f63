// Package locale renders the user-facing labels of the app screens.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var files embed.FS

const (
	TabTickets           = "tab_tickets"
	TabDiscover          = "tab_discover"
	TabRewards           = "tab_rewards"
	RewardsTitle         = "rewards_title"
	RewardsPoints        = "rewards_points"
	RewardsUnlockedTitle = "rewards_unlocked_title"
	RewardsLockedTitle   = "rewards_locked_title"
	RewardActive         = "reward_active"
	RewardSpecial        = "reward_special"
	RewardReady          = "reward_ready"
	RewardsHint          = "rewards_hint"
	LevelCurrent         = "level_current"
	LevelNext            = "level_next"
	LevelPoints          = "level_points"
	NFTsTitle            = "nfts_title"
)

type Bundle struct {
	bundle   *i18n.Bundle
	fallback string
}

// NewBundle loads the embedded message files. defaultLang is used when the
// client sends no usable Accept-Language.
func NewBundle(defaultLang string) (*Bundle, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("default locale %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := files.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(files, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}

	return &Bundle{bundle: bundle, fallback: tag.String()}, nil
}

// Localizer picks the best match for an Accept-Language header value.
func (b *Bundle) Localizer(acceptLanguage string) *Localizer {
	return &Localizer{l: i18n.NewLocalizer(b.bundle, acceptLanguage, b.fallback)}
}

type Localizer struct {
	l *i18n.Localizer
}

// Text renders id with data. A missing message renders as its id.
func (l *Localizer) Text(id string, data map[string]interface{}) string {
	msg, err := l.l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
