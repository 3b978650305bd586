package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth struct {
		// Secret signs session tokens. Must be non-empty in production.
		Secret   string
		TokenTTL Duration
	}
	News struct {
		// HomePageSize caps the number of news items on the home page.
		HomePageSize int
	}
	Moderation struct {
		// BadWords are rejected as case-sensitive substrings of comment text.
		BadWords []string
	}
}

// Duration wraps time.Duration so TTLs can be written as "24h" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

const (
	DefaultHomePageSize = 10
	DefaultTokenTTL     = 24 * time.Hour
)

// DefaultBadWords is used when the moderation section is absent.
var DefaultBadWords = []string{"villain", "scoundrel"}

// Normalize fills zero-valued optional fields with defaults.
func (c *Config) Normalize() {
	if c.News.HomePageSize == 0 {
		c.News.HomePageSize = DefaultHomePageSize
	}
	if c.Auth.TokenTTL.Duration == 0 {
		c.Auth.TokenTTL.Duration = DefaultTokenTTL
	}
	if c.Moderation.BadWords == nil {
		c.Moderation.BadWords = DefaultBadWords
	}
}
