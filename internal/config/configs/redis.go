package configs

import "time"

// Redis configures the wizard draft store. When Addr is empty drafts are
// kept in process memory.
type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	// DraftTTL expires abandoned wizard drafts.
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"168h"`
}
