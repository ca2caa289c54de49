package configs

import "time"

// RateLimit throttles the pass-through routes per client IP.
type RateLimit struct {
	// RPS is the sustained number of requests per second. Zero disables
	// rate limiting.
	RPS   float64       `env:"RPS" envDefault:"5"`
	Burst int           `env:"BURST" envDefault:"20"`
	TTL   time.Duration `env:"TTL" envDefault:"10m"`
}
