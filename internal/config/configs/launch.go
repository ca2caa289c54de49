package configs

import "time"

// Launch sets the public launch instant the countdown runs to.
type Launch struct {
	At time.Time `env:"AT" envDefault:"2025-07-08T19:00:00Z"`
}
