package configs

// NATS configures where new campaigns are announced. An empty URL disables
// publishing.
type NATS struct {
	URL     string `env:"URL"`
	Subject string `env:"SUBJECT" envDefault:"marketplace.campaigns.pending"`
}
