package configs

import "time"

// Meta configures the advertising platform client.
type Meta struct {
	// BaseURL is the versioned Graph API root, without a trailing slash.
	BaseURL string        `env:"BASE_URL" envDefault:"https://graph.facebook.com/v18.0" validate:"required,url"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s" validate:"gt=0"`
	// RateLimit caps outbound requests per second; 0 disables limiting.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"5" validate:"gte=0"`
	RateBurst int     `env:"RATE_BURST" envDefault:"5" validate:"gte=1"`

	DefaultGeoKey    string `env:"DEFAULT_GEO_KEY" envDefault:"2514815" validate:"required"`
	DefaultObjective string `env:"DEFAULT_OBJECTIVE" envDefault:"OUTCOME_TRAFFIC" validate:"required"`
}
