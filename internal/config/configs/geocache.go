package configs

import "time"

// GeoCache selects where resolved location keys are kept. The memory backend
// lives as long as the process; redis shares keys between replicas.
type GeoCache struct {
	Backend       string        `env:"BACKEND" envDefault:"memory" validate:"oneof=memory redis"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required_if=Backend redis"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	// TTL of zero keeps keys forever.
	TTL time.Duration `env:"TTL" envDefault:"0s" validate:"gte=0"`
}
