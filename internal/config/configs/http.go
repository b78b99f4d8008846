package configs

// HTTP defines configuration for the operations HTTP server exposing
// scheduler status, control endpoints and metrics.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" validate:"gt=0"`
}
