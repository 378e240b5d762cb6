package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins enables CORS for the listed origins. Empty disables it.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	// RatePerSecond and Burst bound requests per client address on the API
	// routes. A zero rate disables limiting.
	RatePerSecond float64 `env:"RATE_PER_SECOND" envDefault:"10"`
	Burst         int     `env:"BURST" envDefault:"20"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
