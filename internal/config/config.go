// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Load builds a Config by layering defaults, an optional file, and env vars.
// - External errors are wrapped via this package's sentinel errors.
package config

// Service identity constants surfaced by the info and health endpoints.
const (
	ServiceName = "process-service"
	Version     = "0.1.0"
	DocsPath    = "/docs"
)

// Config contains process configuration, fixed at startup and passed
// explicitly to the components that need it.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// ServiceSecret is the shared secret expected in the X-Service-Secret
	// header on /process calls. The default exists for development only.
	ServiceSecret string `koanf:"service_secret"`

	// MaxBodyBytes caps the accepted /process request body size.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// New creates a Config populated with defaults. The defaults mirror the
// development deployment: all interfaces on port 8000, info logging, and the
// well-known development secret.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":8000",
		ServiceSecret: "dev-secret",
		MaxBodyBytes:  1 << 20,
	}
}
