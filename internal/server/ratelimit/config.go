package ratelimit

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Exact path or prefix
	Method string        // HTTP method, empty matches any
	Limit  int           // Requests per Window
	Window time.Duration // Refill period for Limit tokens
	Burst  int           // Bucket size, defaults to Limit when 0
}

// LoadConfig reads RATE_LIMIT_* environment variables. Unset or unparsable
// values fall back to the defaults.
func LoadConfig() *Config {
	if !envValue("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envValue("RATE_LIMIT_DEFAULT_LIMIT", 600, strconv.Atoi),
		DefaultWindow:   envValue("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: envValue("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		IdleTTL:         envValue("RATE_LIMIT_IDLE_TTL", defaultIdleTTL, time.ParseDuration),
		Whitelist:       parseClientList("RATE_LIMIT_WHITELIST"),
		Blacklist:       parseClientList("RATE_LIMIT_BLACKLIST"),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
// Extraction endpoints do CPU-bound parsing per request, uploads additionally
// carry up to the configured body size.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/upload", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/extract", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/validate", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

func envValue[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		log.Printf("[rate-limit] ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return v
}

// parseClientList reads a comma-separated list of client IPs from key.
// Entries are stored in canonical form so they compare equal to the host
// part of a request's RemoteAddr; invalid entries are skipped.
func parseClientList(key string) map[string]bool {
	clients := make(map[string]bool)
	for _, entry := range strings.Split(os.Getenv(key), ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		ip := net.ParseIP(entry)
		if ip == nil {
			log.Printf("[rate-limit] ignoring invalid address %q in %s", entry, key)
			continue
		}
		clients[ip.String()] = true
	}
	return clients
}
