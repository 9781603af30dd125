package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "8s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":                          StorageMemory,
		"storage.mongodb.uri":                     "",
		"storage.mongodb.database":                "drawsteel",
		"storage.mongodb.collection":              "characters",
		"storage.mongodb.connect_timeout":         "10s",
		"storage.sqlite.path":                     "data/characters.db",
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "character-service",
	}
}
