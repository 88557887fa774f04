// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event transport providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// HeaderIdempotencyKey carries the client token that makes purchase recording retry-safe.
const HeaderIdempotencyKey = "Idempotency-Key"
