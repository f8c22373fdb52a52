package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache providers
const (
	CacheProviderRedis  = "redis"
	CacheProviderBadger = "badger"
)

// Name matching modes for unmapped search terms
const (
	NameMatchExact   = "exact"
	NameMatchPattern = "pattern"
)

// Lead event types
const (
	LeadEventSaved = "lead.saved"
)
