package config

// Config is the umbrella configuration object built once at startup and
// treated as immutable afterwards. This is the primary object returned by
// Initialize() and threaded through component constructors.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Indexing pipeline settings (chunk sizes, file limits, fan-out)
	Indexing *IndexingConfig

	// Retrieval settings (similarity gate, top-k, embedding dimension)
	Retrieval *RetrievalConfig

	// External provider endpoints, timeouts and rate limits
	Providers *ProvidersConfig

	// Embedding/summary cache settings
	Cache *CacheConfig

	// Repository access (clone depths, token source)
	Git *GitConfig

	// Ticketing collaborator settings
	Tickets *TicketsConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Data retention and cleanup configuration
	Retention *RetentionConfig

	// Secret redaction for provider-bound code
	Redaction *RedactionConfig

	// Slack case notifications
	Notifications *NotificationsConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
