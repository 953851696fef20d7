package catalog

// Config holds the catalog settings.
type Config struct {
	// Record stores the entries of every successful run in the database.
	Record bool `mapstructure:"record" default:"false"`
	// CacheTTLSeconds is how long an output-tree listing stays cached.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
}
