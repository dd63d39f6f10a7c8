// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// File is the path to the ratings CSV file.
	File string `koanf:"file"`

	// BucketCount sets how many ordinal rank buckets items land in.
	BucketCount int `koanf:"bucket_count"`

	// DeviationThreshold is the confidence bound; a run continues while
	// any item's deviation strictly exceeds it.
	DeviationThreshold float64 `koanf:"deviation_threshold"`

	// DefaultRating and DefaultDeviation seed newly added items.
	DefaultRating    float64 `koanf:"default_rating"`
	DefaultDeviation float64 `koanf:"default_deviation"`

	// RandomPairProbability is the chance of comparing a random pair
	// instead of the two highest-deviation items.
	RandomPairProbability float64 `koanf:"random_pair_probability"`

	// DecayFactor is the Glicko c constant applied by resort -decay.
	DecayFactor float64 `koanf:"decay_factor"`

	// MetricsAddr exposes Prometheus metrics during a session when set,
	// e.g. ":9080". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		File:                  "items.csv",
		BucketCount:           10,
		DeviationThreshold:    65.0,
		DefaultRating:         1500.0,
		DefaultDeviation:      100.0,
		RandomPairProbability: 0.25,
		DecayFactor:           63.2,
		MetricsAddr:           "",
	}
}
