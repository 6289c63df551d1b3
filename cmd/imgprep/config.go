package main

// Config is the imgprep configuration, read from an optional YAML file and
// IMGPREP_* environment variables. None of it reaches the imaging package;
// it only shapes the boundary (defaults, limits, logging).
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// DevMode switches logging to the human readable console encoder.
	DevMode bool `mapstructure:"dev" yaml:"dev"`

	Thumbnail struct {
		// MaxWidth and MaxHeight are the bounds used when none are given.
		MaxWidth  int `mapstructure:"max_width" yaml:"max_width"`
		MaxHeight int `mapstructure:"max_height" yaml:"max_height"`
		// Limit is the largest bound a caller may request.
		Limit int `mapstructure:"limit" yaml:"limit"`
	} `mapstructure:"thumbnail" yaml:"thumbnail"`

	Fingerprint struct {
		// Jobs bounds concurrent hashing; 0 means GOMAXPROCS.
		Jobs int `mapstructure:"jobs" yaml:"jobs"`
	} `mapstructure:"fingerprint" yaml:"fingerprint"`
}

func setDefaults(v interface{ SetDefault(string, interface{}) }) {
	v.SetDefault("log_level", "info")
	v.SetDefault("dev", false)
	v.SetDefault("thumbnail.max_width", 150)
	v.SetDefault("thumbnail.max_height", 150)
	v.SetDefault("thumbnail.limit", 4096)
	v.SetDefault("fingerprint.jobs", 0)
}
