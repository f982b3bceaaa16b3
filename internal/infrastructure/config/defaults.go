package config

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Output defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
}
