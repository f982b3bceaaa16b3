package config

// OutputConfig holds report rendering configuration
type OutputConfig struct {
	// Report format: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json"`

	// Group digits in large numbers (51898 -> 51,898)
	GroupDigits bool `mapstructure:"group_digits"`
}
