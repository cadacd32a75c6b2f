package config

// DisplayConfig holds settings for drawing boards in a terminal.
type DisplayConfig struct {
	// Color enables ANSI colours
	Color bool

	// Unicode draws chess symbols instead of letters
	Unicode bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Color: true,
	}
}
