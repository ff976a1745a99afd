package cli

// Flags holds the command-line flag values that are not config keys.
// backend, catalog, log-level and max-chunk-chars are bound to viper.
type Flags struct {
	CfgFile     string
	EnvFile     string
	To          string
	File        string
	Interactive bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		EnvFile: ".env",
	}
}
