package config

// NewLogging derives logging config from the build config.
func NewLogging(build Build) Logging {
	return Logging{
		Verbose: build.Verbosity > 0,
	}
}

// Logging stores configuration of logging.
type Logging struct {
	// Verbose turns on verbose logging
	Verbose bool
}
