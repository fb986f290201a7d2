package config

// Names of formatters registered in the container.
const (
	FormatterTerse = "terse"
	FormatterTable = "table"
)

// NewFormat derives formatting config from the build config.
func NewFormat(build Build) Format {
	formatter := FormatterTerse
	if build.Verbosity > 0 {
		formatter = FormatterTable
	}
	return Format{
		Formatter: formatter,
	}
}

// Format stores configuration specific to formatting.
type Format struct {
	// Formatter is the name of formatter used to convert listings into text
	Formatter string
}
