package format

import (
	"github.com/outofforest/ioc/v2"

	"github.com/outofforest/onloadimg/config"
)

// Formatter formats slice into string
type Formatter interface {
	// Format formats catalog listing into string
	Format(slice interface{}) string
}

// Resolve resolves concrete formatter based on config
func Resolve(c *ioc.Container, config config.Format) Formatter {
	var formatter Formatter
	c.ResolveNamed(config.Formatter, &formatter)
	return formatter
}
