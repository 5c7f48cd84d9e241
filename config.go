package mack

import (
	"github.com/instantish/mack/internal/markdown"
	"github.com/instantish/mack/pkg/interfaces"
)

// Config carries the optional collaborators for a conversion.
type Config struct {
	// Parser controls the goldmark front-end used by Convert. The zero
	// value enables GFM, linkify, and task lists.
	Parser ParserConfig

	// Logger supplies module-scoped loggers for diagnostics such as
	// dropped node kinds. Nil disables logging.
	Logger interfaces.LoggerProvider
}

// ParserConfig selects the goldmark extensions active while parsing.
// Extension names are matched case-insensitively; unknown names are ignored.
type ParserConfig struct {
	Extensions []string
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{}
}

func resolveConfig(cfg []Config) Config {
	if len(cfg) == 0 {
		return DefaultConfig()
	}
	return cfg[0]
}

func (c Config) parser() *markdown.GoldmarkParser {
	return markdown.NewGoldmarkParser(markdown.Options{
		Extensions: c.Parser.Extensions,
	})
}
