package htmlconverter

import (
	"context"
	"fmt"

	"github.com/rgonek/draftail-anchors/pagelink"
)

// PageResolver looks up page ids in a single batch.
// *pagelink.Resolver satisfies it.
type PageResolver interface {
	ResolveMany(ctx context.Context, ids []string) map[string]pagelink.ResolvedPage
}

// Config configures HTML to content state conversion.
type Config struct {
	// Resolver fills parentId on internal page links. Nil leaves parentId unset.
	Resolver PageResolver `json:"-"`
	// KeyPrefix is prepended to generated block keys.
	KeyPrefix string `json:"keyPrefix,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.KeyPrefix == "" {
		c.KeyPrefix = "b"
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	for _, r := range c.KeyPrefix {
		if r == ' ' || r == '\t' || r == '\n' {
			return fmt.Errorf("keyPrefix must not contain whitespace, got %q", c.KeyPrefix)
		}
	}
	return nil
}
