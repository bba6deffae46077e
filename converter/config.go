package converter

import "fmt"

// UnknownPolicy controls behavior for unrecognized blocks and entities.
type UnknownPolicy string

const (
	// UnknownError fails the conversion.
	UnknownError UnknownPolicy = "error"
	// UnknownSkip drops the unknown wrapper, keeps its text and records a warning.
	UnknownSkip UnknownPolicy = "skip"
)

// URLSanitizer returns the URL to embed and whether it is allowed.
type URLSanitizer func(raw string) (string, bool)

// Config holds all converter configuration options.
type Config struct {
	UnknownBlocks   UnknownPolicy `json:"unknownBlocks,omitempty"`
	UnknownEntities UnknownPolicy `json:"unknownEntities,omitempty"`
	UnknownStyles   UnknownPolicy `json:"unknownStyles,omitempty"`
	// SyncHeadingIDs regenerates the id metadata of headings without a custom anchor
	// from their text before rendering.
	SyncHeadingIDs bool         `json:"syncHeadingIds,omitempty"`
	URLSanitizer   URLSanitizer `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.UnknownBlocks == "" {
		c.UnknownBlocks = UnknownSkip
	}
	if c.UnknownEntities == "" {
		c.UnknownEntities = UnknownSkip
	}
	if c.UnknownStyles == "" {
		c.UnknownStyles = UnknownSkip
	}
	if c.URLSanitizer == nil {
		c.URLSanitizer = CheckURL
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := validatePolicy("unknownBlocks", c.UnknownBlocks); err != nil {
		return err
	}
	if err := validatePolicy("unknownEntities", c.UnknownEntities); err != nil {
		return err
	}
	if err := validatePolicy("unknownStyles", c.UnknownStyles); err != nil {
		return err
	}
	if c.URLSanitizer == nil {
		return fmt.Errorf("urlSanitizer must not be nil")
	}
	return nil
}

func validatePolicy(name string, policy UnknownPolicy) error {
	if policy != UnknownError && policy != UnknownSkip {
		return fmt.Errorf("invalid %s policy %q", name, policy)
	}
	return nil
}
