package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgonek/draftail-anchors/converter"
	"github.com/rgonek/draftail-anchors/internal/logging"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
)

func presetConfig(preset string) (converter.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return converter.Config{}, nil
	case presetStrict:
		return converter.Config{
			UnknownBlocks:   converter.UnknownError,
			UnknownEntities: converter.UnknownError,
			UnknownStyles:   converter.UnknownError,
		}, nil
	default:
		return converter.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict)", preset)
	}
}

func resolveConfig(preset string, strict, syncIDs bool) (converter.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return converter.Config{}, err
	}

	if strict {
		cfg.UnknownBlocks = converter.UnknownError
		cfg.UnknownEntities = converter.UnknownError
		cfg.UnknownStyles = converter.UnknownError
	}
	cfg.SyncHeadingIDs = syncIDs

	return cfg, nil
}

func logWarnings(ctx context.Context, warnings []converter.Warning) {
	logger := logging.FromContext(ctx)
	for _, w := range warnings {
		logger.WarnContext(ctx, w.Message,
			"type", string(w.Type),
			"node", w.NodeType,
		)
	}
}
