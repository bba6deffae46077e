package cmd

import (
	"context"

	"github.com/rgonek/draftail-anchors/internal/logging"
	"github.com/rgonek/draftail-anchors/pagelink"
	"github.com/rgonek/draftail-anchors/pagelink/sqlstore"
)

type pageResolver interface {
	ResolveMany(ctx context.Context, ids []string) map[string]pagelink.ResolvedPage
}

// openResolver opens the page database. An empty path returns a nil resolver
// and a no-op close.
func openResolver(ctx context.Context, dbPath, locale string) (pageResolver, func(), error) {
	logger := logging.FromContext(ctx)
	if dbPath == "" {
		logger.DebugContext(ctx, "no page database configured; page links resolve as missing")
		return nil, func() {}, nil
	}

	store, err := sqlstore.Open(dbPath, sqlstore.WithLocale(locale))
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.WarnContext(ctx, "failed to close page database", "path", dbPath, "error", err)
		}
	}

	logger.DebugContext(ctx, "opened page database", "path", dbPath, "locale", locale)
	return pagelink.NewResolver(store, pagelink.WithLogger(logger)), closeStore, nil
}
