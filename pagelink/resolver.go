// Package pagelink resolves internal page references to live URLs.
//
// A Resolver batches every lookup of a call into a single Store query, so a
// document with many internal links costs one round trip. Pages the store does
// not return resolve as missing; store failures degrade the same way instead of
// surfacing as errors.
package pagelink

import (
	"context"
	"log/slog"
	"strings"
)

// Page is the localized, most specific representation of a page record.
type Page struct {
	ID       string
	URL      string
	ParentID string
	Locale   string
}

// Store is the host page repository.
type Store interface {
	// SpecificPages fetches the pages with the given ids in one query. The result
	// is keyed by requested id and holds the localized version of each page.
	// Ids that do not exist are absent from the result.
	SpecificPages(ctx context.Context, ids []string) (map[string]Page, error)
}

// ResolvedPage is the result of resolving a page id.
type ResolvedPage struct {
	PageURL  string `json:"pageUrl,omitempty"`
	Exists   bool   `json:"exists"`
	ParentID string `json:"parentId,omitempty"`
}

// Resolver turns page ids into ResolvedPages.
type Resolver struct {
	store  Store
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for store failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver backed by store.
func NewResolver(store Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveMany resolves every id with at most one store lookup. Every requested
// id appears in the result; ids the store does not know are {Exists: false}.
func (r *Resolver) ResolveMany(ctx context.Context, ids []string) map[string]ResolvedPage {
	resolved := make(map[string]ResolvedPage, len(ids))
	if len(ids) == 0 {
		return resolved
	}

	lookup := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		resolved[id] = ResolvedPage{}
		key := strings.TrimSpace(id)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		lookup = append(lookup, key)
	}
	if len(lookup) == 0 || r.store == nil {
		return resolved
	}

	pages, err := r.store.SpecificPages(ctx, lookup)
	if err != nil {
		r.logger.WarnContext(ctx, "page lookup failed; treating pages as missing",
			"ids", lookup,
			"error", err,
		)
		return resolved
	}

	for _, id := range ids {
		page, ok := pages[strings.TrimSpace(id)]
		if !ok {
			continue
		}
		resolved[id] = ResolvedPage{
			PageURL:  page.URL,
			Exists:   true,
			ParentID: page.ParentID,
		}
	}

	return resolved
}

// ResolveOne resolves a single id through ResolveMany.
func (r *Resolver) ResolveOne(ctx context.Context, id string) ResolvedPage {
	return r.ResolveMany(ctx, []string{id})[id]
}

// Href returns the link target for a resolved page, with "#hash" appended when
// hash is set. Missing pages have no href, hash or not.
func Href(page ResolvedPage, hash string) (string, bool) {
	if !page.Exists {
		return "", false
	}
	if hash != "" {
		return page.PageURL + "#" + hash, true
	}
	return page.PageURL, true
}
