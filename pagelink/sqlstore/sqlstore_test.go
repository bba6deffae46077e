package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rgonek/draftail-anchors/pagelink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "pages.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.CreateSchema(ctx))
	for _, page := range []pagelink.PageRecord{
		{ID: "1", URL: "/en/", Locale: "en", TranslationKey: "home"},
		{ID: "2", URL: "/en/about/", ParentID: "1", Locale: "en", TranslationKey: "about"},
		{ID: "12", URL: "/fr/a-propos/", ParentID: "11", Locale: "fr", TranslationKey: "about"},
		{ID: "5", URL: "/en/news/", ParentID: "1", Locale: "en"},
	} {
		require.NoError(t, store.PutPage(ctx, page))
	}

	return store
}

func TestSpecificPages(t *testing.T) {
	store := newTestStore(t)

	pages, err := store.SpecificPages(context.Background(), []string{"2", "5", "404"})
	require.NoError(t, err)

	assert.Len(t, pages, 2)
	assert.Equal(t, pagelink.Page{ID: "2", URL: "/en/about/", ParentID: "1", Locale: "en"}, pages["2"])
	assert.Equal(t, pagelink.Page{ID: "5", URL: "/en/news/", ParentID: "1", Locale: "en"}, pages["5"])
}

func TestSpecificPagesLocalized(t *testing.T) {
	store := newTestStore(t, WithLocale("fr"))

	pages, err := store.SpecificPages(context.Background(), []string{"2", "5"})
	require.NoError(t, err)

	assert.Equal(t, pagelink.Page{ID: "12", URL: "/fr/a-propos/", ParentID: "1", Locale: "fr"}, pages["2"])
	assert.Equal(t, pagelink.Page{ID: "5", URL: "/en/news/", ParentID: "1", Locale: "en"}, pages["5"])
}

func TestSpecificPagesEmpty(t *testing.T) {
	store := newTestStore(t)

	pages, err := store.SpecificPages(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestStoreBacksResolver(t *testing.T) {
	store := newTestStore(t)
	resolver := pagelink.NewResolver(store)

	resolved := resolver.ResolveMany(context.Background(), []string{"2", "404"})
	assert.Equal(t, pagelink.ResolvedPage{PageURL: "/en/about/", Exists: true, ParentID: "1"}, resolved["2"])
	assert.False(t, resolved["404"].Exists)
}

func TestSpecificPagesClosedDatabase(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Close())

	_, err := store.SpecificPages(context.Background(), []string{"1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query pages")
}
