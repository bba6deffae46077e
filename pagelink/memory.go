package pagelink

import (
	"context"
	"sync"
)

// PageRecord is a stored page row. Pages sharing a TranslationKey are
// translations of each other.
type PageRecord struct {
	ID             string
	URL            string
	ParentID       string
	Locale         string
	TranslationKey string
}

// MemoryStore is an in-process Store. It records how many lookups it served.
type MemoryStore struct {
	mu      sync.RWMutex
	locale  string
	pages   map[string]PageRecord
	lookups int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store that localizes pages into locale.
// An empty locale returns pages as stored.
func NewMemoryStore(locale string, pages ...PageRecord) *MemoryStore {
	s := &MemoryStore{
		locale: locale,
		pages:  make(map[string]PageRecord, len(pages)),
	}
	for _, page := range pages {
		s.pages[page.ID] = page
	}
	return s
}

// Put adds or replaces a page.
func (s *MemoryStore) Put(page PageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[page.ID] = page
}

// Delete removes a page.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, id)
}

// Lookups returns the number of SpecificPages calls served.
func (s *MemoryStore) Lookups() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookups
}

// SpecificPages implements Store.
func (s *MemoryStore) SpecificPages(ctx context.Context, ids []string) (map[string]Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++

	result := make(map[string]Page, len(ids))
	for _, id := range ids {
		page, ok := s.pages[id]
		if !ok {
			continue
		}
		localized := s.localize(page)
		result[id] = Page{
			ID:       localized.ID,
			URL:      localized.URL,
			ParentID: page.ParentID,
			Locale:   localized.Locale,
		}
	}
	return result, nil
}

func (s *MemoryStore) localize(page PageRecord) PageRecord {
	if s.locale == "" || page.Locale == s.locale || page.TranslationKey == "" {
		return page
	}
	for _, candidate := range s.pages {
		if candidate.TranslationKey == page.TranslationKey && candidate.Locale == s.locale {
			return candidate
		}
	}
	return page
}
