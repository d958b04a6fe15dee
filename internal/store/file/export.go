package file

import (
	"errors"
	"fmt"

	"github.com/linkdock/linkdock/internal/domain"
)

// ErrInvalidDocument marks an import rejected before any state change.
var ErrInvalidDocument = errors.New("invalid document")

// Export returns the full document as currently persisted, lists
// sorted by order.
func (s *Store) Export() domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentLocked()
}

// Import replaces categories, bookmarks and API calls with the given
// document and merges its settings over the stored ones. The document
// is validated before any state changes, so a rejected import leaves
// the store untouched. An import without categories gets the default
// one re-seeded.
func (s *Store) Import(doc domain.Document) error {
	if err := validateDocument(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mergedSettings := s.settings
	mergedSettings.Merge(doc.Settings)

	prev := s.documentLocked()

	s.replaceLocked(doc)
	s.settings = mergedSettings
	s.ensureCategoryLocked()

	if err := s.saveLocked(); err != nil {
		s.replaceLocked(prev)
		return err
	}
	return nil
}

// validateDocument rejects documents that would corrupt the store:
// entities without ids, duplicate ids, or missing required fields.
func validateDocument(doc domain.Document) error {
	seen := make(map[string]bool)
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s with empty id", kind)
		}
		if seen[id] {
			return fmt.Errorf("duplicate id %q", id)
		}
		seen[id] = true
		return nil
	}

	for _, c := range doc.Categories {
		if err := claim("category", c.ID); err != nil {
			return err
		}
		if c.Name == "" {
			return fmt.Errorf("category %q has no name", c.ID)
		}
	}
	for _, b := range doc.Bookmarks {
		if err := claim("bookmark", b.ID); err != nil {
			return err
		}
		if b.Name == "" || b.URL == "" {
			return fmt.Errorf("bookmark %q is missing name or url", b.ID)
		}
	}
	for _, a := range doc.ApiCalls {
		if err := claim("api call", a.ID); err != nil {
			return err
		}
		if a.Name == "" || a.URL == "" {
			return fmt.Errorf("api call %q is missing name or url", a.ID)
		}
	}
	for _, u := range doc.Users {
		if err := claim("user", u.ID); err != nil {
			return err
		}
	}
	return nil
}
