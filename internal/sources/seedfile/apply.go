package seedfile

import (
	"fmt"

	"github.com/linkdock/linkdock/internal/logger"
	filestore "github.com/linkdock/linkdock/internal/store/file"
)

// Apply loads the seed file and creates its categories, bookmarks and
// API calls in the store. Intended for first startup only: callers
// should skip it when the store already holds entities.
func Apply(path string, store *filestore.Store, log logger.Logger) error {
	seed, err := NewLoader(path).Load()
	if err != nil {
		return err
	}

	seeded := NewMapper().Map(seed)
	bookmarks, apiCalls := 0, 0

	for _, cs := range seeded {
		cat, err := store.CreateCategory(cs.Category)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cs.Category.Name, err)
		}
		for _, in := range cs.Bookmarks {
			in.CategoryID = cat.ID
			if _, err := store.CreateBookmark(in); err != nil {
				return fmt.Errorf("failed to seed bookmark %q: %w", in.Name, err)
			}
			bookmarks++
		}
		for _, in := range cs.ApiCalls {
			in.CategoryID = cat.ID
			if _, err := store.CreateApiCall(in); err != nil {
				return fmt.Errorf("failed to seed api call %q: %w", in.Name, err)
			}
			apiCalls++
		}
	}

	log.Info("seed file applied",
		logger.Int("categories", len(seeded)),
		logger.Int("bookmarks", bookmarks),
		logger.Int("api_calls", apiCalls))
	return nil
}
