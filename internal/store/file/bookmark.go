package file

import (
	"sort"

	"github.com/linkdock/linkdock/internal/domain"
)

// GetBookmarks returns all bookmarks sorted by order.
func (s *Store) GetBookmarks() []domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Bookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GetBookmarksByCategory returns the bookmarks of one category sorted
// by order.
func (s *Store) GetBookmarksByCategory(categoryID string) []domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Bookmark, 0)
	for _, b := range s.bookmarks {
		if b.CategoryID == categoryID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GetBookmarkByID returns one bookmark or ErrNotFound.
func (s *Store) GetBookmarkByID(id string) (domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return domain.Bookmark{}, ErrNotFound
	}
	return *b, nil
}

// CreateBookmark persists a new bookmark. Health fields start at their
// zero state: status unknown, never checked.
func (s *Store) CreateBookmark(in domain.BookmarkInsert) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &domain.Bookmark{
		ID:                 newID(),
		Name:               in.Name,
		Description:        in.Description,
		URL:                in.URL,
		Icon:               in.Icon,
		Color:              in.Color,
		CategoryID:         in.CategoryID,
		HealthCheckEnabled: in.HealthCheckEnabled,
		HealthCheckConfig:  in.HealthCheckConfig,
		HealthStatus:       domain.StatusUnknown,
		Order:              in.Order,
		GridRow:            in.GridRow,
		GridColumn:         in.GridColumn,
	}
	s.bookmarks[b.ID] = b

	if err := s.saveLocked(); err != nil {
		delete(s.bookmarks, b.ID)
		return domain.Bookmark{}, err
	}
	return *b, nil
}

// UpdateBookmark merges a patch into an existing bookmark.
func (s *Store) UpdateBookmark(id string, patch domain.BookmarkPatch) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return domain.Bookmark{}, ErrNotFound
	}

	updated := *b
	patch.Apply(&updated)
	s.bookmarks[id] = &updated

	if err := s.saveLocked(); err != nil {
		s.bookmarks[id] = b
		return domain.Bookmark{}, err
	}
	return updated, nil
}

// UpdateBookmarkHealth records the outcome of one health check.
// sslExpiryDays is only overwritten when this invocation actually ran
// the SSL step; lastHealthCheck is always set.
func (s *Store) UpdateBookmarkHealth(id string, res domain.HealthResult) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return domain.Bookmark{}, ErrNotFound
	}

	updated := *b
	updated.HealthStatus = res.Status
	checkedAt := res.CheckedAt
	updated.LastHealthCheck = &checkedAt
	if res.SSLChecked {
		updated.SSLExpiryDays = res.SSLExpiryDays
	}
	s.bookmarks[id] = &updated

	if err := s.saveLocked(); err != nil {
		s.bookmarks[id] = b
		return domain.Bookmark{}, err
	}
	return updated, nil
}

// UpdateBookmarkGridPosition moves a bookmark to (row, col). The move
// is rejected with ErrGridOccupied when another entity in the same
// category already occupies the cell.
func (s *Store) UpdateBookmarkGridPosition(id string, row, col int) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return domain.Bookmark{}, ErrNotFound
	}
	if s.gridOccupiedLocked(b.CategoryID, row, col, id) {
		return domain.Bookmark{}, ErrGridOccupied
	}

	updated := *b
	updated.GridRow = row
	updated.GridColumn = col
	s.bookmarks[id] = &updated

	if err := s.saveLocked(); err != nil {
		s.bookmarks[id] = b
		return domain.Bookmark{}, err
	}
	return updated, nil
}

// DeleteBookmark removes a bookmark, returning false for unknown ids.
func (s *Store) DeleteBookmark(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[id]; !ok {
		return false, nil
	}
	delete(s.bookmarks, id)
	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// ReorderBookmarks assigns order = index for each named id.
func (s *Store) ReorderBookmarks(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range ids {
		if b, ok := s.bookmarks[id]; ok {
			b.Order = i
		}
	}
	return s.saveLocked()
}
