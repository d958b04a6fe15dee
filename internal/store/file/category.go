package file

import (
	"sort"

	"github.com/linkdock/linkdock/internal/domain"
)

// GetCategories returns all categories sorted by order.
func (s *Store) GetCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GetCategoryByID returns one category or ErrNotFound.
func (s *Store) GetCategoryByID(id string) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, ErrNotFound
	}
	return *c, nil
}

// CreateCategory persists a new category with a generated id.
func (s *Store) CreateCategory(in domain.CategoryInsert) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &domain.Category{
		ID:      newID(),
		Name:    in.Name,
		Order:   in.Order,
		Columns: in.Columns,
	}
	s.categories[c.ID] = c

	if err := s.saveLocked(); err != nil {
		delete(s.categories, c.ID)
		return domain.Category{}, err
	}
	return *c, nil
}

// UpdateCategory merges a patch into an existing category.
func (s *Store) UpdateCategory(id string, patch domain.CategoryPatch) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, ErrNotFound
	}

	updated := *c
	patch.Apply(&updated)
	s.categories[id] = &updated

	if err := s.saveLocked(); err != nil {
		s.categories[id] = c
		return domain.Category{}, err
	}
	return updated, nil
}

// DeleteCategory removes a category. What happens to its members is
// decided by the configured delete policy. Returns false when the id
// does not exist.
func (s *Store) DeleteCategory(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}

	switch s.deletePolicy {
	case DeleteReject:
		for _, b := range s.bookmarks {
			if b.CategoryID == id {
				return false, ErrCategoryInUse
			}
		}
		for _, a := range s.apiCalls {
			if a.CategoryID == id {
				return false, ErrCategoryInUse
			}
		}
	case DeleteCascade:
		for bid, b := range s.bookmarks {
			if b.CategoryID == id {
				delete(s.bookmarks, bid)
			}
		}
		for aid, a := range s.apiCalls {
			if a.CategoryID == id {
				delete(s.apiCalls, aid)
			}
		}
	}

	delete(s.categories, id)
	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// ReorderCategories assigns order = index for each named id. Unknown
// ids are ignored; unnamed categories keep their order.
func (s *Store) ReorderCategories(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range ids {
		if c, ok := s.categories[id]; ok {
			c.Order = i
		}
	}
	return s.saveLocked()
}
