package file

import (
	"sort"

	"github.com/linkdock/linkdock/internal/domain"
)

// GetApiCalls returns all API calls sorted by order.
func (s *Store) GetApiCalls() []domain.ApiCall {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ApiCall, 0, len(s.apiCalls))
	for _, a := range s.apiCalls {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GetApiCallsByCategory returns the API calls of one category sorted
// by order.
func (s *Store) GetApiCallsByCategory(categoryID string) []domain.ApiCall {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ApiCall, 0)
	for _, a := range s.apiCalls {
		if a.CategoryID == categoryID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GetApiCallByID returns one API call or ErrNotFound.
func (s *Store) GetApiCallByID(id string) (domain.ApiCall, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.apiCalls[id]
	if !ok {
		return domain.ApiCall{}, ErrNotFound
	}
	return *a, nil
}

// CreateApiCall persists a new API call with a generated id.
func (s *Store) CreateApiCall(in domain.ApiCallInsert) (domain.ApiCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &domain.ApiCall{
		ID:                        newID(),
		Name:                      in.Name,
		Description:               in.Description,
		URL:                       in.URL,
		Method:                    in.Method,
		Headers:                   in.Headers,
		Body:                      in.Body,
		CategoryID:                in.CategoryID,
		Icon:                      in.Icon,
		Color:                     in.Color,
		Order:                     in.Order,
		GridRow:                   in.GridRow,
		GridColumn:                in.GridColumn,
		ResponseValidationEnabled: in.ResponseValidationEnabled,
		ResponseValidationConfig:  in.ResponseValidationConfig,
	}
	s.apiCalls[a.ID] = a

	if err := s.saveLocked(); err != nil {
		delete(s.apiCalls, a.ID)
		return domain.ApiCall{}, err
	}
	return *a, nil
}

// UpdateApiCall merges a patch into an existing API call.
func (s *Store) UpdateApiCall(id string, patch domain.ApiCallPatch) (domain.ApiCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.apiCalls[id]
	if !ok {
		return domain.ApiCall{}, ErrNotFound
	}

	updated := *a
	patch.Apply(&updated)
	s.apiCalls[id] = &updated

	if err := s.saveLocked(); err != nil {
		s.apiCalls[id] = a
		return domain.ApiCall{}, err
	}
	return updated, nil
}

// UpdateApiCallGridPosition moves an API call to (row, col), rejecting
// moves onto an occupied cell.
func (s *Store) UpdateApiCallGridPosition(id string, row, col int) (domain.ApiCall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.apiCalls[id]
	if !ok {
		return domain.ApiCall{}, ErrNotFound
	}
	if s.gridOccupiedLocked(a.CategoryID, row, col, id) {
		return domain.ApiCall{}, ErrGridOccupied
	}

	updated := *a
	updated.GridRow = row
	updated.GridColumn = col
	s.apiCalls[id] = &updated

	if err := s.saveLocked(); err != nil {
		s.apiCalls[id] = a
		return domain.ApiCall{}, err
	}
	return updated, nil
}

// DeleteApiCall removes an API call, returning false for unknown ids.
func (s *Store) DeleteApiCall(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.apiCalls[id]; !ok {
		return false, nil
	}
	delete(s.apiCalls, id)
	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// ReorderApiCalls assigns order = index for each named id.
func (s *Store) ReorderApiCalls(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range ids {
		if a, ok := s.apiCalls[id]; ok {
			a.Order = i
		}
	}
	return s.saveLocked()
}
