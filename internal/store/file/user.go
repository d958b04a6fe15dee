package file

import "github.com/linkdock/linkdock/internal/domain"

// GetUserByID returns one user record or ErrNotFound.
func (s *Store) GetUserByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return *u, nil
}

// GetUserByUsername returns the user with the given username or
// ErrNotFound.
func (s *Store) GetUserByUsername(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// CreateUser persists a new user record with a generated id.
func (s *Store) CreateUser(in domain.UserInsert) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &domain.User{
		ID:       newID(),
		Username: in.Username,
		Password: in.Password,
	}
	s.users[u.ID] = u

	if err := s.saveLocked(); err != nil {
		delete(s.users, u.ID)
		return domain.User{}, err
	}
	return *u, nil
}
