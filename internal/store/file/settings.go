package file

import "github.com/linkdock/linkdock/internal/domain"

// GetSettings returns the settings with schema defaults filled in for
// any key the stored document does not carry.
func (s *Store) GetSettings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Materialize()
}

// UpdateSettings applies a tri-state patch: absent keys keep their
// value, null/empty keys are cleared back to the schema default,
// everything else overwrites.
func (s *Store) UpdateSettings(patch domain.SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.settings
	patch.Apply(&s.settings)

	if err := s.saveLocked(); err != nil {
		s.settings = prev
		return domain.Settings{}, err
	}
	return s.settings.Materialize(), nil
}
