package domain

// Settings bounds and defaults.
const (
	DefaultBackgroundBrightness = 100
	DefaultBackgroundOpacity    = 100
	DefaultHealthCheckInterval  = 60 // seconds

	MinBackgroundBrightness = 0
	MaxBackgroundBrightness = 200
	MinBackgroundOpacity    = 0
	MaxBackgroundOpacity    = 100
	MinHealthCheckInterval  = 10
	MaxHealthCheckInterval  = 3600
)

// Settings is the materialized process-wide settings record, with
// schema defaults filled in for any key the stored form does not carry.
type Settings struct {
	BackgroundImageURL   *string `json:"backgroundImageUrl"`
	BackgroundBrightness int     `json:"backgroundBrightness"`
	BackgroundOpacity    int     `json:"backgroundOpacity"`
	HealthCheckInterval  int     `json:"healthCheckInterval"`
}

// StoredSettings is the on-disk form. Absent keys revert to schema
// defaults on read, which is what lets a PATCH "clear" a field.
type StoredSettings struct {
	BackgroundImageURL   *string `json:"backgroundImageUrl,omitempty"`
	BackgroundBrightness *int    `json:"backgroundBrightness,omitempty"`
	BackgroundOpacity    *int    `json:"backgroundOpacity,omitempty"`
	HealthCheckInterval  *int    `json:"healthCheckInterval,omitempty"`
}

// Materialize resolves the stored form against schema defaults.
func (s StoredSettings) Materialize() Settings {
	out := Settings{
		BackgroundBrightness: DefaultBackgroundBrightness,
		BackgroundOpacity:    DefaultBackgroundOpacity,
		HealthCheckInterval:  DefaultHealthCheckInterval,
	}
	if s.BackgroundImageURL != nil {
		out.BackgroundImageURL = s.BackgroundImageURL
	}
	if s.BackgroundBrightness != nil {
		out.BackgroundBrightness = *s.BackgroundBrightness
	}
	if s.BackgroundOpacity != nil {
		out.BackgroundOpacity = *s.BackgroundOpacity
	}
	if s.HealthCheckInterval != nil {
		out.HealthCheckInterval = *s.HealthCheckInterval
	}
	return out
}

// Merge overlays non-nil keys of other onto s. Used by import, where
// settings are merged rather than replaced.
func (s *StoredSettings) Merge(other StoredSettings) {
	if other.BackgroundImageURL != nil {
		s.BackgroundImageURL = other.BackgroundImageURL
	}
	if other.BackgroundBrightness != nil {
		s.BackgroundBrightness = other.BackgroundBrightness
	}
	if other.BackgroundOpacity != nil {
		s.BackgroundOpacity = other.BackgroundOpacity
	}
	if other.HealthCheckInterval != nil {
		s.HealthCheckInterval = other.HealthCheckInterval
	}
}

// SettingsPatch is a tri-state partial update: an absent key keeps the
// stored value, an explicit null (or empty string) clears it back to
// the schema default, and a value overwrites it.
type SettingsPatch struct {
	BackgroundImageURL   OptionalString `json:"backgroundImageUrl"`
	BackgroundBrightness OptionalInt    `json:"backgroundBrightness"`
	BackgroundOpacity    OptionalInt    `json:"backgroundOpacity"`
	HealthCheckInterval  OptionalInt    `json:"healthCheckInterval"`
}

// Apply merges the patch into the stored form.
func (p SettingsPatch) Apply(s *StoredSettings) {
	if p.BackgroundImageURL.Present {
		if p.BackgroundImageURL.Value == nil || *p.BackgroundImageURL.Value == "" {
			s.BackgroundImageURL = nil
		} else {
			s.BackgroundImageURL = p.BackgroundImageURL.Value
		}
	}
	if p.BackgroundBrightness.Present {
		s.BackgroundBrightness = p.BackgroundBrightness.Value
	}
	if p.BackgroundOpacity.Present {
		s.BackgroundOpacity = p.BackgroundOpacity.Value
	}
	if p.HealthCheckInterval.Present {
		s.HealthCheckInterval = p.HealthCheckInterval.Value
	}
}
