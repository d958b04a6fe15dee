package domain

import "time"

// Health statuses a bookmark can be in. New bookmarks start as
// StatusUnknown; only the health check engine moves them to
// online/offline.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusUnknown = "unknown"
)

// DefaultExpectedStatus is assumed when a health or validation config
// does not name an expected HTTP status code.
const DefaultExpectedStatus = 200

// HealthCheckConfig tunes how a bookmark is probed.
type HealthCheckConfig struct {
	// URL overrides the bookmark URL as the probe target when set.
	URL string `json:"url,omitempty"`
	// ExpectedStatus is the HTTP status that counts as online (default 200).
	ExpectedStatus int `json:"expectedStatus,omitempty"`
	// JSONKey, when set, requires the response body to be JSON and the
	// key to be present (flat lookup, no nesting).
	JSONKey string `json:"jsonKey,omitempty"`
	// JSONValue, when set together with JSONKey, must match the
	// stringified value at that key.
	JSONValue string `json:"jsonValue,omitempty"`
	// CheckSSL also inspects the TLS certificate of https targets.
	CheckSSL bool `json:"checkSsl,omitempty"`
}

// Bookmark is a dashboard tile pointing at a URL, optionally
// health-checked.
type Bookmark struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	URL                string             `json:"url"`
	Icon               string             `json:"icon"`
	Color              string             `json:"color"`
	CategoryID         string             `json:"categoryId"`
	HealthCheckEnabled bool               `json:"healthCheckEnabled"`
	HealthCheckConfig  *HealthCheckConfig `json:"healthCheckConfig,omitempty"`
	HealthStatus       string             `json:"healthStatus"`
	LastHealthCheck    *time.Time         `json:"lastHealthCheck"`
	SSLExpiryDays      *int               `json:"sslExpiryDays"`
	Order              int                `json:"order"`
	GridRow            int                `json:"gridRow"`
	GridColumn         int                `json:"gridColumn"`
}

// BookmarkInsert is the client-supplied shape for creating a bookmark.
// Server-assigned fields (id, healthStatus, lastHealthCheck,
// sslExpiryDays) are omitted.
type BookmarkInsert struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	URL                string             `json:"url"`
	Icon               string             `json:"icon"`
	Color              string             `json:"color"`
	CategoryID         string             `json:"categoryId"`
	HealthCheckEnabled bool               `json:"healthCheckEnabled"`
	HealthCheckConfig  *HealthCheckConfig `json:"healthCheckConfig"`
	Order              int                `json:"order"`
	GridRow            int                `json:"gridRow"`
	GridColumn         int                `json:"gridColumn"`
}

// Normalize fills schema defaults for omitted fields.
func (in *BookmarkInsert) Normalize() {
	if in.Icon == "" {
		in.Icon = "Globe"
	}
	if in.Color == "" {
		in.Color = "default"
	}
}

// BookmarkPatch is a partial update. Nil fields are left untouched;
// HealthCheckConfig replaces the whole config when present.
type BookmarkPatch struct {
	Name               *string            `json:"name"`
	Description        *string            `json:"description"`
	URL                *string            `json:"url"`
	Icon               *string            `json:"icon"`
	Color              *string            `json:"color"`
	CategoryID         *string            `json:"categoryId"`
	HealthCheckEnabled *bool              `json:"healthCheckEnabled"`
	HealthCheckConfig  *HealthCheckConfig `json:"healthCheckConfig"`
	Order              *int               `json:"order"`
	GridRow            *int               `json:"gridRow"`
	GridColumn         *int               `json:"gridColumn"`
}

// Apply merges the patch into an existing bookmark.
func (p BookmarkPatch) Apply(b *Bookmark) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.URL != nil {
		b.URL = *p.URL
	}
	if p.Icon != nil {
		b.Icon = *p.Icon
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
	if p.CategoryID != nil {
		b.CategoryID = *p.CategoryID
	}
	if p.HealthCheckEnabled != nil {
		b.HealthCheckEnabled = *p.HealthCheckEnabled
	}
	if p.HealthCheckConfig != nil {
		cfg := *p.HealthCheckConfig
		b.HealthCheckConfig = &cfg
	}
	if p.Order != nil {
		b.Order = *p.Order
	}
	if p.GridRow != nil {
		b.GridRow = *p.GridRow
	}
	if p.GridColumn != nil {
		b.GridColumn = *p.GridColumn
	}
}

// HealthResult is what one health check invocation produced.
// SSLExpiryDays is only meaningful when SSLChecked is true; otherwise
// the previously recorded value must be preserved.
type HealthResult struct {
	Status        string
	CheckedAt     time.Time
	SSLChecked    bool
	SSLExpiryDays *int
}
