package domain

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCategoryInsertValidate(t *testing.T) {
	tests := []struct {
		name    string
		insert  CategoryInsert
		wantErr bool
	}{
		{
			name:    "valid",
			insert:  CategoryInsert{Name: "Media", Columns: 4},
			wantErr: false,
		},
		{
			name:    "missing name",
			insert:  CategoryInsert{Columns: 4},
			wantErr: true,
		},
		{
			name:    "columns below minimum",
			insert:  CategoryInsert{Name: "Media", Columns: 1},
			wantErr: true,
		},
		{
			name:    "columns above maximum",
			insert:  CategoryInsert{Name: "Media", Columns: 9},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.insert.Normalize()
			err := tt.insert.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoryPatchValidate(t *testing.T) {
	tests := []struct {
		name    string
		patch   CategoryPatch
		wantErr bool
	}{
		{
			name:    "empty patch",
			patch:   CategoryPatch{},
			wantErr: false,
		},
		{
			name:    "columns in range",
			patch:   CategoryPatch{Columns: intPtr(2)},
			wantErr: false,
		},
		{
			name:    "columns at maximum",
			patch:   CategoryPatch{Columns: intPtr(8)},
			wantErr: false,
		},
		{
			name:    "columns zero",
			patch:   CategoryPatch{Columns: intPtr(0)},
			wantErr: true,
		},
		{
			name:    "columns below minimum",
			patch:   CategoryPatch{Columns: intPtr(1)},
			wantErr: true,
		},
		{
			name:    "columns above maximum",
			patch:   CategoryPatch{Columns: intPtr(9)},
			wantErr: true,
		},
		{
			name:    "empty name",
			patch:   CategoryPatch{Name: strPtr("")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoryInsertNormalize(t *testing.T) {
	in := CategoryInsert{Name: "Media"}
	in.Normalize()
	if in.Columns != DefaultColumns {
		t.Errorf("Normalize() Columns = %d, want %d", in.Columns, DefaultColumns)
	}
}

func TestBookmarkInsertValidate(t *testing.T) {
	tests := []struct {
		name    string
		insert  BookmarkInsert
		wantErr bool
	}{
		{
			name: "valid",
			insert: BookmarkInsert{
				Name:       "Grafana",
				URL:        "https://grafana.local",
				CategoryID: "cat-1",
			},
			wantErr: false,
		},
		{
			name: "missing url",
			insert: BookmarkInsert{
				Name:       "Grafana",
				CategoryID: "cat-1",
			},
			wantErr: true,
		},
		{
			name: "relative url",
			insert: BookmarkInsert{
				Name:       "Grafana",
				URL:        "/dashboards",
				CategoryID: "cat-1",
			},
			wantErr: true,
		},
		{
			name: "non-http scheme",
			insert: BookmarkInsert{
				Name:       "Grafana",
				URL:        "ftp://grafana.local",
				CategoryID: "cat-1",
			},
			wantErr: true,
		},
		{
			name: "missing category",
			insert: BookmarkInsert{
				Name: "Grafana",
				URL:  "https://grafana.local",
			},
			wantErr: true,
		},
		{
			name: "invalid health check override url",
			insert: BookmarkInsert{
				Name:       "Grafana",
				URL:        "https://grafana.local",
				CategoryID: "cat-1",
				HealthCheckConfig: &HealthCheckConfig{
					URL: "not a url",
				},
			},
			wantErr: true,
		},
		{
			name: "valid health check config",
			insert: BookmarkInsert{
				Name:       "Grafana",
				URL:        "https://grafana.local",
				CategoryID: "cat-1",
				HealthCheckConfig: &HealthCheckConfig{
					URL:            "https://grafana.local/api/health",
					ExpectedStatus: 200,
					JSONKey:        "database",
					JSONValue:      "ok",
				},
			},
			wantErr: false,
		},
		{
			name: "negative grid row",
			insert: BookmarkInsert{
				Name:       "Grafana",
				URL:        "https://grafana.local",
				CategoryID: "cat-1",
				GridRow:    -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.insert.Normalize()
			err := tt.insert.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBookmarkInsertNormalize(t *testing.T) {
	in := BookmarkInsert{Name: "Grafana", URL: "https://grafana.local", CategoryID: "cat-1"}
	in.Normalize()
	if in.Icon != "Globe" {
		t.Errorf("Normalize() Icon = %q, want Globe", in.Icon)
	}
	if in.Color != "default" {
		t.Errorf("Normalize() Color = %q, want default", in.Color)
	}
}

func TestBookmarkPatchValidate(t *testing.T) {
	tests := []struct {
		name    string
		patch   BookmarkPatch
		wantErr bool
	}{
		{
			name:    "empty patch",
			patch:   BookmarkPatch{},
			wantErr: false,
		},
		{
			name:    "valid url change",
			patch:   BookmarkPatch{URL: strPtr("https://new.local")},
			wantErr: false,
		},
		{
			name:    "empty name rejected",
			patch:   BookmarkPatch{Name: strPtr("")},
			wantErr: true,
		},
		{
			name:    "invalid url rejected",
			patch:   BookmarkPatch{URL: strPtr("nope")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApiCallInsertValidate(t *testing.T) {
	tests := []struct {
		name    string
		insert  ApiCallInsert
		wantErr bool
	}{
		{
			name: "valid",
			insert: ApiCallInsert{
				Name:       "Restart stack",
				URL:        "https://portainer.local/api/restart",
				Method:     "POST",
				CategoryID: "cat-1",
			},
			wantErr: false,
		},
		{
			name: "bad method",
			insert: ApiCallInsert{
				Name:       "Restart stack",
				URL:        "https://portainer.local/api/restart",
				Method:     "FETCH",
				CategoryID: "cat-1",
			},
			wantErr: true,
		},
		{
			name: "method defaulted by normalize",
			insert: ApiCallInsert{
				Name:       "Status",
				URL:        "https://portainer.local/api/status",
				CategoryID: "cat-1",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.insert.Normalize()
			err := tt.insert.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGridPositionValidate(t *testing.T) {
	if err := (GridPosition{GridRow: 0, GridColumn: 3}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (GridPosition{GridRow: -1, GridColumn: 0}).Validate(); err == nil {
		t.Error("Validate() should reject negative row")
	}
}

func TestSettingsPatchValidate(t *testing.T) {
	tests := []struct {
		name    string
		patch   SettingsPatch
		wantErr bool
	}{
		{
			name:    "empty patch",
			patch:   SettingsPatch{},
			wantErr: false,
		},
		{
			name: "valid values",
			patch: SettingsPatch{
				BackgroundBrightness: OptionalInt{Present: true, Value: intPtr(150)},
				HealthCheckInterval:  OptionalInt{Present: true, Value: intPtr(120)},
			},
			wantErr: false,
		},
		{
			name: "brightness out of range",
			patch: SettingsPatch{
				BackgroundBrightness: OptionalInt{Present: true, Value: intPtr(201)},
			},
			wantErr: true,
		},
		{
			name: "interval below minimum",
			patch: SettingsPatch{
				HealthCheckInterval: OptionalInt{Present: true, Value: intPtr(5)},
			},
			wantErr: true,
		},
		{
			name: "interval zero",
			patch: SettingsPatch{
				HealthCheckInterval: OptionalInt{Present: true, Value: intPtr(0)},
			},
			wantErr: true,
		},
		{
			name: "null clears are always valid",
			patch: SettingsPatch{
				BackgroundImageURL:  OptionalString{Present: true, Value: nil},
				HealthCheckInterval: OptionalInt{Present: true, Value: nil},
			},
			wantErr: false,
		},
		{
			name: "bad background url",
			patch: SettingsPatch{
				BackgroundImageURL: OptionalString{Present: true, Value: strPtr("not-a-url")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProbeURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https", url: "https://example.com", wantErr: false},
		{name: "valid http with port", url: "http://10.0.0.2:8080/health", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "relative", url: "/health", wantErr: true},
		{name: "no scheme", url: "example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProbeURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProbeURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
