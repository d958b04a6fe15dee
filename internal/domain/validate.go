package domain

import (
	"errors"
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// absoluteURL accepts syntactically valid absolute http(s) URLs.
// Used instead of ozzo's is.URL because relative references must be
// rejected.
func absoluteURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // presence is enforced separately by Required
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("must be a valid absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must be an http or https URL")
	}
	return nil
}

// ValidateProbeURL checks a caller-supplied URL before the server
// issues an outbound request to it.
func ValidateProbeURL(s string) error {
	if s == "" {
		return errors.New("url is required")
	}
	return absoluteURL(s)
}

func methodIn() validation.Rule {
	methods := make([]interface{}, len(HTTPMethods))
	for i, m := range HTTPMethods {
		methods[i] = m
	}
	return validation.In(methods...)
}

// Validate checks a category create payload. Call Normalize first.
func (in CategoryInsert) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required")),
		validation.Field(&in.Columns, validation.Min(MinColumns), validation.Max(MaxColumns)),
	)
}

// Validate checks a category patch. Only present fields are checked.
func (p CategoryPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty.Error("name cannot be empty")),
		validation.Field(&p.Columns, validation.By(columnsBound)),
	)
}

// columnsBound enforces the 2-8 columns range on a patched value.
// ozzo's Min treats 0 as empty and skips it, so the check is explicit.
func columnsBound(value interface{}) error {
	p, ok := value.(*int)
	if !ok || p == nil {
		return nil
	}
	return intRange(*p, MinColumns, MaxColumns)
}

// Validate checks a bookmark create payload. Call Normalize first.
func (in BookmarkInsert) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required")),
		validation.Field(&in.URL, validation.Required.Error("url is required"), validation.By(absoluteURL)),
		validation.Field(&in.CategoryID, validation.Required.Error("categoryId is required")),
		validation.Field(&in.HealthCheckConfig),
		validation.Field(&in.GridRow, validation.Min(0)),
		validation.Field(&in.GridColumn, validation.Min(0)),
	)
}

// Validate checks a bookmark patch. Only present fields are checked.
func (p BookmarkPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty.Error("name cannot be empty")),
		validation.Field(&p.URL, validation.By(deref(absoluteURL)), validation.NilOrNotEmpty.Error("url cannot be empty")),
		validation.Field(&p.CategoryID, validation.NilOrNotEmpty.Error("categoryId cannot be empty")),
		validation.Field(&p.HealthCheckConfig),
		validation.Field(&p.GridRow, validation.Min(0)),
		validation.Field(&p.GridColumn, validation.Min(0)),
	)
}

// Validate checks the probe override URL when one is set. Expected
// status codes are deliberately unconstrained.
func (c HealthCheckConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URL, validation.By(absoluteURL)),
	)
}

// Validate checks an API call create payload. Call Normalize first.
func (in ApiCallInsert) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required")),
		validation.Field(&in.URL, validation.Required.Error("url is required"), validation.By(absoluteURL)),
		validation.Field(&in.Method, validation.Required, methodIn()),
		validation.Field(&in.CategoryID, validation.Required.Error("categoryId is required")),
		validation.Field(&in.GridRow, validation.Min(0)),
		validation.Field(&in.GridColumn, validation.Min(0)),
	)
}

// Validate checks an API call patch. Only present fields are checked.
func (p ApiCallPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty.Error("name cannot be empty")),
		validation.Field(&p.URL, validation.By(deref(absoluteURL)), validation.NilOrNotEmpty.Error("url cannot be empty")),
		validation.Field(&p.Method, methodIn()),
		validation.Field(&p.CategoryID, validation.NilOrNotEmpty.Error("categoryId cannot be empty")),
		validation.Field(&p.GridRow, validation.Min(0)),
		validation.Field(&p.GridColumn, validation.Min(0)),
	)
}

// GridPosition is the payload of a grid-move request.
type GridPosition struct {
	GridRow    int `json:"gridRow"`
	GridColumn int `json:"gridColumn"`
}

func (g GridPosition) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.GridRow, validation.Min(0)),
		validation.Field(&g.GridColumn, validation.Min(0)),
	)
}

// Validate checks a settings patch; cleared (null/empty) fields are
// always acceptable, values must stay within their declared bounds.
func (p SettingsPatch) Validate() error {
	return validation.Errors{
		"backgroundBrightness": optionalRange(p.BackgroundBrightness, MinBackgroundBrightness, MaxBackgroundBrightness),
		"backgroundOpacity":    optionalRange(p.BackgroundOpacity, MinBackgroundOpacity, MaxBackgroundOpacity),
		"healthCheckInterval":  optionalRange(p.HealthCheckInterval, MinHealthCheckInterval, MaxHealthCheckInterval),
		"backgroundImageUrl":   optionalURL(p.BackgroundImageURL),
	}.Filter()
}

func optionalRange(o OptionalInt, min, max int) error {
	if !o.Present || o.Value == nil {
		return nil
	}
	return intRange(*o.Value, min, max)
}

func intRange(v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("must be between %d and %d", min, max)
	}
	return nil
}

func optionalURL(o OptionalString) error {
	if !o.Present || o.Value == nil || *o.Value == "" {
		return nil
	}
	return absoluteURL(*o.Value)
}

// deref adapts a string rule to *string patch fields.
func deref(rule func(interface{}) error) func(interface{}) error {
	return func(value interface{}) error {
		p, ok := value.(*string)
		if !ok || p == nil {
			return nil
		}
		return rule(*p)
	}
}
