package domain

// HTTPMethods are the verbs a saved API call may use.
var HTTPMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

// ResponseValidationConfig describes the assertion applied to an API
// call's response. Unlike the health engine's flat lookup, JSONKey here
// is a dot-separated path into nested objects (e.g. "data.success").
type ResponseValidationConfig struct {
	ExpectedStatus int    `json:"expectedStatus,omitempty"`
	JSONKey        string `json:"jsonKey,omitempty"`
	JSONValue      string `json:"jsonValue,omitempty"`
}

// ApiCall is a saved HTTP request that can be executed ad hoc from the
// dashboard.
type ApiCall struct {
	ID                        string                    `json:"id"`
	Name                      string                    `json:"name"`
	Description               string                    `json:"description,omitempty"`
	URL                       string                    `json:"url"`
	Method                    string                    `json:"method"`
	Headers                   map[string]string         `json:"headers,omitempty"`
	Body                      string                    `json:"body,omitempty"`
	CategoryID                string                    `json:"categoryId"`
	Icon                      string                    `json:"icon"`
	Color                     string                    `json:"color"`
	Order                     int                       `json:"order"`
	GridRow                   int                       `json:"gridRow"`
	GridColumn                int                       `json:"gridColumn"`
	ResponseValidationEnabled bool                      `json:"responseValidationEnabled"`
	ResponseValidationConfig  *ResponseValidationConfig `json:"responseValidationConfig,omitempty"`
}

// ApiCallInsert is the client-supplied shape for creating an API call.
type ApiCallInsert struct {
	Name                      string                    `json:"name"`
	Description               string                    `json:"description"`
	URL                       string                    `json:"url"`
	Method                    string                    `json:"method"`
	Headers                   map[string]string         `json:"headers"`
	Body                      string                    `json:"body"`
	CategoryID                string                    `json:"categoryId"`
	Icon                      string                    `json:"icon"`
	Color                     string                    `json:"color"`
	Order                     int                       `json:"order"`
	GridRow                   int                       `json:"gridRow"`
	GridColumn                int                       `json:"gridColumn"`
	ResponseValidationEnabled bool                      `json:"responseValidationEnabled"`
	ResponseValidationConfig  *ResponseValidationConfig `json:"responseValidationConfig"`
}

// Normalize fills schema defaults for omitted fields.
func (in *ApiCallInsert) Normalize() {
	if in.Method == "" {
		in.Method = "GET"
	}
	if in.Icon == "" {
		in.Icon = "Zap"
	}
	if in.Color == "" {
		in.Color = "default"
	}
}

// ApiCallPatch is a partial update. Nil fields are left untouched;
// Headers and ResponseValidationConfig replace wholesale when present.
type ApiCallPatch struct {
	Name                      *string                   `json:"name"`
	Description               *string                   `json:"description"`
	URL                       *string                   `json:"url"`
	Method                    *string                   `json:"method"`
	Headers                   map[string]string         `json:"headers"`
	Body                      *string                   `json:"body"`
	CategoryID                *string                   `json:"categoryId"`
	Icon                      *string                   `json:"icon"`
	Color                     *string                   `json:"color"`
	Order                     *int                      `json:"order"`
	GridRow                   *int                      `json:"gridRow"`
	GridColumn                *int                      `json:"gridColumn"`
	ResponseValidationEnabled *bool                     `json:"responseValidationEnabled"`
	ResponseValidationConfig  *ResponseValidationConfig `json:"responseValidationConfig"`
}

// Apply merges the patch into an existing API call.
func (p ApiCallPatch) Apply(a *ApiCall) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.URL != nil {
		a.URL = *p.URL
	}
	if p.Method != nil {
		a.Method = *p.Method
	}
	if p.Headers != nil {
		a.Headers = p.Headers
	}
	if p.Body != nil {
		a.Body = *p.Body
	}
	if p.CategoryID != nil {
		a.CategoryID = *p.CategoryID
	}
	if p.Icon != nil {
		a.Icon = *p.Icon
	}
	if p.Color != nil {
		a.Color = *p.Color
	}
	if p.Order != nil {
		a.Order = *p.Order
	}
	if p.GridRow != nil {
		a.GridRow = *p.GridRow
	}
	if p.GridColumn != nil {
		a.GridColumn = *p.GridColumn
	}
	if p.ResponseValidationEnabled != nil {
		a.ResponseValidationEnabled = *p.ResponseValidationEnabled
	}
	if p.ResponseValidationConfig != nil {
		cfg := *p.ResponseValidationConfig
		a.ResponseValidationConfig = &cfg
	}
}

// ValidationResult reports whether an executed response satisfied the
// configured assertion.
type ValidationResult struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// ApiResponse is the transient result of executing an API call. It is
// returned to the client and never persisted. Request-level failures
// (timeout, DNS, refused connection) are folded into Status 0 rather
// than surfaced as errors, so the caller always has a renderable
// result.
type ApiResponse struct {
	Status           int               `json:"status"`
	StatusText       string            `json:"statusText"`
	Headers          map[string]string `json:"headers"`
	Body             string            `json:"body"`
	Duration         int64             `json:"duration"`
	Timestamp        string            `json:"timestamp"`
	ValidationResult *ValidationResult `json:"validationResult,omitempty"`
}
