package seedfile

// Seed is the top-level structure of the bootstrap YAML file.
type Seed struct {
	Categories []SeedCategory `yaml:"categories"`
}

// SeedCategory describes one category with its nested members.
type SeedCategory struct {
	Name      string        `yaml:"name"`
	Columns   int           `yaml:"columns,omitempty"`
	Bookmarks []SeedBookmark `yaml:"bookmarks,omitempty"`
	ApiCalls  []SeedApiCall  `yaml:"apiCalls,omitempty"`
}

// SeedBookmark describes one bookmark entry.
type SeedBookmark struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	URL         string          `yaml:"url"`
	Icon        string          `yaml:"icon,omitempty"`
	Color       string          `yaml:"color,omitempty"`
	HealthCheck *SeedHealthCheck `yaml:"healthCheck,omitempty"`
}

// SeedHealthCheck mirrors the bookmark health configuration.
type SeedHealthCheck struct {
	Enabled        bool   `yaml:"enabled"`
	URL            string `yaml:"url,omitempty"`
	ExpectedStatus int    `yaml:"expectedStatus,omitempty"`
	JSONKey        string `yaml:"jsonKey,omitempty"`
	JSONValue      string `yaml:"jsonValue,omitempty"`
	CheckSSL       bool   `yaml:"checkSsl,omitempty"`
}

// SeedApiCall describes one saved API call entry.
type SeedApiCall struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	URL         string            `yaml:"url"`
	Method      string            `yaml:"method,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	Body        string            `yaml:"body,omitempty"`
	Icon        string            `yaml:"icon,omitempty"`
	Color       string            `yaml:"color,omitempty"`
}
