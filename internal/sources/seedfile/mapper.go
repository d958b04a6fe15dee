package seedfile

import (
	"net/url"

	"github.com/linkdock/linkdock/internal/domain"
)

// CategorySeed is one mapped category with the insert shapes of its
// members. Grid cells are assigned left-to-right, top-to-bottom within
// the category's column count.
type CategorySeed struct {
	Category  domain.CategoryInsert
	Bookmarks []domain.BookmarkInsert
	ApiCalls  []domain.ApiCallInsert
}

// Mapper converts seed entries to domain insert shapes.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts a parsed seed into per-category insert batches.
// Entries without a name or with an unparsable URL are skipped.
func (m *Mapper) Map(seed Seed) []CategorySeed {
	out := make([]CategorySeed, 0, len(seed.Categories))

	for order, sc := range seed.Categories {
		if sc.Name == "" {
			continue
		}

		cat := domain.CategoryInsert{
			Name:    sc.Name,
			Order:   order,
			Columns: sc.Columns,
		}
		cat.Normalize()

		cs := CategorySeed{Category: cat}
		cell := 0

		for _, sb := range sc.Bookmarks {
			if sb.Name == "" || !validURL(sb.URL) {
				continue
			}
			in := domain.BookmarkInsert{
				Name:        sb.Name,
				Description: sb.Description,
				URL:         sb.URL,
				Icon:        sb.Icon,
				Color:       sb.Color,
				Order:       cell,
				GridRow:     cell / cat.Columns,
				GridColumn:  cell % cat.Columns,
			}
			if sb.HealthCheck != nil {
				in.HealthCheckEnabled = sb.HealthCheck.Enabled
				in.HealthCheckConfig = &domain.HealthCheckConfig{
					URL:            sb.HealthCheck.URL,
					ExpectedStatus: sb.HealthCheck.ExpectedStatus,
					JSONKey:        sb.HealthCheck.JSONKey,
					JSONValue:      sb.HealthCheck.JSONValue,
					CheckSSL:       sb.HealthCheck.CheckSSL,
				}
			}
			in.Normalize()
			cs.Bookmarks = append(cs.Bookmarks, in)
			cell++
		}

		for _, sa := range sc.ApiCalls {
			if sa.Name == "" || !validURL(sa.URL) {
				continue
			}
			in := domain.ApiCallInsert{
				Name:        sa.Name,
				Description: sa.Description,
				URL:         sa.URL,
				Method:      sa.Method,
				Headers:     sa.Headers,
				Body:        sa.Body,
				Icon:        sa.Icon,
				Color:       sa.Color,
				Order:       cell,
				GridRow:     cell / cat.Columns,
				GridColumn:  cell % cat.Columns,
			}
			in.Normalize()
			cs.ApiCalls = append(cs.ApiCalls, in)
			cell++
		}

		out = append(out, cs)
	}

	return out
}

func validURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}
