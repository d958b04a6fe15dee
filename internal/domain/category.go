package domain

const (
	// MinColumns and MaxColumns bound the grid width of a category.
	MinColumns = 2
	MaxColumns = 8
	// DefaultColumns is used when a create payload omits the column count.
	DefaultColumns = 4
)

// Category groups bookmarks and API calls on the dashboard.
// Bookmarks and ApiCalls reference it by CategoryID.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Order   int    `json:"order"`
	Columns int    `json:"columns"`
}

// CategoryInsert is the client-supplied shape for creating a category.
// The ID is always server-assigned.
type CategoryInsert struct {
	Name    string `json:"name"`
	Order   int    `json:"order"`
	Columns int    `json:"columns"`
}

// Normalize fills schema defaults for omitted fields.
func (in *CategoryInsert) Normalize() {
	if in.Columns == 0 {
		in.Columns = DefaultColumns
	}
}

// CategoryPatch is a partial update. Nil fields are left untouched.
type CategoryPatch struct {
	Name    *string `json:"name"`
	Order   *int    `json:"order"`
	Columns *int    `json:"columns"`
}

// Apply merges the patch into an existing category.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
	if p.Columns != nil {
		c.Columns = *p.Columns
	}
}
