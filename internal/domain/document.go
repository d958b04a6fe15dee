package domain

// Document is the complete persisted state: one coherent JSON file on
// disk, rewritten in full on every mutation. It is also the wire shape
// of config export/import.
type Document struct {
	Categories []Category     `json:"categories"`
	Bookmarks  []Bookmark     `json:"bookmarks"`
	ApiCalls   []ApiCall      `json:"apiCalls"`
	Users      []User         `json:"users"`
	Settings   StoredSettings `json:"settings"`
}
