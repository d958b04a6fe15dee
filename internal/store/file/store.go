package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/logger"
)

const (
	// FileName is the single document holding all persisted state.
	FileName = "linkdock.json"

	// DefaultCategoryName seeds an empty store so the dashboard always
	// has at least one category to drop entities into.
	DefaultCategoryName = "General"
)

var (
	// ErrNotFound is returned when an id does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrGridOccupied is returned when a grid move targets a cell
	// already taken by another entity in the same category.
	ErrGridOccupied = errors.New("grid position occupied")
	// ErrCategoryInUse is returned by DeleteCategory under the reject
	// policy when bookmarks or API calls still reference the category.
	ErrCategoryInUse = errors.New("category still has members")
)

// DeletePolicy decides what happens to a deleted category's members.
type DeletePolicy string

const (
	// DeleteOrphan leaves members with a dangling categoryId, matching
	// the reference behavior.
	DeleteOrphan DeletePolicy = "orphan"
	// DeleteCascade removes the members together with the category.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteReject refuses to delete a non-empty category.
	DeleteReject DeletePolicy = "reject"
)

// ParseDeletePolicy validates a policy string.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case DeleteOrphan, DeleteCascade, DeleteReject:
		return DeletePolicy(s), nil
	}
	return "", fmt.Errorf("unknown delete policy %q", s)
}

// Store keeps the whole dataset in memory and durably rewrites the
// backing document on every mutation. Writes go to a temp file first
// and are renamed into place, so a crash mid-write never corrupts the
// previous state.
type Store struct {
	mu     sync.RWMutex
	path   string
	logger logger.Logger

	categories map[string]*domain.Category
	bookmarks  map[string]*domain.Bookmark
	apiCalls   map[string]*domain.ApiCall
	users      map[string]*domain.User
	settings   domain.StoredSettings

	deletePolicy DeletePolicy
}

// New opens (or creates) the store inside dataDir. A corrupt or
// unreadable document is logged and replaced by the default single
// "General" category rather than failing startup.
func New(dataDir string, policy DeletePolicy, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		path:         filepath.Join(dataDir, FileName),
		logger:       log,
		deletePolicy: policy,
	}
	s.resetLocked()

	if err := s.load(); err != nil {
		log.Warn("failed to load store, starting from defaults",
			logger.String("path", s.path),
			logger.Error(err))
		s.resetLocked()
	}

	s.ensureCategoryLocked()

	if err := s.saveLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// resetLocked clears all in-memory state.
func (s *Store) resetLocked() {
	s.categories = make(map[string]*domain.Category)
	s.bookmarks = make(map[string]*domain.Bookmark)
	s.apiCalls = make(map[string]*domain.ApiCall)
	s.users = make(map[string]*domain.User)
	s.settings = domain.StoredSettings{}
}

// ensureCategoryLocked re-establishes the "at least one category
// exists" invariant.
func (s *Store) ensureCategoryLocked() {
	if len(s.categories) > 0 {
		return
	}
	c := &domain.Category{
		ID:      newID(),
		Name:    DefaultCategoryName,
		Order:   0,
		Columns: domain.DefaultColumns,
	}
	s.categories[c.ID] = c
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // fresh store
		}
		return fmt.Errorf("failed to read document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	s.replaceLocked(doc)
	return nil
}

// replaceLocked swaps in a full document.
func (s *Store) replaceLocked(doc domain.Document) {
	s.resetLocked()
	for i := range doc.Categories {
		c := doc.Categories[i]
		s.categories[c.ID] = &c
	}
	for i := range doc.Bookmarks {
		b := doc.Bookmarks[i]
		s.bookmarks[b.ID] = &b
	}
	for i := range doc.ApiCalls {
		a := doc.ApiCalls[i]
		s.apiCalls[a.ID] = &a
	}
	for i := range doc.Users {
		u := doc.Users[i]
		s.users[u.ID] = &u
	}
	s.settings = doc.Settings
}

// saveLocked serializes the full state and atomically replaces the
// backing document. Callers must hold the write lock.
func (s *Store) saveLocked() error {
	doc := s.documentLocked()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

// documentLocked builds the serializable view, lists sorted by order.
func (s *Store) documentLocked() domain.Document {
	doc := domain.Document{
		Categories: make([]domain.Category, 0, len(s.categories)),
		Bookmarks:  make([]domain.Bookmark, 0, len(s.bookmarks)),
		ApiCalls:   make([]domain.ApiCall, 0, len(s.apiCalls)),
		Users:      make([]domain.User, 0, len(s.users)),
		Settings:   s.settings,
	}
	for _, c := range s.categories {
		doc.Categories = append(doc.Categories, *c)
	}
	for _, b := range s.bookmarks {
		doc.Bookmarks = append(doc.Bookmarks, *b)
	}
	for _, a := range s.apiCalls {
		doc.ApiCalls = append(doc.ApiCalls, *a)
	}
	for _, u := range s.users {
		doc.Users = append(doc.Users, *u)
	}
	sort.Slice(doc.Categories, func(i, j int) bool { return doc.Categories[i].Order < doc.Categories[j].Order })
	sort.Slice(doc.Bookmarks, func(i, j int) bool { return doc.Bookmarks[i].Order < doc.Bookmarks[j].Order })
	sort.Slice(doc.ApiCalls, func(i, j int) bool { return doc.ApiCalls[i].Order < doc.ApiCalls[j].Order })
	sort.Slice(doc.Users, func(i, j int) bool { return doc.Users[i].Username < doc.Users[j].Username })
	return doc
}

// Empty reports whether the store holds nothing beyond categories.
// Used to decide whether the seed file should be applied.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookmarks) == 0 && len(s.apiCalls) == 0
}

// gridOccupiedLocked reports whether (row, col) is taken in categoryID
// by any bookmark or API call other than excludeID.
func (s *Store) gridOccupiedLocked(categoryID string, row, col int, excludeID string) bool {
	for _, b := range s.bookmarks {
		if b.ID != excludeID && b.CategoryID == categoryID && b.GridRow == row && b.GridColumn == col {
			return true
		}
	}
	for _, a := range s.apiCalls {
		if a.ID != excludeID && a.CategoryID == categoryID && a.GridRow == row && a.GridColumn == col {
			return true
		}
	}
	return false
}
