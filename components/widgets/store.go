package widgets

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Medium keys. Both hold a single JSON document with the full collection so a
// successful Set is durable for the rest of the session.
const (
	mediumKeyWidgets    = "advisor.widgets"
	mediumKeySelections = "advisor.page_selections"
)

var errNilMedium = errors.New("widgets: persistence medium is required")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store owns the persisted widget collection. All mutations pass through it
// so UpdatedAt always advances and the medium always holds a complete
// snapshot.
type Store struct {
	mu     sync.Mutex
	medium Medium
	now    func() time.Time
	newID  func() string
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock overrides the store clock.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides widget id generation.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore builds a widget store over the given medium.
func NewStore(medium Medium, opts ...StoreOption) (*Store, error) {
	if medium == nil {
		return nil, errNilMedium
	}
	s := &Store{
		medium: medium,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List returns a snapshot of every saved widget. Order is the stored order;
// callers sort explicitly.
func (s *Store) List() ([]SavedWidget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns a single widget by id.
func (s *Store) Get(id string) (SavedWidget, bool, error) {
	widgets, err := s.List()
	if err != nil {
		return SavedWidget{}, false, err
	}
	for _, w := range widgets {
		if w.ID == id {
			return w, true, nil
		}
	}
	return SavedWidget{}, false, nil
}

// Create saves a new widget, assigning id and timestamps.
func (s *Store) Create(req CreateWidgetRequest) (SavedWidget, error) {
	if req.TemplateID == "" {
		return SavedWidget{}, fmt.Errorf("widgets: template id is required")
	}
	if req.Title == "" {
		return SavedWidget{}, fmt.Errorf("widgets: title is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	widgets, err := s.load()
	if err != nil {
		return SavedWidget{}, err
	}
	now := s.now()
	widget := SavedWidget{
		ID:         s.newID(),
		TemplateID: req.TemplateID,
		Title:      req.Title,
		Config:     req.Config,
		Pages:      req.Pages,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	widgets = append(widgets, widget)
	if err := s.persist(widgets); err != nil {
		return SavedWidget{}, err
	}
	return widget, nil
}

// WidgetPatch is a partial update merged over an existing widget. Nil fields
// are left untouched.
type WidgetPatch struct {
	Title  *string         `json:"title,omitempty"`
	Config *map[string]any `json:"config,omitempty"`
	Pages  *[]Page         `json:"pages,omitempty"`
}

// Update merges patch over the widget and refreshes UpdatedAt. The boolean is
// false when the id is unknown; concurrent-tab races are expected and must
// degrade gracefully, so that is not an error.
func (s *Store) Update(id string, patch WidgetPatch) (SavedWidget, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	widgets, err := s.load()
	if err != nil {
		return SavedWidget{}, false, err
	}
	for i := range widgets {
		if widgets[i].ID != id {
			continue
		}
		if patch.Title != nil {
			widgets[i].Title = *patch.Title
		}
		if patch.Config != nil {
			widgets[i].Config = *patch.Config
		}
		if patch.Pages != nil {
			widgets[i].Pages = *patch.Pages
		}
		widgets[i].UpdatedAt = s.now()
		if err := s.persist(widgets); err != nil {
			return SavedWidget{}, false, err
		}
		return widgets[i], true, nil
	}
	return SavedWidget{}, false, nil
}

// Delete removes the widget. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	widgets, err := s.load()
	if err != nil {
		return err
	}
	kept := widgets[:0]
	removed := false
	for _, w := range widgets {
		if w.ID == id {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	if !removed {
		return nil
	}
	return s.persist(kept)
}

func (s *Store) load() ([]SavedWidget, error) {
	raw, ok, err := s.medium.Get(mediumKeyWidgets)
	if err != nil {
		return nil, fmt.Errorf("widgets: read widget collection: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var widgets []SavedWidget
	if err := json.UnmarshalFromString(raw, &widgets); err != nil {
		// Malformed stored content loads as empty rather than failing startup.
		return nil, nil
	}
	return widgets, nil
}

func (s *Store) persist(widgets []SavedWidget) error {
	raw, err := json.MarshalToString(widgets)
	if err != nil {
		return fmt.Errorf("widgets: encode widget collection: %w", err)
	}
	if err := s.medium.Set(mediumKeyWidgets, raw); err != nil {
		return fmt.Errorf("widgets: write widget collection: %w", err)
	}
	return nil
}
