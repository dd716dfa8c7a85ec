package widgets

import (
	"fmt"
	"sync"
)

// SelectionStore persists each page's explicit, user-ordered widget subset.
// Absence of an entry means "no explicit selection" and the resolver falls
// back to natural order.
type SelectionStore struct {
	mu     sync.Mutex
	medium Medium
}

// NewSelectionStore builds a selection store over the given medium.
func NewSelectionStore(medium Medium) (*SelectionStore, error) {
	if medium == nil {
		return nil, errNilMedium
	}
	return &SelectionStore{medium: medium}, nil
}

// Selection returns the ordered widget ids selected for the page. A nil
// result means no selection exists. Entries may reference deleted widgets;
// the resolver drops them.
func (s *SelectionStore) Selection(page Page) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selections, err := s.load()
	if err != nil {
		return nil, err
	}
	return selections[page], nil
}

// Save overwrites the page's selection list.
func (s *SelectionStore) Save(page Page, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	selections, err := s.load()
	if err != nil {
		return err
	}
	if selections == nil {
		selections = map[Page][]string{}
	}
	selections[page] = ids
	return s.persist(selections)
}

// Clear removes the page's explicit selection, restoring natural order.
func (s *SelectionStore) Clear(page Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	selections, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := selections[page]; !ok {
		return nil
	}
	delete(selections, page)
	return s.persist(selections)
}

func (s *SelectionStore) load() (map[Page][]string, error) {
	raw, ok, err := s.medium.Get(mediumKeySelections)
	if err != nil {
		return nil, fmt.Errorf("widgets: read page selections: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var selections map[Page][]string
	if err := json.UnmarshalFromString(raw, &selections); err != nil {
		return nil, nil
	}
	return selections, nil
}

func (s *SelectionStore) persist(selections map[Page][]string) error {
	raw, err := json.MarshalToString(selections)
	if err != nil {
		return fmt.Errorf("widgets: encode page selections: %w", err)
	}
	if err := s.medium.Set(mediumKeySelections, raw); err != nil {
		return fmt.Errorf("widgets: write page selections: %w", err)
	}
	return nil
}
