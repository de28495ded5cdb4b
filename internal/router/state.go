package router

import (
	"maps"
	"sort"

	"github.com/heorconnect/heor-connect/internal/model"
)

// State is the transient navigation state of one dashboard session.
// The host constructs it at mount and drops it at exit.
type State struct {
	ActiveTopID       string
	ActiveSectionID   string
	ActiveCountryID   string // empty when no country is selected
	ActivePerspective model.Perspective
	Expanded          map[string]bool
	Search            string
}

// Toggle flips the expansion of a submenu.
func (s *State) Toggle(id string) {
	if s.Expanded == nil {
		s.Expanded = make(map[string]bool)
	}
	if s.Expanded[id] {
		delete(s.Expanded, id)
		return
	}
	s.Expanded[id] = true
}

// IsExpanded reports whether the submenu id is open.
func (s *State) IsExpanded(id string) bool {
	return s.Expanded[id]
}

// ExpandedIDs returns the open submenus, sorted.
func (s *State) ExpandedIDs() []string {
	ids := make([]string, 0, len(s.Expanded))
	for id, open := range s.Expanded {
		if open {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// SetSearch stores the shared search text.
func (s *State) SetSearch(text string) {
	s.Search = text
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.Expanded = maps.Clone(s.Expanded)
	if c.Expanded == nil {
		c.Expanded = make(map[string]bool)
	}
	return &c
}
