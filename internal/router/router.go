// Package router maps navigation state to the panel the dashboard shows and
// applies the click transitions that change that state.
package router

import (
	"errors"
	"fmt"

	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/navtree"
)

var (
	// ErrUnknownNode is returned when a click names no node in the tree.
	ErrUnknownNode = errors.New("unknown navigation node")
	// ErrInvalidPerspective is returned for perspectives outside the enum.
	ErrInvalidPerspective = errors.New("invalid perspective")
	// ErrUnroutableLeaf is returned by New when a leaf has no panel.
	ErrUnroutableLeaf = errors.New("leaf has no panel route")
)

// Router owns the taxonomy and applies transitions to a State.
// It holds no per-session data; the host owns the State.
type Router struct {
	tree *navtree.Tree
}

// Resolution is the outcome of RenderContent.
type Resolution struct {
	Route    string
	Fallback bool   // true when Request was not a known route
	Request  string // the ActiveTopID that was resolved
}

// New returns a router for tree. Every leaf must name a known route so
// that each reachable top id maps to exactly one panel.
func New(tree *navtree.Tree) (*Router, error) {
	if err := CheckRoutes(tree); err != nil {
		return nil, err
	}
	return &Router{tree: tree}, nil
}

// CheckRoutes verifies that every leaf of tree routes to a panel.
func CheckRoutes(tree *navtree.Tree) error {
	var errs []error
	tree.Walk(func(n *model.NavNode, _ int) bool {
		if n.Kind == model.KindLeaf && !model.IsRoute(n.ID) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnroutableLeaf, n.ID))
		}
		return true
	})
	return errors.Join(errs...)
}

// Tree returns the taxonomy the router navigates.
func (r *Router) Tree() *navtree.Tree { return r.tree }

// NewState returns the state shown on mount.
func (r *Router) NewState() *State {
	return &State{
		ActiveTopID:       r.tree.DefaultRoute(),
		ActiveSectionID:   r.tree.DefaultSection(),
		ActivePerspective: model.PerspectivePayer,
		Expanded:          make(map[string]bool),
	}
}

// ClickNav applies a click on the navigation entry id.
// Leaves select their route, groups toggle their submenu and countries
// open the country detail route. Unknown ids leave s untouched.
func (r *Router) ClickNav(s *State, id string) error {
	n, ok := r.tree.FindNode(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	switch n.Kind {
	case model.KindGroup:
		s.Toggle(id)
	case model.KindCountry:
		s.ActiveTopID = model.RouteCountryDetail
		s.ActiveCountryID = id
		s.ActiveSectionID = r.tree.DefaultSection()
	default:
		s.ActiveTopID = id
		s.ActiveSectionID = r.tree.DefaultSection()
		s.ActiveCountryID = ""
	}
	return nil
}

// ClickSection selects a tab inside the current panel.
func (r *Router) ClickSection(s *State, id string) {
	s.ActiveSectionID = id
}

// ClickPerspective switches the country detail perspective.
func (r *Router) ClickPerspective(s *State, p model.Perspective) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPerspective, p)
	}
	s.ActivePerspective = p
	return nil
}

// RenderContent resolves the panel route for s. It is total: ids with no
// panel resolve to the taxonomy's default route with Fallback set.
func (r *Router) RenderContent(s *State) Resolution {
	res := Resolution{Request: s.ActiveTopID}
	if model.IsRoute(s.ActiveTopID) {
		res.Route = s.ActiveTopID
		return res
	}
	res.Route = r.tree.DefaultRoute()
	res.Fallback = true
	return res
}
