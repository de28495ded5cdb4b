package navtree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heorconnect/heor-connect/internal/model"
)

// MaxDepth is the deepest level a node may sit at (root = 1).
const MaxDepth = 3

// Validation failures. A ValidationError wraps one or more of these.
var (
	ErrEmptyID            = errors.New("empty node id")
	ErrEmptyLabel         = errors.New("empty node label")
	ErrDuplicateID        = errors.New("duplicate node id")
	ErrTooDeep            = errors.New("node nested too deep")
	ErrUnknownKind        = errors.New("unknown node kind")
	ErrLeafHasChildren    = errors.New("leaf node has children")
	ErrEmptyGroup         = errors.New("group node has no children")
	ErrDanglingCountry    = errors.New("country node not in country enumeration")
	ErrDuplicateCountry   = errors.New("duplicate country id")
	ErrUnknownOwned       = errors.New("owned id is not a route in this tree")
	ErrUnknownDefault     = errors.New("default route is not a leaf in this tree")
	ErrCountryAtRoot      = errors.New("country node outside a group")
	ErrRouteCollision     = errors.New("node id collides with the country detail route")
	ErrNoNodes            = errors.New("taxonomy has no nodes")
	ErrCountryRouteNoHome = errors.New("country nodes present but no group owns the country detail route")
)

// ValidationError collects every problem found in a taxonomy.
type ValidationError struct {
	Taxonomy string
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	name := e.Taxonomy
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("taxonomy %s: %d problem(s): %s", name, len(e.Problems), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual problems to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

// Validate checks the structural invariants of a taxonomy: unique ids,
// bounded depth, known kinds, countries backed by the enumeration and
// owned ids that resolve. It returns nil or a *ValidationError.
func Validate(tax Taxonomy) error {
	tax.Nodes = cloneNodes(tax.Nodes)
	normalize(&tax)

	var problems []error
	report := func(err error, id string) {
		problems = append(problems, fmt.Errorf("%w: %q", err, id))
	}

	if len(tax.Nodes) == 0 {
		problems = append(problems, ErrNoNodes)
	}

	countries := make(map[string]struct{}, len(tax.Countries))
	for _, c := range tax.Countries {
		if _, dup := countries[c.ID]; dup {
			report(ErrDuplicateCountry, c.ID)
		}
		countries[c.ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	leaves := make(map[string]struct{})
	var owned []string
	hasCountry := false

	var walk func(nodes []model.NavNode, depth int)
	walk = func(nodes []model.NavNode, depth int) {
		for i := range nodes {
			n := &nodes[i]
			if n.ID == "" {
				problems = append(problems, fmt.Errorf("%w (label %q)", ErrEmptyID, n.Label))
			} else if _, dup := seen[n.ID]; dup {
				report(ErrDuplicateID, n.ID)
			}
			seen[n.ID] = struct{}{}

			if n.ID == model.RouteCountryDetail {
				report(ErrRouteCollision, n.ID)
			}
			if strings.TrimSpace(n.Label) == "" {
				report(ErrEmptyLabel, n.ID)
			}
			if depth > MaxDepth {
				report(ErrTooDeep, n.ID)
			}

			switch n.Kind {
			case model.KindLeaf:
				leaves[n.ID] = struct{}{}
				if len(n.Children) > 0 {
					report(ErrLeafHasChildren, n.ID)
				}
			case model.KindCountry:
				hasCountry = true
				if _, ok := countries[n.ID]; !ok {
					report(ErrDanglingCountry, n.ID)
				}
				if depth == 1 {
					report(ErrCountryAtRoot, n.ID)
				}
				if len(n.Children) > 0 {
					report(ErrLeafHasChildren, n.ID)
				}
			case model.KindGroup:
				if len(n.Children) == 0 {
					report(ErrEmptyGroup, n.ID)
				}
			default:
				problems = append(problems, fmt.Errorf("%w %q on node %q", ErrUnknownKind, n.Kind, n.ID))
			}

			owned = append(owned, n.Owns...)
			walk(n.Children, depth+1)
		}
	}
	walk(tax.Nodes, 1)

	ownsCountryRoute := false
	for _, id := range owned {
		if id == model.RouteCountryDetail {
			ownsCountryRoute = true
			continue
		}
		if _, ok := leaves[id]; !ok {
			report(ErrUnknownOwned, id)
		}
	}
	if hasCountry && !ownsCountryRoute {
		problems = append(problems, ErrCountryRouteNoHome)
	}

	if _, ok := leaves[tax.DefaultRoute]; !ok {
		report(ErrUnknownDefault, tax.DefaultRoute)
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Taxonomy: tax.Name, Problems: problems}
}
