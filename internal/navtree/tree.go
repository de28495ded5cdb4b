// Package navtree holds the static navigation taxonomy of the dashboard
// and answers lookup and traversal questions about it.
package navtree

import (
	"github.com/heorconnect/heor-connect/internal/model"
)

// Tree is an immutable, validated navigation taxonomy with lookup indexes.
type Tree struct {
	tax       Taxonomy
	index     map[string]*model.NavNode
	parent    map[string]string
	depth     map[string]int
	owned     map[string]map[string]struct{}
	countries map[string]model.Country
}

// Row is one visible sidebar line produced by Visible.
type Row struct {
	Node     *model.NavNode
	Depth    int // 0 for top-level entries
	Expanded bool
}

// New validates tax and builds its indexes. The taxonomy is copied, so
// later changes to tax do not affect the tree.
func New(tax Taxonomy) (*Tree, error) {
	tax.Nodes = cloneNodes(tax.Nodes)
	tax.Countries = append([]model.Country(nil), tax.Countries...)
	normalize(&tax)
	if err := Validate(tax); err != nil {
		return nil, err
	}

	t := &Tree{
		tax:       tax,
		index:     make(map[string]*model.NavNode),
		parent:    make(map[string]string),
		depth:     make(map[string]int),
		owned:     make(map[string]map[string]struct{}),
		countries: make(map[string]model.Country, len(tax.Countries)),
	}
	for _, c := range tax.Countries {
		t.countries[c.ID] = c
	}

	var index func(nodes []model.NavNode, parent string, depth int)
	index = func(nodes []model.NavNode, parent string, depth int) {
		for i := range nodes {
			n := &nodes[i]
			t.index[n.ID] = n
			t.depth[n.ID] = depth
			if parent != "" {
				t.parent[n.ID] = parent
			}
			index(n.Children, n.ID, depth+1)
		}
	}
	index(t.tax.Nodes, "", 0)

	for i := range t.tax.Nodes {
		t.collectOwned(&t.tax.Nodes[i])
	}
	return t, nil
}

// collectOwned computes the set of ids a node represents: its descendants,
// its declared Owns, and everything its children own.
func (t *Tree) collectOwned(n *model.NavNode) map[string]struct{} {
	set := make(map[string]struct{}, len(n.Owns))
	for _, id := range n.Owns {
		set[id] = struct{}{}
	}
	for i := range n.Children {
		c := &n.Children[i]
		set[c.ID] = struct{}{}
		for id := range t.collectOwned(c) {
			set[id] = struct{}{}
		}
	}
	t.owned[n.ID] = set
	return set
}

// Name returns the taxonomy name.
func (t *Tree) Name() string { return t.tax.Name }

// DefaultRoute is the route shown on mount and used as the fallback panel.
func (t *Tree) DefaultRoute() string { return t.tax.DefaultRoute }

// DefaultSection is the section selected whenever the route changes.
func (t *Tree) DefaultSection() string { return t.tax.DefaultSection }

// Branding returns the header copy.
func (t *Tree) Branding() model.Branding { return t.tax.Branding }

// Roots returns the top-level entries.
func (t *Tree) Roots() []model.NavNode { return t.tax.Nodes }

// Countries returns the country enumeration in declaration order.
func (t *Tree) Countries() []model.Country { return t.tax.Countries }

// Country resolves a country id against the enumeration.
func (t *Tree) Country(id string) (model.Country, bool) {
	c, ok := t.countries[id]
	return c, ok
}

// FindNode returns the node with the given id anywhere in the tree.
func (t *Tree) FindNode(id string) (*model.NavNode, bool) {
	n, ok := t.index[id]
	return n, ok
}

// Depth returns the zero-based depth of id, or -1 if unknown.
func (t *Tree) Depth(id string) int {
	d, ok := t.depth[id]
	if !ok {
		return -1
	}
	return d
}

// Parent returns the id of the node's parent; "" for roots and unknown ids.
func (t *Tree) Parent(id string) string {
	return t.parent[id]
}

// IsAncestorActive reports whether node should be highlighted for activeID:
// the node itself is active, one of its descendants is, or it owns activeID.
func (t *Tree) IsAncestorActive(node *model.NavNode, activeID string) bool {
	if node == nil || activeID == "" {
		return false
	}
	if node.ID == activeID {
		return true
	}
	_, ok := t.owned[node.ID][activeID]
	return ok
}

// Path returns the chain of nodes from the root down to id, or nil if id
// is unknown.
func (t *Tree) Path(id string) []*model.NavNode {
	if _, ok := t.index[id]; !ok {
		return nil
	}
	var chain []*model.NavNode
	for cur := id; cur != ""; cur = t.parent[cur] {
		chain = append(chain, t.index[cur])
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// OwnerOf returns the deepest group that owns id, or nil.
func (t *Tree) OwnerOf(id string) *model.NavNode {
	var best *model.NavNode
	bestDepth := -1
	for nid, set := range t.owned {
		if _, ok := set[id]; !ok {
			continue
		}
		n := t.index[nid]
		if !n.IsGroup() {
			continue
		}
		if d := t.depth[nid]; d > bestDepth || (d == bestDepth && nid < best.ID) {
			best, bestDepth = n, d
		}
	}
	return best
}

// Walk visits every node depth-first in declaration order. Returning false
// from fn stops the walk.
func (t *Tree) Walk(fn func(n *model.NavNode, depth int) bool) {
	var walk func(nodes []model.NavNode, depth int) bool
	walk = func(nodes []model.NavNode, depth int) bool {
		for i := range nodes {
			if !fn(&nodes[i], depth) {
				return false
			}
			if !walk(nodes[i].Children, depth+1) {
				return false
			}
		}
		return true
	}
	walk(t.tax.Nodes, 0)
}

// IDs returns every node id in depth-first order.
func (t *Tree) IDs() []string {
	ids := make([]string, 0, len(t.index))
	t.Walk(func(n *model.NavNode, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Visible flattens the tree into the rows a sidebar shows for the given
// expansion set. Children of collapsed groups are omitted.
func (t *Tree) Visible(expanded map[string]bool) []Row {
	var rows []Row
	var walk func(nodes []model.NavNode, depth int)
	walk = func(nodes []model.NavNode, depth int) {
		for i := range nodes {
			n := &nodes[i]
			open := n.IsGroup() && expanded[n.ID]
			rows = append(rows, Row{Node: n, Depth: depth, Expanded: open})
			if open {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(t.tax.Nodes, 0)
	return rows
}

func cloneNodes(nodes []model.NavNode) []model.NavNode {
	if nodes == nil {
		return nil
	}
	out := make([]model.NavNode, len(nodes))
	for i, n := range nodes {
		out[i] = n
		out[i].Owns = append([]string(nil), n.Owns...)
		out[i].Children = cloneNodes(n.Children)
	}
	return out
}
