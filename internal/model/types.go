package model

// NodeKind tells the router what a click on a navigation entry means.
type NodeKind string

const (
	KindLeaf    NodeKind = "leaf"    // routes to a panel
	KindGroup   NodeKind = "group"   // submenu parent, toggles expansion
	KindCountry NodeKind = "country" // routes to the country detail panel
)

// NavNode is one entry in the navigation taxonomy.
// Icon is an opaque tag handed to the renderer unchanged.
type NavNode struct {
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Icon     string    `yaml:"icon,omitempty"`
	Kind     NodeKind  `yaml:"kind,omitempty"`
	Owns     []string  `yaml:"owns,omitempty"`
	Children []NavNode `yaml:"children,omitempty"`
}

// IsGroup reports whether the node opens a submenu.
func (n *NavNode) IsGroup() bool {
	return n.Kind == KindGroup
}

// Country is one entry of the static country enumeration.
type Country struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Flag string `yaml:"flag,omitempty"`
}

// Branding holds the header copy of a taxonomy.
type Branding struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	Tagline    string `yaml:"tagline"`
	TaglineSub string `yaml:"tagline-sub"`
	Footer     string `yaml:"footer"`
	Version    string `yaml:"version"`
}

// Perspective selects the country detail view.
type Perspective string

const (
	PerspectivePayer  Perspective = "payer"
	PerspectiveMarket Perspective = "market"
)

// Valid reports whether p is one of the known perspectives.
func (p Perspective) Valid() bool {
	return p == PerspectivePayer || p == PerspectiveMarket
}

// Label returns the display label of the perspective.
func (p Perspective) Label() string {
	switch p {
	case PerspectiveMarket:
		return "Market Access"
	default:
		return "Payer Perspective"
	}
}

// Other returns the opposite perspective.
func (p Perspective) Other() Perspective {
	if p == PerspectiveMarket {
		return PerspectivePayer
	}
	return PerspectiveMarket
}
