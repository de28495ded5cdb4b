package model

// BlockKind selects how the renderer lays out a panel block.
type BlockKind int

const (
	BlockText        BlockKind = iota // heading + paragraph
	BlockCards                        // grid of titled items
	BlockTags                         // inline tags
	BlockHeatmap                      // component cells + legend
	BlockPlaceholder                  // "content coming later"
	BlockSteps                        // ordered flow steps
)

// Item is one entry inside a block (a card, a tag, a heatmap cell).
type Item struct {
	Icon  string
	Title string
	Body  string
}

// Block is one renderable section of a panel.
type Block struct {
	Kind    BlockKind
	Icon    string
	Heading string
	Body    []string
	Items   []Item
}

// Tab is a selectable section inside a panel.
type Tab struct {
	ID    string
	Label string
	Icon  string
}

// TabGroup is a row of tabs with one active entry.
// Kind distinguishes section tabs from perspective tabs.
type TabGroup struct {
	Kind   TabKind
	Tabs   []Tab
	Active string
}

// TabKind tells the host which event a tab selection raises.
type TabKind int

const (
	TabSection TabKind = iota
	TabPerspective
)

// Panel is the renderable output of the view router: plain data,
// styled by the host.
type Panel struct {
	Route    string
	Title    string
	Subtitle string
	Tabs     []TabGroup
	Blocks   []Block
}

// Text returns every human-readable string in the panel, in render order.
func (p Panel) Text() []string {
	out := []string{p.Title, p.Subtitle}
	for _, g := range p.Tabs {
		for _, t := range g.Tabs {
			out = append(out, t.Label)
		}
	}
	for _, b := range p.Blocks {
		out = append(out, b.Heading)
		out = append(out, b.Body...)
		for _, it := range b.Items {
			out = append(out, it.Title, it.Body)
		}
	}
	return out
}
