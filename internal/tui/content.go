package tui

import (
	"fmt"
	"strings"

	"github.com/heorconnect/heor-connect/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// tabZone is the clickable span of one tab in the content header.
type tabZone struct {
	line   int
	x0, x1 int // [x0, x1) in content columns
	kind   model.TabKind
	id     string
}

const (
	tabSeparator  = "  "
	heatmapPerRow = 6
)

// breadcrumb returns the labels from the root to the active entry.
func (m *DashboardModel) breadcrumb() string {
	path := m.router.Tree().Path(m.activeNavID())
	if len(path) == 0 {
		return m.panel.Title
	}
	labels := make([]string, len(path))
	for i, n := range path {
		labels[i] = n.Label
	}
	return strings.Join(labels, " › ")
}

// headerLayout renders the fixed rows above the viewport: breadcrumb, title,
// subtitle and tab rows. Tabs wrap to width.
func (m *DashboardModel) headerLayout(width int) ([]string, []tabZone) {
	muted := lipgloss.NewStyle().Foreground(ColorMuted)
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	lines := []string{
		muted.Render(runewidth.Truncate(m.breadcrumb(), width, "…")),
		m.hl(runewidth.Truncate(m.panel.Title, width, "…"), title),
		m.hl(runewidth.Truncate(m.panel.Subtitle, width, "…"), muted.Italic(true)),
	}

	var zones []tabZone
	for _, g := range m.panel.Tabs {
		lines = append(lines, "")
		var row strings.Builder
		x := 0
		for _, t := range g.Tabs {
			label := t.Label
			if t.Icon != "" {
				label = Glyph(t.Icon) + " " + label
			}
			label = runewidth.Truncate(label, width, "…")
			w := runewidth.StringWidth(label)

			if x > 0 && x+len(tabSeparator)+w > width {
				lines = append(lines, row.String())
				row.Reset()
				x = 0
			}
			if x > 0 {
				row.WriteString(tabSeparator)
				x += len(tabSeparator)
			}

			style := muted
			if t.ID == g.Active {
				style = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ColorActive)
			}
			row.WriteString(m.hl(label, style))
			zones = append(zones, tabZone{line: len(lines), x0: x, x1: x + w, kind: g.Kind, id: t.ID})
			x += w
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, muted.Render(strings.Repeat("─", max(0, width))))
	return lines, zones
}

// tabAt returns the tab under a click in content coordinates.
func (m *DashboardModel) tabAt(x, y int) (tabZone, bool) {
	_, zones := m.headerLayout(m.innerWidth())
	for _, z := range zones {
		if z.line == y && x >= z.x0 && x < z.x1 {
			return z, true
		}
	}
	return tabZone{}, false
}

// activateTab applies a tab selection.
func (m *DashboardModel) activateTab(kind model.TabKind, id string) {
	if kind == model.TabPerspective {
		m.selectPerspective(model.Perspective(id))
		return
	}
	m.selectSection(id)
}

// moveTab selects the previous or next tab of the panel's first tab row.
// From a section that is not a tab, right selects the first tab and left
// the last.
func (m *DashboardModel) moveTab(delta int) {
	if len(m.panel.Tabs) == 0 {
		return
	}
	g := m.panel.Tabs[0]
	n := len(g.Tabs)
	if n == 0 {
		return
	}
	idx := -1
	for i, t := range g.Tabs {
		if t.ID == g.Active {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}
	m.activateTab(g.Kind, g.Tabs[idx].ID)
}

// togglePerspective flips the country perspective; only meaningful on the
// country route.
func (m *DashboardModel) togglePerspective() {
	if m.panel.Route != model.RouteCountryDetail {
		return
	}
	m.selectPerspective(m.state.ActivePerspective.Other())
}

// hl renders s in style with the search term highlighted.
func (m *DashboardModel) hl(s string, style lipgloss.Style) string {
	return highlight(s, m.state.Search, style)
}

// renderBlocks renders the scrollable body of the panel.
func (m *DashboardModel) renderBlocks(width int) string {
	if width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(m.panel.Blocks))
	for _, b := range m.panel.Blocks {
		var r string
		switch b.Kind {
		case model.BlockCards:
			r = m.renderCards(b, width)
		case model.BlockTags:
			r = m.renderTags(b, width)
		case model.BlockHeatmap:
			r = m.renderHeatmap(b, width)
		case model.BlockPlaceholder:
			r = m.renderPlaceholder(b, width)
		case model.BlockSteps:
			r = m.renderSteps(b, width)
		default:
			r = m.renderText(b, width)
		}
		if r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (m *DashboardModel) heading(b model.Block) string {
	if b.Heading == "" {
		return ""
	}
	text := b.Heading
	if b.Icon != "" {
		text = Glyph(b.Icon) + " " + text
	}
	return m.hl(text, lipgloss.NewStyle().Bold(true).Foreground(ColorText))
}

func (m *DashboardModel) paragraphs(body []string, width int, style lipgloss.Style) []string {
	wrap := lipgloss.NewStyle().Width(width)
	out := make([]string, 0, len(body))
	for _, p := range body {
		out = append(out, wrap.Render(m.hl(p, style)))
	}
	return out
}

func (m *DashboardModel) renderText(b model.Block, width int) string {
	var lines []string
	if h := m.heading(b); h != "" {
		lines = append(lines, h)
	}
	for _, it := range b.Items {
		lines = append(lines, m.hl("• "+it.Title, lipgloss.NewStyle().Foreground(ColorAccent)))
	}
	lines = append(lines, m.paragraphs(b.Body, width, lipgloss.NewStyle().Foreground(ColorText))...)
	return strings.Join(lines, "\n")
}

func (m *DashboardModel) renderCards(b model.Block, width int) string {
	var lines []string
	if h := m.heading(b); h != "" {
		lines = append(lines, h, "")
	}
	bar := lipgloss.NewStyle().Foreground(ColorBrand).Render("▌ ")
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	body := lipgloss.NewStyle().Foreground(ColorText)
	for i, it := range b.Items {
		if i > 0 {
			lines = append(lines, "")
		}
		head := it.Title
		if it.Icon != "" {
			head = Glyph(it.Icon) + " " + head
		}
		lines = append(lines, bar+m.hl(head, title))
		if it.Body != "" {
			wrapped := lipgloss.NewStyle().Width(max(1, width-2)).Render(m.hl(it.Body, body))
			for _, l := range strings.Split(wrapped, "\n") {
				lines = append(lines, bar+l)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m *DashboardModel) renderTags(b model.Block, width int) string {
	tag := lipgloss.NewStyle().Foreground(ColorText).Background(ColorBrand).Padding(0, 1)
	var rows []string
	var row []string
	x := 0
	for _, it := range b.Items {
		w := runewidth.StringWidth(it.Title) + 2
		if x > 0 && x+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, x = nil, 0
		}
		if x > 0 {
			x++
		}
		row = append(row, m.hl(it.Title, tag))
		x += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

func (m *DashboardModel) renderHeatmap(b model.Block, width int) string {
	var lines []string
	if h := m.heading(b); h != "" {
		lines = append(lines, h, "")
	}
	cell := lipgloss.NewStyle().
		Width(6).
		Align(lipgloss.Center).
		Foreground(ColorText).
		Background(ColorBrand)

	perRow := min(heatmapPerRow, max(1, width/7))
	var row []string
	for _, it := range b.Items {
		row = append(row, m.hl(it.Title, cell))
		if len(row) == perRow {
			lines = append(lines, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, " "))
	}
	lines = append(lines, "")
	lines = append(lines, m.paragraphs(b.Body, width, lipgloss.NewStyle().Foreground(ColorMuted))...)
	return strings.Join(lines, "\n")
}

func (m *DashboardModel) renderPlaceholder(b model.Block, width int) string {
	boxWidth := max(10, width-2)
	inner := []string{}
	if h := m.heading(b); h != "" {
		inner = append(inner, h)
	} else if b.Icon != "" {
		inner = append(inner, lipgloss.NewStyle().Foreground(ColorMuted).Render(Glyph(b.Icon)))
	}
	inner = append(inner, m.paragraphs(b.Body, boxWidth-4, lipgloss.NewStyle().Foreground(ColorMuted).Italic(true))...)

	return lipgloss.NewStyle().
		Width(boxWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(strings.Join(inner, "\n"))
}

func (m *DashboardModel) renderSteps(b model.Block, width int) string {
	num := lipgloss.NewStyle().Bold(true).Foreground(ColorText).Background(ColorBrand).Padding(0, 1)
	label := lipgloss.NewStyle().Foreground(ColorText)
	arrow := lipgloss.NewStyle().Foreground(ColorMuted).Render("  ↓")

	lines := make([]string, 0, 2*len(b.Items))
	for i, it := range b.Items {
		if i > 0 {
			lines = append(lines, arrow)
		}
		text := runewidth.Truncate(Glyph(it.Icon)+" "+it.Title, max(1, width-5), "…")
		lines = append(lines, num.Render(fmt.Sprint(i+1))+" "+m.hl(text, label))
	}
	return strings.Join(lines, "\n")
}
