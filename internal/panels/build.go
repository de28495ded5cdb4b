// Package panels turns navigation state into the data of the content panel.
// Builders are pure: the same state always yields the same panel.
package panels

import (
	"strings"

	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/navtree"
	"github.com/heorconnect/heor-connect/internal/router"
)

// builder renders one route.
type builder func(tree *navtree.Tree, s *router.State) model.Panel

var builders = map[string]builder{
	model.RouteIntroduction:  buildIntroduction,
	model.RouteObjectives:    buildObjectives,
	model.RoutePlatform:      buildPlatform,
	model.RoutePayer:         buildPayer,
	model.RouteMarket:        buildMarket,
	model.RouteCountryDetail: buildCountryDetail,
	model.RouteMethodology:   buildMethodology,
}

// Build resolves the route for s and renders its panel.
func Build(r *router.Router, s *router.State) (model.Panel, router.Resolution) {
	res := r.RenderContent(s)
	b, ok := builders[res.Route]
	if !ok {
		// Only reachable if a route was added to model.Routes without a builder.
		b = buildIntroduction
	}
	p := b(r.Tree(), s)
	p.Route = res.Route
	return p, res
}

// HasBuilder reports whether route has a panel builder.
func HasBuilder(route string) bool {
	_, ok := builders[route]
	return ok
}

func buildIntroduction(tree *navtree.Tree, _ *router.State) model.Panel {
	brand := tree.Branding()
	return model.Panel{
		Title:    "INTRODUCTION",
		Subtitle: "Welcome to HEOR Connect Platform - From Evidence to Access",
		Blocks: []model.Block{
			{
				Kind:    model.BlockText,
				Heading: "HEOR Connect Platform Overview",
				Body: []string{
					"The HEOR Connect Platform is a comprehensive solution designed to advance Health Economics and Outcomes Research (HEOR) and Health Technology Assessment (HTA) maturity across the MEAR region.",
				},
			},
			{Kind: model.BlockCards, Items: introductionFeatures},
			{Kind: model.BlockText, Body: []string{brand.TaglineSub}},
		},
	}
}

func buildObjectives(_ *navtree.Tree, _ *router.State) model.Panel {
	return model.Panel{
		Title:    "OBJECTIVES",
		Subtitle: "Strategic Goals and Mission of HEOR Connect Platform",
		Blocks:   []model.Block{{Kind: model.BlockCards, Items: objectives}},
	}
}

func buildPlatform(_ *navtree.Tree, s *router.State) model.Panel {
	p := model.Panel{
		Title:    "PLATFORM",
		Subtitle: "HEOR Connect Platform Architecture and Features",
		Tabs: []model.TabGroup{{
			Kind:   model.TabSection,
			Tabs:   PlatformSections,
			Active: s.ActiveSectionID,
		}},
	}

	for _, sec := range PlatformSections {
		if sec.ID != s.ActiveSectionID {
			p.Blocks = append(p.Blocks, model.Block{
				Kind:    model.BlockPlaceholder,
				Icon:    "fas fa-lock",
				Heading: sec.Label,
				Body:    []string{"Click to explore"},
			})
			continue
		}
		p.Blocks = append(p.Blocks,
			model.Block{
				Kind:    model.BlockText,
				Heading: "HEOR Connect Platform " + sec.Label,
				Body:    []string{pendingApproval},
			},
			model.Block{Kind: model.BlockTags, Items: platformTags},
		)
	}
	return p
}

func analysisTabs(s *router.State) []model.TabGroup {
	return []model.TabGroup{{
		Kind:   model.TabSection,
		Tabs:   AnalysisModules,
		Active: s.ActiveSectionID,
	}}
}

// moduleLabel returns the label of the active analysis module, or "" when
// the section is not a module (blank heading, as on first visit).
func moduleLabel(id string) string {
	for _, m := range AnalysisModules {
		if m.ID == id {
			return m.Label
		}
	}
	return ""
}

func buildPayer(_ *navtree.Tree, s *router.State) model.Panel {
	p := model.Panel{
		Title:    "PAYER PERSPECTIVE - MEAR REGION",
		Subtitle: "Comprehensive Payer Analysis and Value Assessment",
		Tabs:     analysisTabs(s),
	}

	heading := moduleLabel(s.ActiveSectionID)
	switch s.ActiveSectionID {
	case SectionGapsHeatmaps:
		cells := make([]model.Item, 0, 12)
		for _, c := range HeatmapComponents() {
			cells = append(cells, model.Item{Title: c})
		}
		p.Blocks = append(p.Blocks, model.Block{
			Kind:    model.BlockHeatmap,
			Heading: heading,
			Items:   cells,
			Body: []string{
				"Heatmap Figure and interpretation will be added later after structure approval",
				"C1: This will be applied to all the other components",
			},
		})
	case SectionRecommendations:
		p.Blocks = append(p.Blocks, model.Block{
			Kind:    model.BlockText,
			Heading: heading,
			Items:   []model.Item{{Title: "List of Recommendations"}},
			Body:    []string{"Will be added later after structure approval"},
		})
	default:
		body := []string{"Payer perspective analysis, figures, and interpretations will be added later after structure approval"}
		if s.ActiveSectionID == SectionActionPlan {
			body = append(body, "Phases & KPIs will be added later after structure approval")
		}
		p.Blocks = append(p.Blocks, model.Block{
			Kind:    model.BlockPlaceholder,
			Icon:    "fas fa-chart-bar",
			Heading: heading,
			Body:    body,
		})
	}
	return p
}

func buildMarket(_ *navtree.Tree, s *router.State) model.Panel {
	return model.Panel{
		Title:    "MARKET ACCESS - MEAR REGION",
		Subtitle: "Strategic Market Access Framework and Implementation",
		Tabs:     analysisTabs(s),
		Blocks: []model.Block{{
			Kind:    model.BlockPlaceholder,
			Icon:    "fas fa-store",
			Heading: moduleLabel(s.ActiveSectionID),
			Body: []string{
				"Market Access specific content, strategies, and implementation frameworks will be added later after structure approval",
				"Same analytical flow as Payer Perspective but with market access specific insights and recommendations.",
			},
		}},
	}
}

// buildCountryDetail renders blank name fields when the country is not in
// the enumeration rather than failing.
func buildCountryDetail(tree *navtree.Tree, s *router.State) model.Panel {
	country, _ := tree.Country(s.ActiveCountryID)
	perspective := s.ActivePerspective
	if !perspective.Valid() {
		perspective = model.PerspectivePayer
	}

	steps := make([]model.Item, 0, countryFlowSteps)
	for _, m := range AnalysisModules[:countryFlowSteps] {
		label, _, _ := strings.Cut(m.Label, ":")
		steps = append(steps, model.Item{Icon: m.Icon, Title: label})
	}

	return model.Panel{
		Title:    strings.TrimSpace(country.Flag + " " + country.Name + " - COUNTRY ANALYSIS"),
		Subtitle: "Country-specific HEOR & HTA Maturity Assessment",
		Tabs: []model.TabGroup{{
			Kind: model.TabPerspective,
			Tabs: []model.Tab{
				{ID: string(model.PerspectivePayer), Label: model.PerspectivePayer.Label(), Icon: "fas fa-user-tie"},
				{ID: string(model.PerspectiveMarket), Label: model.PerspectiveMarket.Label(), Icon: "fas fa-chart-line"},
			},
			Active: string(perspective),
		}},
		Blocks: []model.Block{
			{Kind: model.BlockSteps, Items: steps},
			{
				Kind:    model.BlockText,
				Heading: country.Name + " - " + perspective.Label(),
				Body: []string{
					"The same flow and interactivity as MEAR regional analysis but with content specialized for " + country.Name + ".",
					pendingApproval,
				},
			},
			{Kind: model.BlockCards, Items: countryHighlights},
		},
	}
}

func buildMethodology(_ *navtree.Tree, _ *router.State) model.Panel {
	return model.Panel{
		Title:    "METHODOLOGY",
		Subtitle: "HEOR Connect Platform Analytical Framework and Approach",
		Blocks: []model.Block{
			{Kind: model.BlockCards, Heading: "Platform Methodology Framework", Items: methodologyItems},
			{
				Kind: model.BlockPlaceholder,
				Icon: "fas fa-project-diagram",
				Body: []string{"Detailed methodology flowchart and framework will be added later after structure approval"},
			},
		},
	}
}
