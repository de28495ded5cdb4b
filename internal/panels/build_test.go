package panels

import (
	"strings"
	"testing"

	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/navtree"
	"github.com/heorconnect/heor-connect/internal/router"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, taxonomy string) *router.Router {
	t.Helper()
	tree, err := navtree.Load(taxonomy)
	require.NoError(t, err)
	r, err := router.New(tree)
	require.NoError(t, err)
	return r
}

func TestEveryRouteHasBuilder(t *testing.T) {
	t.Parallel()
	for _, route := range model.Routes() {
		assert.True(t, HasBuilder(route), route)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "mear")
	for _, route := range model.Routes() {
		s := r.NewState()
		s.ActiveTopID = route
		s.ActiveCountryID = "egypt"

		first, res := Build(r, s)
		second, _ := Build(r, s.Clone())
		assert.Equal(t, route, res.Route)
		assert.Equal(t, route, first.Route)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%s: panel differs between builds (-first +second):\n%s", route, diff)
		}
	}
}

func TestBuild_FallbackRendersDefault(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "regional")
	s := r.NewState()
	s.ActiveTopID = "nowhere"

	p, res := Build(r, s)
	assert.True(t, res.Fallback)
	assert.Equal(t, model.RoutePlatform, p.Route)
	assert.Equal(t, "PLATFORM", p.Title)
}

func TestPlatform_ActiveSectionExpanded(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "mear")
	s := r.NewState()
	require.NoError(t, r.ClickNav(s, model.RoutePlatform))
	r.ClickSection(s, "features")

	p, _ := Build(r, s)
	require.Len(t, p.Tabs, 1)
	assert.Equal(t, "features", p.Tabs[0].Active)

	var locked, open int
	for _, b := range p.Blocks {
		switch b.Kind {
		case model.BlockPlaceholder:
			locked++
		case model.BlockText:
			open++
			assert.Equal(t, "HEOR Connect Platform Key Features", b.Heading)
		}
	}
	assert.Equal(t, 2, locked)
	assert.Equal(t, 1, open)
}

func TestPayer_GapsHeatmapsShowsTwelveComponents(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "mear")
	s := r.NewState()
	require.NoError(t, r.ClickNav(s, model.RoutePayer))
	r.ClickSection(s, SectionGapsHeatmaps)

	p, _ := Build(r, s)
	require.Len(t, p.Blocks, 1)
	b := p.Blocks[0]
	assert.Equal(t, model.BlockHeatmap, b.Kind)
	require.Len(t, b.Items, 12)
	assert.Equal(t, "C1", b.Items[0].Title)
	assert.Equal(t, "C12", b.Items[11].Title)
}

func TestPayer_DefaultSectionHasBlankHeading(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "mear")
	s := r.NewState()
	require.NoError(t, r.ClickNav(s, model.RoutePayer))

	p, _ := Build(r, s)
	require.Len(t, p.Blocks, 1)
	assert.Empty(t, p.Blocks[0].Heading)
	assert.Len(t, p.Tabs[0].Tabs, len(AnalysisModules))
}

func TestPayer_ActionPlanMentionsKPIs(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "mear")
	s := r.NewState()
	require.NoError(t, r.ClickNav(s, model.RoutePayer))
	r.ClickSection(s, SectionActionPlan)

	p, _ := Build(r, s)
	assert.Contains(t, strings.Join(p.Text(), "\n"), "Phases & KPIs")
}

func TestCountryDetail(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "mear")
	s := r.NewState()
	require.NoError(t, r.ClickNav(s, "egypt"))
	require.NoError(t, r.ClickPerspective(s, model.PerspectiveMarket))

	p, res := Build(r, s)
	assert.Equal(t, model.RouteCountryDetail, res.Route)
	assert.Contains(t, p.Title, "Egypt")
	require.Len(t, p.Tabs, 1)
	assert.Equal(t, model.TabPerspective, p.Tabs[0].Kind)
	assert.Equal(t, string(model.PerspectiveMarket), p.Tabs[0].Active)

	steps := p.Blocks[0]
	assert.Equal(t, model.BlockSteps, steps.Kind)
	require.Len(t, steps.Items, 5)
	assert.Equal(t, "The Challenge", steps.Items[1].Title)
	assert.Equal(t, "Egypt - Market Access", p.Blocks[1].Heading)
}

func TestCountryDetail_MissingCountryRendersBlank(t *testing.T) {
	t.Parallel()

	r := newRouter(t, "mear")
	s := r.NewState()
	s.ActiveTopID = model.RouteCountryDetail

	var p model.Panel
	require.NotPanics(t, func() { p, _ = Build(r, s) })
	assert.Equal(t, "- COUNTRY ANALYSIS", p.Title)
	assert.Equal(t, " - Payer Perspective", p.Blocks[1].Heading)
}

func TestHeatmapComponents(t *testing.T) {
	t.Parallel()

	got := HeatmapComponents()
	require.Len(t, got, 12)
	for i, c := range got {
		assert.True(t, strings.HasPrefix(c, "C"), "component %d: %s", i, c)
	}
}
