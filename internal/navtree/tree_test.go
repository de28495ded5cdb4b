package navtree

import (
	"errors"
	"testing"

	"github.com/heorconnect/heor-connect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadMEAR(t *testing.T) *Tree {
	t.Helper()
	tree, err := Load("mear")
	require.NoError(t, err)
	return tree
}

func TestBuiltinTaxonomiesLoad(t *testing.T) {
	t.Parallel()

	names := Builtin()
	require.Equal(t, []string{"mear", "regional"}, names)

	for _, name := range names {
		tree, err := Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, tree.Name())
		assert.Equal(t, model.DefaultSection, tree.DefaultSection())
		assert.Len(t, tree.Countries(), 6)
	}
}

func TestBuiltinTaxonomiesDifferOnlyInData(t *testing.T) {
	t.Parallel()

	mear := loadMEAR(t)
	regional, err := Load("regional")
	require.NoError(t, err)

	assert.Equal(t, model.RouteIntroduction, mear.DefaultRoute())
	assert.Equal(t, model.RoutePlatform, regional.DefaultRoute())
	assert.NotEqual(t, mear.IDs(), regional.IDs())
}

func TestLoad_UnknownName(t *testing.T) {
	t.Parallel()

	_, err := Load("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTaxonomy))
}

func TestFindNode_RoundTripsEveryID(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)
	ids := tree.IDs()
	require.NotEmpty(t, ids)

	for _, id := range ids {
		n, ok := tree.FindNode(id)
		require.True(t, ok, id)
		assert.Equal(t, id, n.ID)
	}
}

func TestFindNode_NotFound(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)
	n, ok := tree.FindNode("atlantis")
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestFindNode_Kinds(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)
	cases := map[string]model.NodeKind{
		"introduction":   model.KindLeaf,
		"mear":           model.KindGroup,
		"mear-payer":     model.KindLeaf,
		"mear-countries": model.KindGroup,
		"egypt":          model.KindCountry,
	}
	for id, want := range cases {
		n, ok := tree.FindNode(id)
		require.True(t, ok, id)
		assert.Equal(t, want, n.Kind, id)
	}
}

func TestIsAncestorActive(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)
	node := func(id string) *model.NavNode {
		n, ok := tree.FindNode(id)
		require.True(t, ok, id)
		return n
	}

	tests := []struct {
		name   string
		node   string
		active string
		want   bool
	}{
		{"self", "methodology", "methodology", true},
		{"unrelated leaf", "methodology", "platform", false},
		{"direct child", "mear", "mear-payer", true},
		{"grandchild", "mear", "egypt", true},
		{"owned route", "mear-countries", model.RouteCountryDetail, true},
		{"owned route inherited by region", "mear", model.RouteCountryDetail, true},
		{"sibling group does not own", "mear-countries", "mear-payer", false},
		{"leaf does not own country detail", "egypt", model.RouteCountryDetail, false},
		{"empty active id", "mear", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.IsAncestorActive(node(tt.node), tt.active))
		})
	}

	assert.False(t, tree.IsAncestorActive(nil, "mear"))
}

func TestIsAncestorActive_NoPrefixMatching(t *testing.T) {
	t.Parallel()

	// An id that merely shares the group's prefix is not owned by it.
	tree := loadMEAR(t)
	mear, _ := tree.FindNode("mear")
	assert.False(t, tree.IsAncestorActive(mear, "mear-unlisted"))
}

func TestPath(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)
	path := tree.Path("egypt")
	require.Len(t, path, 3)
	assert.Equal(t, "mear", path[0].ID)
	assert.Equal(t, "mear-countries", path[1].ID)
	assert.Equal(t, "egypt", path[2].ID)

	assert.Nil(t, tree.Path("atlantis"))
	assert.Len(t, tree.Path("platform"), 1)
}

func TestOwnerOf(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)
	owner := tree.OwnerOf(model.RouteCountryDetail)
	require.NotNil(t, owner)
	assert.Equal(t, "mear-countries", owner.ID)

	assert.Nil(t, tree.OwnerOf("introduction"))
}

func TestVisible_FollowsExpansion(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)

	collapsed := tree.Visible(nil)
	assert.Len(t, collapsed, 5)

	open := tree.Visible(map[string]bool{"mear": true})
	assert.Len(t, open, 8)
	assert.True(t, open[3].Expanded)
	assert.Equal(t, 1, open[4].Depth)

	// Expanding a nested group under a collapsed parent shows nothing extra.
	hidden := tree.Visible(map[string]bool{"mear-countries": true})
	assert.Len(t, hidden, 5)

	all := tree.Visible(map[string]bool{"mear": true, "mear-countries": true})
	assert.Len(t, all, 14)
	assert.Equal(t, 2, all[7].Depth)
}

func TestCountryLookup(t *testing.T) {
	t.Parallel()

	tree := loadMEAR(t)
	c, ok := tree.Country("egypt")
	require.True(t, ok)
	assert.Equal(t, "Egypt", c.Name)

	_, ok = tree.Country("atlantis")
	assert.False(t, ok)
}

func TestEveryCountryNodeIsEnumerated(t *testing.T) {
	t.Parallel()

	for _, name := range Builtin() {
		tree, err := Load(name)
		require.NoError(t, err)
		tree.Walk(func(n *model.NavNode, _ int) bool {
			if n.Kind == model.KindCountry {
				_, ok := tree.Country(n.ID)
				assert.True(t, ok, "%s: %s", name, n.ID)
			}
			return true
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	tax := Taxonomy{
		Name:         "tiny",
		DefaultRoute: "a",
		Nodes:        []model.NavNode{{ID: "a", Label: "A"}},
	}
	tree, err := New(tax)
	require.NoError(t, err)

	tax.Nodes[0].Label = "changed"
	n, _ := tree.FindNode("a")
	assert.Equal(t, "A", n.Label)
	assert.Equal(t, model.KindLeaf, n.Kind)
}
