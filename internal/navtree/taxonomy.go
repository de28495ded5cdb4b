package navtree

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/heorconnect/heor-connect/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomies/*.yaml
var builtinFS embed.FS

// ErrUnknownTaxonomy is returned by Load for names with no embedded file.
var ErrUnknownTaxonomy = errors.New("unknown taxonomy")

// Taxonomy is one configuration of the navigation tree. The built-in
// dashboards differ only in their Taxonomy value.
type Taxonomy struct {
	Name           string          `yaml:"name"`
	DefaultRoute   string          `yaml:"default-route"`
	DefaultSection string          `yaml:"default-section"`
	Branding       model.Branding  `yaml:"branding"`
	Nodes          []model.NavNode `yaml:"nodes"`
	Countries      []model.Country `yaml:"countries"`
}

// Builtin returns the names of the embedded taxonomies, sorted.
func Builtin() []string {
	entries, err := fs.ReadDir(builtinFS, "taxonomies")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load builds the embedded taxonomy with the given name.
func Load(name string) (*Tree, error) {
	data, err := builtinFS.ReadFile(path.Join("taxonomies", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTaxonomy, name, strings.Join(Builtin(), ", "))
	}
	return Parse(data)
}

// LoadFile builds a taxonomy from a YAML file on disk.
func LoadFile(filename string) (*Tree, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy: %w", err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tree, nil
}

// Parse decodes a YAML taxonomy and builds a validated tree from it.
// Unknown keys are rejected so typos surface at startup.
func Parse(data []byte) (*Tree, error) {
	var tax Taxonomy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tax); err != nil {
		return nil, fmt.Errorf("decoding taxonomy: %w", err)
	}
	return New(tax)
}

// normalize fills in defaults: an untyped node with children is a group,
// an untyped node without children is a leaf.
func normalize(tax *Taxonomy) {
	if tax.DefaultSection == "" {
		tax.DefaultSection = model.DefaultSection
	}
	var walk func(nodes []model.NavNode)
	walk = func(nodes []model.NavNode) {
		for i := range nodes {
			n := &nodes[i]
			if n.Kind == "" {
				if len(n.Children) > 0 {
					n.Kind = model.KindGroup
				} else {
					n.Kind = model.KindLeaf
				}
			}
			walk(n.Children)
		}
	}
	walk(tax.Nodes)
}
