// Package fertilizer holds the catalog of fertilizer products and
// application methods.
package fertilizer

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Fertilizer struct {
	Name            string  `yaml:"name" json:"name"`
	Composition     string  `yaml:"composition" json:"composition"`
	RecommendedRate string  `yaml:"recommended_rate" json:"recommended_rate"`
	Cost            float64 `yaml:"cost" json:"cost"`
}

type Catalog struct {
	Fertilizers []Fertilizer `yaml:"fertilizers" json:"fertilizers"`
	Methods     []string     `yaml:"methods" json:"methods"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("fertilizer: embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog file, or returns the built-in catalog when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	seen := map[string]bool{}
	for _, f := range c.Fertilizers {
		if f.Name == "" {
			return nil, fmt.Errorf("catalog: fertilizer without name")
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("catalog: duplicate fertilizer %q", f.Name)
		}
		seen[f.Name] = true
	}
	return &c, nil
}

// Lookup finds a product by its exact name.
func (c *Catalog) Lookup(name string) (Fertilizer, bool) {
	for _, f := range c.Fertilizers {
		if f.Name == name {
			return f, true
		}
	}
	return Fertilizer{}, false
}

// Composition returns the nutrient composition of a product, or "" for
// products outside the catalog.
func (c *Catalog) Composition(name string) string {
	f, _ := c.Lookup(name)
	return f.Composition
}
