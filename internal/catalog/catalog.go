// Package catalog holds the in-memory pedal catalog and the pure query
// layer over it. The catalog is populated once at startup and never
// mutated, so it is safe for unlimited concurrent readers.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"pedal-storefront/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Catalog is the authoritative, immutable list of pedals. Construct it
// with New or Load and inject it where queries are needed; there is no
// package-level instance.
type Catalog struct {
	pedals []models.Pedal
	bySlug map[string]int
}

type seedFile struct {
	Pedals []models.Pedal `yaml:"pedals"`
}

// Load builds the catalog from the embedded seed data.
func Load() (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}
	return New(seed.Pedals)
}

// New validates the records and builds a catalog. Duplicate slugs,
// unknown enum values and negative prices are startup errors, never
// silently accepted.
func New(pedals []models.Pedal) (*Catalog, error) {
	c := &Catalog{
		pedals: make([]models.Pedal, len(pedals)),
		bySlug: make(map[string]int, len(pedals)),
	}
	copy(c.pedals, pedals)

	for i, p := range c.pedals {
		if p.Slug == "" {
			return nil, fmt.Errorf("pedal %d: empty slug", i)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("pedal %q: duplicate slug", p.Slug)
		}
		if p.PriceCents < 0 {
			return nil, fmt.Errorf("pedal %q: negative price", p.Slug)
		}
		if _, ok := models.ParseProductStatus(string(p.Status)); !ok {
			return nil, fmt.Errorf("pedal %q: unknown status %q", p.Slug, p.Status)
		}
		if _, ok := models.ParsePedalType(string(p.Type)); !ok {
			return nil, fmt.Errorf("pedal %q: unknown type %q", p.Slug, p.Type)
		}
		if p.ProductLine != "" {
			if _, ok := models.ParseProductLine(string(p.ProductLine)); !ok {
				return nil, fmt.Errorf("pedal %q: unknown product line %q", p.Slug, p.ProductLine)
			}
		}
		c.bySlug[p.Slug] = i
	}
	return c, nil
}

// All returns the full catalog in insertion order.
func (c *Catalog) All() []models.Pedal {
	out := make([]models.Pedal, len(c.pedals))
	copy(out, c.pedals)
	return out
}

// Len returns the number of pedals in the catalog.
func (c *Catalog) Len() int {
	return len(c.pedals)
}

// ByStatus returns the pedals with the given status. An empty result is
// a normal outcome, not an error.
func (c *Catalog) ByStatus(status models.ProductStatus) []models.Pedal {
	return c.filter(func(p models.Pedal) bool { return p.Status == status })
}

// Available returns the pedals currently for sale.
func (c *Catalog) Available() []models.Pedal {
	return c.ByStatus(models.StatusAvailable)
}

// BySlug returns the pedal with the given slug. The second result is
// false when no pedal matches; callers branch on it explicitly.
func (c *Catalog) BySlug(slug string) (models.Pedal, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Pedal{}, false
	}
	return c.pedals[i], true
}

// ByType returns the pedals of the given effect category.
func (c *Catalog) ByType(t models.PedalType) []models.Pedal {
	return c.filter(func(p models.Pedal) bool { return p.Type == t })
}

// ByTag returns the pedals carrying the given free-text tag.
func (c *Catalog) ByTag(tag string) []models.Pedal {
	return c.filter(func(p models.Pedal) bool { return p.HasTag(tag) })
}

// ByProductLine returns the pedals in the given line, regardless of
// status.
func (c *Catalog) ByProductLine(line models.ProductLine) []models.Pedal {
	return c.filter(func(p models.Pedal) bool { return p.ProductLine == line })
}

// AvailableTypes returns the distinct types present among available
// pedals, in first-seen catalog order. The order is deterministic for a
// given catalog so the filter bar renders stably.
func (c *Catalog) AvailableTypes() []models.PedalType {
	seen := make(map[models.PedalType]bool)
	var types []models.PedalType
	for _, p := range c.pedals {
		if p.Status != models.StatusAvailable || seen[p.Type] {
			continue
		}
		seen[p.Type] = true
		types = append(types, p.Type)
	}
	return types
}

// ForFilter returns the available pedals matching the filter: all of
// them for the All sentinel, otherwise those of the selected type.
func (c *Catalog) ForFilter(filter models.FilterID) []models.Pedal {
	if filter == models.FilterAll {
		return c.Available()
	}
	return c.filter(func(p models.Pedal) bool {
		return p.Status == models.StatusAvailable && p.Type == models.PedalType(filter)
	})
}

func (c *Catalog) filter(keep func(models.Pedal) bool) []models.Pedal {
	out := make([]models.Pedal, 0)
	for _, p := range c.pedals {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
