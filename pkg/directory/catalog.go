// Package directory holds the firm catalog and the search/facet filter evaluated over it.
package directory

import (
	_ "embed"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/umputun/vcaggregate/pkg/domain"
)

//go:embed catalog.yml
var sampleCatalog []byte

// Catalog is a fixed, ordered list of firms. It is never mutated after construction
// and is safe for concurrent use.
type Catalog struct {
	firms []domain.Firm
	byID  map[string]int
}

// Load reads a YAML catalog file, or the embedded sample catalog if path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(sampleCatalog)
	}
	data, err := os.ReadFile(path) //nolint:gosec // catalog path comes from config
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML list of firms, stripping any markup from text fields
func Parse(data []byte) (*Catalog, error) {
	var firms []domain.Firm
	if err := yaml.Unmarshal(data, &firms); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	policy := bluemonday.StrictPolicy()
	for i := range firms {
		sanitizeFirm(policy, &firms[i])
	}
	return New(firms)
}

// New makes a catalog from firms in the given order. Ids must be non-empty and unique.
func New(firms []domain.Firm) (*Catalog, error) {
	c := &Catalog{firms: make([]domain.Firm, len(firms)), byID: make(map[string]int, len(firms))}
	copy(c.firms, firms)
	for i, f := range c.firms {
		if f.ID == "" {
			return nil, fmt.Errorf("firm #%d (%q) has no id", i+1, f.Name)
		}
		if _, dup := c.byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate firm id %q", f.ID)
		}
		c.byID[f.ID] = i
	}
	return c, nil
}

// All returns every firm in catalog order
func (c *Catalog) All() []domain.Firm {
	res := make([]domain.Firm, len(c.firms))
	copy(res, c.firms)
	return res
}

// Len returns number of firms in the catalog
func (c *Catalog) Len() int { return len(c.firms) }

// Get returns the firm with the given id
func (c *Catalog) Get(id string) (domain.Firm, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Firm{}, false
	}
	return c.firms[i], true
}

// Has reports whether the catalog lists a firm with the given id
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Visible returns firms matching query and selection, in catalog order
func (c *Catalog) Visible(query string, sel domain.Selection) []domain.Firm {
	return Visible(c.firms, query, sel)
}

// Bookmarked returns bookmarked firms in catalog order. Ids missing from the catalog are skipped.
func (c *Catalog) Bookmarked(bookmarks domain.StringSet) []domain.Firm {
	return Bookmarked(c.firms, bookmarks)
}

func sanitizeFirm(p *bluemonday.Policy, f *domain.Firm) {
	clean := func(s string) string {
		// strict policy escapes entities, the catalog keeps plain text
		return strings.TrimSpace(html.UnescapeString(p.Sanitize(s)))
	}
	cleanAll := func(tags []string) []string {
		for i := range tags {
			tags[i] = clean(tags[i])
		}
		return tags
	}

	f.ID = clean(f.ID)
	f.Name = clean(f.Name)
	f.Website = clean(f.Website)
	f.HQ = clean(f.HQ)
	f.Ticket = clean(f.Ticket)
	f.Regions = cleanAll(f.Regions)
	f.Stages = cleanAll(f.Stages)
	f.Sectors = cleanAll(f.Sectors)
}
