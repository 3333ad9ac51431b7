package domain

import (
	"net/url"
	"strings"
)

// Firm represents a venture firm listed in the directory
type Firm struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Website string   `yaml:"website" json:"website"`
	HQ      string   `yaml:"hq" json:"hq"`
	Regions []string `yaml:"regions" json:"regions"`
	Stages  []string `yaml:"stages" json:"stages"`
	Sectors []string `yaml:"sectors" json:"sectors"`
	Ticket  string   `yaml:"ticket" json:"ticket"`
}

// IntroLink returns a mailto link asking the given mailbox for an intro to the firm.
// Only the firm name is escaped, the subject prefix is kept as is.
func (f Firm) IntroLink(mailbox string) string {
	return "mailto:" + mailbox + "?subject=Intro request: " + escapeComponent(f.Name)
}

// componentUnescaper reverts characters url.QueryEscape encodes but a URI component keeps
var componentUnescaper = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// escapeComponent percent-encodes s the way a browser encodes a URI component
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// Tags returns all facet tags of the firm, regions first, then stages and sectors
func (f Firm) Tags() []string {
	res := make([]string, 0, len(f.Regions)+len(f.Stages)+len(f.Sectors))
	res = append(res, f.Regions...)
	res = append(res, f.Stages...)
	return append(res, f.Sectors...)
}

// Facet names a tag group a firm can be filtered by
type Facet string

// facet names, also used as query parameter names
const (
	FacetRegion Facet = "region"
	FacetStage  Facet = "stage"
	FacetSector Facet = "sector"
)

// Facets lists all facets in display order
var Facets = []Facet{FacetRegion, FacetStage, FacetSector}

// facet vocabularies offered as filter chips
var (
	Regions = []string{"India", "USA", "SEA", "Global", "Europe", "MENA", "LatAm", "Africa", "APAC"}
	Stages  = []string{"Pre-Seed", "Seed", "Series A", "Series B", "Growth"}
	Sectors = []string{"SaaS", "Consumer", "Fintech", "AI", "Health", "Bio", "B2B", "Developer Tools",
		"Gaming", "Web3", "Generalist"}
)

// Label returns a human-readable facet name
func (f Facet) Label() string {
	switch f {
	case FacetRegion:
		return "Region"
	case FacetStage:
		return "Stage"
	case FacetSector:
		return "Sector"
	}
	return string(f)
}

// Vocabulary returns the known tags for the facet
func (f Facet) Vocabulary() []string {
	switch f {
	case FacetRegion:
		return Regions
	case FacetStage:
		return Stages
	case FacetSector:
		return Sectors
	}
	return nil
}

// TagsOf returns the firm's tags for the given facet
func (f Facet) TagsOf(firm Firm) []string {
	switch f {
	case FacetRegion:
		return firm.Regions
	case FacetStage:
		return firm.Stages
	case FacetSector:
		return firm.Sectors
	}
	return nil
}
