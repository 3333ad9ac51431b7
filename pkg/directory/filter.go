package directory

import (
	"strings"

	"github.com/umputun/vcaggregate/pkg/domain"
)

// Matches reports whether firm passes the free-text query and every facet of the selection.
// The query is trimmed and case-folded, then searched as a plain substring of the firm's
// name, headquarters, ticket and tags joined by spaces.
func Matches(firm domain.Firm, query string, sel domain.Selection) bool {
	if !matchesQuery(firm, query) {
		return false
	}
	for _, facet := range domain.Facets {
		if !matchesFacet(facet.TagsOf(firm), sel.Of(facet)) {
			return false
		}
	}
	return true
}

// Visible returns firms matching query and selection, preserving their order
func Visible(firms []domain.Firm, query string, sel domain.Selection) []domain.Firm {
	res := make([]domain.Firm, 0, len(firms))
	for _, f := range firms {
		if Matches(f, query, sel) {
			res = append(res, f)
		}
	}
	return res
}

// Bookmarked returns firms whose id is in the bookmark set, preserving their order
func Bookmarked(firms []domain.Firm, bookmarks domain.StringSet) []domain.Firm {
	res := make([]domain.Firm, 0, len(bookmarks))
	for _, f := range firms {
		if bookmarks.Has(f.ID) {
			res = append(res, f)
		}
	}
	return res
}

func matchesQuery(firm domain.Firm, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	parts := append([]string{firm.Name, firm.HQ, firm.Ticket}, firm.Tags()...)
	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), q)
}

// matchesFacet is true for an empty selection or any overlap with tags
func matchesFacet(tags []string, selected domain.StringSet) bool {
	if len(selected) == 0 {
		return true
	}
	return selected.HasAny(tags)
}
