// Package taxonomy provides the static skill reference data used by the
// analysis engine: category membership, related-skill and synonym tables,
// and curated gap mappings. The tables are hand-authored lookup data with
// no lifecycle beyond process start; a Taxonomy is immutable once built
// and safe for concurrent use.
package taxonomy

import "strings"

// Category groups skills under a named domain (e.g. "programming", "cloud")
type Category struct {
	Name   string
	Skills []string
}

// Taxonomy holds the curated skill reference tables. Construct with
// Default or New; never mutate after construction.
type Taxonomy struct {
	categories []Category
	related    map[string][]string
	clusters   [][]string
	mappings   map[string][]string
	expansions map[string][]string
}

// New builds a Taxonomy from caller-supplied tables. All lookups are
// case-insensitive; the tables may use any casing.
func New(categories []Category, related map[string][]string, clusters [][]string, mappings, expansions map[string][]string) *Taxonomy {
	return &Taxonomy{
		categories: categories,
		related:    lowerKeys(related),
		clusters:   clusters,
		mappings:   lowerKeys(mappings),
		expansions: lowerKeys(expansions),
	}
}

// Categories returns the category list in declaration order.
// Callers must not modify the returned slice.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// CategoryOf returns the name of the first category containing the skill,
// or empty string if the skill is not in the taxonomy.
func (t *Taxonomy) CategoryOf(skill string) string {
	lower := strings.ToLower(skill)
	for _, cat := range t.categories {
		for _, s := range cat.Skills {
			if strings.ToLower(s) == lower {
				return cat.Name
			}
		}
	}
	return ""
}

// ShareCategory reports whether both skills belong to the same category
func (t *Taxonomy) ShareCategory(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for _, cat := range t.categories {
		foundA, foundB := false, false
		for _, s := range cat.Skills {
			ls := strings.ToLower(s)
			if ls == la {
				foundA = true
			}
			if ls == lb {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// AreRelated reports whether either skill appears in the other's
// curated related-skill list.
func (t *Taxonomy) AreRelated(a, b string) bool {
	return t.inRelatedList(a, b) || t.inRelatedList(b, a)
}

func (t *Taxonomy) inRelatedList(key, candidate string) bool {
	lc := strings.ToLower(candidate)
	for _, rel := range t.related[strings.ToLower(key)] {
		if strings.ToLower(rel) == lc {
			return true
		}
	}
	return false
}

// ShareCluster reports whether both labels appear in one synonym cluster
func (t *Taxonomy) ShareCluster(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for _, cluster := range t.clusters {
		foundA, foundB := false, false
		for _, s := range cluster {
			ls := strings.ToLower(s)
			if ls == la {
				foundA = true
			}
			if ls == lb {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// MappingFor returns the curated alias list for a domain term, or nil.
// A hit against any alias forces a partial match during gap analysis,
// compensating for weak generic similarity on domain jargon.
func (t *Taxonomy) MappingFor(skill string) []string {
	return t.mappings[strings.ToLower(skill)]
}

// Expand returns the implied skills for a candidate skill (e.g. holding
// TensorFlow implies machine learning exposure), or nil.
func (t *Taxonomy) Expand(skill string) []string {
	return t.expansions[strings.ToLower(skill)]
}

func lowerKeys(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
