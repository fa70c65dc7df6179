package locations

import "strings"

// DefaultSlug is the fallback area when an address matches nothing.
const DefaultSlug = "columbus"

// ServiceArea is one entry in the ordered matching table. Patterns are plain
// lowercase substrings: city names, hyphenated variants, and ZIP codes.
type ServiceArea struct {
	Slug     string
	Name     string
	Patterns []string
}

// Registry resolves free-text addresses against an ordered service-area table.
// Order matters: the first matching entry wins, so the table encodes priority
// when patterns overlap.
type Registry struct {
	areas       []ServiceArea
	defaultSlug string
	slugs       map[string]struct{}
}

// NewRegistry builds a resolver over the given table. The table is copied so
// callers cannot mutate it after construction.
func NewRegistry(areas []ServiceArea, defaultSlug string) *Registry {
	copied := make([]ServiceArea, len(areas))
	copy(copied, areas)

	slugs := make(map[string]struct{}, len(copied)+1)
	for _, area := range copied {
		slugs[area.Slug] = struct{}{}
	}
	slugs[defaultSlug] = struct{}{}

	return &Registry{areas: copied, defaultSlug: defaultSlug, slugs: slugs}
}

// Resolve maps a free-text address to a service-area slug. Matching is
// substring containment rather than word-boundary matching, tolerating messy
// form input at the cost of possible pattern collisions.
func (r *Registry) Resolve(address string) string {
	needle := strings.ToLower(address)
	for _, area := range r.areas {
		for _, pattern := range area.Patterns {
			if strings.Contains(needle, pattern) {
				return area.Slug
			}
		}
	}
	return r.defaultSlug
}

// Contains reports whether slug is a known service area.
func (r *Registry) Contains(slug string) bool {
	_, ok := r.slugs[slug]
	return ok
}

// DefaultSlug returns the fallback slug.
func (r *Registry) Default() string {
	return r.defaultSlug
}

// Name returns the display name for a slug, or the slug itself when it is not
// a configured area (the fallback slug has no table entry).
func (r *Registry) Name(slug string) string {
	for _, area := range r.areas {
		if area.Slug == slug {
			return area.Name
		}
	}
	if slug == DefaultSlug {
		return "Columbus"
	}
	return slug
}

// DefaultRegistry returns the production service-area table for the Columbus
// metro. Entries are ordered most-specific first; Columbus itself is only the
// fallback so suburb ZIPs are never swallowed by the metro name.
func DefaultRegistry() *Registry {
	return NewRegistry([]ServiceArea{
		{Slug: "dublin", Name: "Dublin", Patterns: []string{"dublin", "43016", "43017"}},
		{Slug: "powell", Name: "Powell", Patterns: []string{"powell", "43065"}},
		{Slug: "westerville", Name: "Westerville", Patterns: []string{"westerville", "43081", "43082"}},
		{Slug: "worthington", Name: "Worthington", Patterns: []string{"worthington", "43085"}},
		{Slug: "new-albany", Name: "New Albany", Patterns: []string{"new albany", "new-albany", "43054"}},
		{Slug: "hilliard", Name: "Hilliard", Patterns: []string{"hilliard", "43026"}},
		{Slug: "gahanna", Name: "Gahanna", Patterns: []string{"gahanna", "43230"}},
		{Slug: "upper-arlington", Name: "Upper Arlington", Patterns: []string{"upper arlington", "upper-arlington", "43220", "43221"}},
		{Slug: "grove-city", Name: "Grove City", Patterns: []string{"grove city", "grove-city", "43123"}},
	}, DefaultSlug)
}
