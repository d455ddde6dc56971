package category

import (
	"strings"

	"github.com/ledgerclean-dev/ledgerclean/internal/config"
)

// Resolver maps free-text categories onto a controlled vocabulary.
// Lookup order: exact canonical match, synonym table, fuzzy match against
// the canonical list, fallback. The canonical slice order is the documented
// tie-break for fuzzy matches, so callers must pass a stable sequence.
type Resolver struct {
	canonical   []string
	canonicalCI map[string]string // lowercased -> canonical spelling
	synonyms    map[string]string // lowercased synonym -> canonical
	threshold   float64
	fallback    string
}

// NewResolver creates a Resolver over an ordered canonical vocabulary.
// Synonym keys are matched case-insensitively.
func NewResolver(canonical []string, synonyms map[string]string, threshold float64, fallback string) *Resolver {
	ci := make(map[string]string, len(canonical))
	for _, c := range canonical {
		ci[strings.ToLower(c)] = c
	}
	syn := make(map[string]string, len(synonyms))
	for k, v := range synonyms {
		syn[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &Resolver{
		canonical:   canonical,
		canonicalCI: ci,
		synonyms:    syn,
		threshold:   threshold,
		fallback:    fallback,
	}
}

// FromConfig builds a Resolver from the categories section of the config.
func FromConfig(cfg config.CategoriesConfig) *Resolver {
	return NewResolver(cfg.Canonical, cfg.Synonyms, cfg.FuzzyThreshold, cfg.Fallback)
}

// Resolve maps raw category text to a canonical category. First match wins;
// unresolvable input gets the fallback category.
func (r *Resolver) Resolve(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return r.fallback
	}

	if c, ok := r.canonicalCI[key]; ok {
		return c
	}
	if c, ok := r.synonyms[key]; ok {
		return c
	}
	if c, ok := r.closest(key); ok {
		return c
	}
	return r.fallback
}

// Fallback returns the category assigned to unresolvable input.
func (r *Resolver) Fallback() string { return r.fallback }

// closest returns the canonical entry with the highest similarity to key,
// provided it reaches the threshold. The first entry achieving the maximum
// wins, in canonical declaration order.
func (r *Resolver) closest(key string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, c := range r.canonical {
		score := Similarity(key, strings.ToLower(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if best == "" || bestScore < r.threshold {
		return "", false
	}
	return best, true
}
