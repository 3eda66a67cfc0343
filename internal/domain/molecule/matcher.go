package molecule

import "strings"

// Matcher resolves a normalized ingredient name to molecules. Matchers are
// pure functions over the index's static data; the chain is fixed at
// construction and never mutated afterwards.
type Matcher interface {
	// Name identifies the matcher in logs ("exact", "alias", "keyword").
	Name() string

	// Match returns the molecules for name, or an empty slice. name is
	// already normalized.
	Match(name string) []*Molecule
}

// exactMatcher resolves a name against the source index directly.
type exactMatcher struct {
	bySource map[string][]*Molecule
}

func (m *exactMatcher) Name() string { return "exact" }

func (m *exactMatcher) Match(name string) []*Molecule {
	return m.bySource[name]
}

// aliasMatcher resolves trade names (spirits, liqueurs, syrups) to the base
// sources their flavor comes from, unioning the molecules of every mapped
// source in table order.
type aliasMatcher struct {
	bySource map[string][]*Molecule
	aliases  map[string][]string
}

func newAliasMatcher(bySource map[string][]*Molecule, aliases []Alias) *aliasMatcher {
	table := make(map[string][]string, len(aliases))
	for _, a := range aliases {
		table[NormalizeName(a.Name)] = a.Sources
	}
	return &aliasMatcher{bySource: bySource, aliases: table}
}

func (m *aliasMatcher) Name() string { return "alias" }

func (m *aliasMatcher) Match(name string) []*Molecule {
	sources, ok := m.aliases[name]
	if !ok {
		return nil
	}
	var out []*Molecule
	for _, src := range sources {
		out = append(out, m.bySource[NormalizeName(src)]...)
	}
	return out
}

// keywordMatcher is the last-resort fallback: every rule whose keyword is a
// substring of the ingredient name contributes its sources' molecules.
// Rules apply in table order so the result is deterministic.
type keywordMatcher struct {
	bySource map[string][]*Molecule
	rules    []KeywordRule
}

func (m *keywordMatcher) Name() string { return "keyword" }

func (m *keywordMatcher) Match(name string) []*Molecule {
	var out []*Molecule
	for _, rule := range m.rules {
		if !strings.Contains(name, rule.Keyword) {
			continue
		}
		for _, src := range rule.Sources {
			out = append(out, m.bySource[NormalizeName(src)]...)
		}
	}
	return out
}
