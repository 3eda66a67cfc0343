package molecule

import (
	"context"

	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
)

// Store loads the full molecule table from a backing source (JSON file,
// Postgres). The index does not care where records come from.
type Store interface {
	LoadMolecules(ctx context.Context) ([]*Molecule, error)
}

// Index resolves ingredient names to molecule sets through an ordered
// matcher pipeline: exact source name, then alias table, then keyword
// substring fallback. The first matcher that produces a non-empty result
// wins; within a matcher all table hits are unioned in table order.
//
// The index is immutable after construction. Hot reload is done by building
// a fresh Index and swapping the reference.
type Index struct {
	bySource map[string][]*Molecule
	count    int
	chain    []Matcher
	logger   logging.Logger
}

// Option customizes index construction.
type Option func(*options)

type options struct {
	aliases []Alias
	rules   []KeywordRule
}

// WithAliases replaces the built-in alias table.
func WithAliases(aliases []Alias) Option {
	return func(o *options) { o.aliases = aliases }
}

// WithKeywordRules replaces the built-in keyword fallback table.
func WithKeywordRules(rules []KeywordRule) Option {
	return func(o *options) { o.rules = rules }
}

// NewIndex builds the source map and the matcher chain from the given
// records. Each molecule is indexed under every one of its source names.
func NewIndex(molecules []*Molecule, logger logging.Logger, opts ...Option) *Index {
	o := options{
		aliases: DefaultAliases(),
		rules:   DefaultKeywordRules(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	bySource := make(map[string][]*Molecule)
	for _, m := range molecules {
		for _, src := range m.Sources {
			key := NormalizeName(src)
			if key == "" {
				continue
			}
			bySource[key] = append(bySource[key], m)
		}
	}

	idx := &Index{
		bySource: bySource,
		count:    len(molecules),
		logger:   logger.Named("molecule.index"),
	}
	idx.chain = []Matcher{
		&exactMatcher{bySource: bySource},
		newAliasMatcher(bySource, o.aliases),
		&keywordMatcher{bySource: bySource, rules: o.rules},
	}

	idx.logger.Info("molecule index built",
		logging.Int("molecules", len(molecules)),
		logging.Int("sources", len(bySource)),
	)
	return idx
}

// Lookup returns the molecules for an ingredient name, possibly empty. The
// result is deterministic: same input, same output, same order.
func (idx *Index) Lookup(name string) []*Molecule {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil
	}
	for _, m := range idx.chain {
		if found := m.Match(normalized); len(found) > 0 {
			return found
		}
	}
	idx.logger.Debug("no molecules for ingredient", logging.String("ingredient", normalized))
	return nil
}

// MoleculeCount returns the number of indexed records.
func (idx *Index) MoleculeCount() int { return idx.count }

// SourceCount returns the number of distinct source names.
func (idx *Index) SourceCount() int { return len(idx.bySource) }
