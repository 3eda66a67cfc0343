// Package molecule defines the flavor-molecule record and the lookup index
// that resolves ingredient names to molecule sets. The index is the read-only
// source of truth for the whole pipeline; records are never mutated after
// load.
package molecule

import (
	"strings"

	"github.com/flavorlab/cocktailiq/pkg/errors"
)

// Molecule is an immutable flavor-molecule record. FlavorKeywords and
// FunctionalGroups are parsed from the delimiter-joined strings the source
// database ships ("sweet@fruity@apple").
type Molecule struct {
	ID               int64    `json:"id"`
	CommonName       string   `json:"common_name"`
	Sources          []string `json:"sources"`
	FlavorKeywords   []string `json:"flavor_keywords"`
	FunctionalGroups []string `json:"functional_groups"`
	MolecularWeight  float64  `json:"molecular_weight"`
	XLogP            float64  `json:"xlogp"`
	Sweet            bool     `json:"sweet"`
	Bitter           bool     `json:"bitter"`
}

// KeywordDelimiter separates entries in the source database's profile
// strings.
const KeywordDelimiter = "@"

// ParseKeywordList splits a delimiter-joined profile string into trimmed,
// non-empty entries. Order is preserved.
func ParseKeywordList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, KeywordDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewMolecule validates and constructs a record. Sources are normalized to
// lower case; a record with no source name cannot be indexed and is
// rejected.
func NewMolecule(id int64, commonName string, sources []string) (*Molecule, error) {
	normalized := make([]string, 0, len(sources))
	for _, s := range sources {
		if s = NormalizeName(s); s != "" {
			normalized = append(normalized, s)
		}
	}
	if len(normalized) == 0 {
		return nil, errors.New(errors.ErrCodeMoleculeDataInvalid, "molecule record has no source name").
			WithDetail("common_name=" + commonName)
	}
	return &Molecule{
		ID:         id,
		CommonName: commonName,
		Sources:    normalized,
	}, nil
}

// HasFunctionalGroup reports whether any functional-group entry contains the
// given fragment, case-insensitively. Mirrors the substring semantics the
// scoring math expects ("aromatic" also matches "aromatic ring").
func (m *Molecule) HasFunctionalGroup(fragment string) bool {
	fragment = strings.ToLower(fragment)
	for _, g := range m.FunctionalGroups {
		if strings.Contains(strings.ToLower(g), fragment) {
			return true
		}
	}
	return false
}

// NormalizeName lowercases and trims an ingredient or source name. All index
// keys and lookups go through this.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
