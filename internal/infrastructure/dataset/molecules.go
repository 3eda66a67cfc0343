// Package dataset loads the molecule and recipe JSON files and keeps the
// molecule index fresh via a file watcher.
package dataset

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/errors"
)

// flexFloat tolerates numeric fields shipped as numbers, strings, or null.
// The upstream dump stores xlogp as a string on some records.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexBool tolerates flags shipped as booleans, 0/1 numbers, or strings.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.Trim(strings.TrimSpace(string(data)), `"`) {
	case "true", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}

type rawMolecule struct {
	PubchemID        flexFloat `json:"pubchem_id"`
	CommonName       string    `json:"common_name"`
	FlavorProfile    string    `json:"flavor_profile"`
	FunctionalGroups string    `json:"functional_groups"`
	MolecularWeight  flexFloat `json:"molecular_weight"`
	XLogP            flexFloat `json:"xlogp"`
	SuperSweet       flexBool  `json:"super_sweet"`
	Bitter           flexBool  `json:"bitter"`
}

type rawCategory struct {
	CategoryReadable  string        `json:"category_readable"`
	NaturalSourceName string        `json:"natural_source_name"`
	EntityAlias       string        `json:"entity_alias"`
	Molecules         []rawMolecule `json:"molecules"`
}

// FileStore loads molecules from a flavor-database JSON dump. It satisfies
// molecule.Store.
type FileStore struct {
	path   string
	logger logging.Logger
}

// NewFileStore constructs a store over a JSON file path.
func NewFileStore(path string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &FileStore{path: path, logger: logger.Named("molecule-store")}
}

// LoadMolecules parses the dump. Each molecule is indexed under the
// category's natural source name and its alias; records with neither are
// skipped, not fatal.
func (s *FileStore) LoadMolecules(ctx context.Context) ([]*molecule.Molecule, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDataLoad, "molecule file not readable")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var categories []rawCategory
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDataLoad, "molecule file not valid JSON")
	}

	var out []*molecule.Molecule
	var skipped int
	for _, cat := range categories {
		sources := make([]string, 0, 2)
		if cat.NaturalSourceName != "" {
			sources = append(sources, cat.NaturalSourceName)
		}
		if cat.EntityAlias != "" {
			sources = append(sources, cat.EntityAlias)
		}

		for _, rm := range cat.Molecules {
			m, err := molecule.NewMolecule(int64(rm.PubchemID), rm.CommonName, sources)
			if err != nil {
				skipped++
				continue
			}
			m.FlavorKeywords = molecule.ParseKeywordList(rm.FlavorProfile)
			m.FunctionalGroups = molecule.ParseKeywordList(rm.FunctionalGroups)
			m.MolecularWeight = float64(rm.MolecularWeight)
			m.XLogP = float64(rm.XLogP)
			m.Sweet = bool(rm.SuperSweet)
			m.Bitter = bool(rm.Bitter)
			out = append(out, m)
		}
	}

	s.logger.Info("molecule file loaded",
		logging.String("path", s.path),
		logging.Int("molecules", len(out)),
		logging.Int("skipped", skipped),
	)
	return out, nil
}

// Path returns the backing file path, used by the watcher.
func (s *FileStore) Path() string { return s.path }
