package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
	"github.com/flavorlab/cocktailiq/internal/infrastructure/monitoring/logging"
	"github.com/flavorlab/cocktailiq/pkg/errors"
)

// sourceDelimiter joins the source names in the sources column; source
// names themselves never contain it.
const sourceDelimiter = "|"

const selectMoleculesQuery = `
SELECT pubchem_id, common_name, sources, flavor_keywords, functional_groups,
       molecular_weight, xlogp, super_sweet, bitter
FROM molecules
ORDER BY pubchem_id`

// Store loads molecules from the molecules table. It satisfies
// molecule.Store, interchangeable with the file loader.
type Store struct {
	conn   *Connection
	logger logging.Logger
}

// NewStore constructs a store over an open connection.
func NewStore(conn *Connection, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Store{conn: conn, logger: logger.Named("molecule-store")}
}

// LoadMolecules reads the whole molecules table. Rows that fail domain
// validation are skipped and counted, matching the file loader's
// tolerance.
func (s *Store) LoadMolecules(ctx context.Context) ([]*molecule.Molecule, error) {
	rows, err := s.conn.DB().QueryContext(ctx, selectMoleculesQuery)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "molecule query failed")
	}
	defer rows.Close()

	var out []*molecule.Molecule
	var skipped int
	for rows.Next() {
		m, err := scanMolecule(rows)
		if err != nil {
			if errors.IsCode(err, errors.ErrCodeMoleculeDataInvalid) {
				skipped++
				continue
			}
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "molecule row iteration failed")
	}

	s.logger.Info("molecules loaded from database",
		logging.Int("molecules", len(out)),
		logging.Int("skipped", skipped),
	)
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMolecule(row rowScanner) (*molecule.Molecule, error) {
	var (
		id               int64
		commonName       string
		sources          string
		flavorKeywords   sql.NullString
		functionalGroups sql.NullString
		molecularWeight  sql.NullFloat64
		xlogp            sql.NullFloat64
		superSweet       bool
		bitter           bool
	)
	if err := row.Scan(&id, &commonName, &sources, &flavorKeywords, &functionalGroups,
		&molecularWeight, &xlogp, &superSweet, &bitter); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "molecule row scan failed")
	}

	m, err := molecule.NewMolecule(id, commonName, strings.Split(sources, sourceDelimiter))
	if err != nil {
		return nil, err
	}
	m.FlavorKeywords = molecule.ParseKeywordList(flavorKeywords.String)
	m.FunctionalGroups = molecule.ParseKeywordList(functionalGroups.String)
	m.MolecularWeight = molecularWeight.Float64
	m.XLogP = xlogp.Float64
	m.Sweet = superSweet
	m.Bitter = bitter
	return m, nil
}
