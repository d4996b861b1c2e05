package bond

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/bond-spread/internal/types"
	"github.com/rxtech-lab/bond-spread/pkg/errors"
)

// row mirrors one line of the input file before numeric parsing.
type row struct {
	Bond  string `csv:"bond"`
	Type  string `csv:"type"`
	Term  string `csv:"term"`
	Yield string `csv:"yield"`
}

// Bonds holds the parsed input split by category, each in input order.
type Bonds struct {
	Government []types.BondRecord
	Corporate  []types.BondRecord
	// Skipped counts rows whose type matched neither category
	Skipped int
}

// Loader reads bond rows from CSV and partitions them by type.
type Loader struct {
	governmentType types.BondType
	corporateType  types.BondType
}

// NewLoader creates a loader that partitions on the given type labels.
func NewLoader(governmentType, corporateType types.BondType) *Loader {
	return &Loader{
		governmentType: governmentType,
		corporateType:  corporateType,
	}
}

// NewDefaultLoader creates a loader for the "government" and "corporate" labels.
func NewDefaultLoader() *Loader {
	return NewLoader(types.BondTypeGovernment, types.BondTypeCorporate)
}

// LoadFile opens path and reads it with Read.
func (l *Loader) LoadFile(path string) (*Bonds, error) {
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrCodeFileNotFound, err, "input file %s not found", path)
		}

		return nil, errors.Wrapf(errors.ErrCodeReadFailed, err, "failed to open input file %s", path)
	}
	defer file.Close()

	return l.Read(file)
}

// Read decodes every row, parses its term and yield, then partitions the
// records. All rows are parsed before any is dropped, so a malformed row of an
// unknown type still fails the read.
func (l *Loader) Read(r io.Reader) (*Bonds, error) {
	var rows []row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if stderrors.Is(err, gocsv.ErrEmptyCSVFile) {
			return &Bonds{Government: nil, Corporate: nil, Skipped: 0}, nil
		}

		return nil, errors.Wrap(errors.ErrCodeReadFailed, "failed to decode bond rows", err)
	}

	records := make([]types.BondRecord, 0, len(rows))

	for i, raw := range rows {
		// line 1 is the header
		line := i + 2

		term, err := ParseTerm(raw.Term)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidTerm, err,
				"line %d: invalid term %q for bond %s", line, raw.Term, raw.Bond)
		}

		yield, err := ParseYield(raw.Yield)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidYield, err,
				"line %d: invalid yield %q for bond %s", line, raw.Yield, raw.Bond)
		}

		records = append(records, types.BondRecord{
			Bond:  raw.Bond,
			Type:  types.BondType(raw.Type),
			Term:  term,
			Yield: yield,
		})
	}

	return l.partition(records), nil
}

func (l *Loader) partition(records []types.BondRecord) *Bonds {
	bonds := &Bonds{
		Government: make([]types.BondRecord, 0, len(records)),
		Corporate:  make([]types.BondRecord, 0, len(records)),
		Skipped:    0,
	}

	for _, record := range records {
		switch record.Type {
		case l.governmentType:
			bonds.Government = append(bonds.Government, record)
		case l.corporateType:
			bonds.Corporate = append(bonds.Corporate, record)
		default:
			bonds.Skipped++
		}
	}

	return bonds
}
