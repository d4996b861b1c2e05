package curve

import (
	"math"

	"github.com/rxtech-lab/bond-spread/internal/types"
	"github.com/rxtech-lab/bond-spread/pkg/errors"
)

// NearestBenchmark returns the government bond whose term is closest to term.
//
// Terms beyond either end of the curve resolve to the nearest end. When term
// sits exactly halfway between two bonds the longer one wins.
func (idx *TermIndex) NearestBenchmark(term float64) (types.BondRecord, error) {
	if idx.IsEmpty() {
		return types.BondRecord{}, errors.New(errors.ErrCodeEmptyCurve, "cannot resolve a benchmark without government bonds")
	}

	lo, hi := idx.bracket(term)

	switch {
	case hi == idx.Len():
		return idx.bonds[lo], nil
	case lo == -1:
		return idx.bonds[hi], nil
	case math.Abs(idx.terms[hi]-term) <= math.Abs(idx.terms[lo]-term):
		return idx.bonds[hi], nil
	default:
		return idx.bonds[lo], nil
	}
}
