package curve

import (
	"github.com/rxtech-lab/bond-spread/pkg/errors"
)

// Interpolate returns the government yield at term by linear interpolation
// between the two bonds bracketing it.
//
// term must have a curve point at or below it and one strictly above it.
// Extrapolation is not supported: anything else is ErrCodeOutOfCurveRange.
// The upper bound search keeps the bracket terms distinct, so the slope is
// always finite.
func (idx *TermIndex) Interpolate(term float64) (float64, error) {
	if idx.IsEmpty() {
		return 0, errors.New(errors.ErrCodeEmptyCurve, "cannot interpolate without government bonds")
	}

	lo, hi := idx.bracket(term)
	if lo < 0 || hi >= idx.Len() {
		return 0, errors.Newf(errors.ErrCodeOutOfCurveRange,
			"term %v is outside the government curve [%v, %v)", term, idx.MinTerm(), idx.MaxTerm())
	}

	term1, term2 := idx.terms[lo], idx.terms[hi]
	yield1, yield2 := idx.bonds[lo].Yield, idx.bonds[hi].Yield

	slope := (yield2 - yield1) / (term2 - term1)

	return yield1 + slope*(term-term1), nil
}
