package curve

import (
	"sort"

	"github.com/rxtech-lab/bond-spread/internal/types"
)

// TermIndex is a government curve: bonds sorted ascending by term, with a
// parallel slice of their terms for binary search. Both slices always have
// the same length and order.
type TermIndex struct {
	bonds []types.BondRecord
	terms []float64
}

// NewTermIndex sorts a copy of bonds by term. The input slice is not modified.
// Bonds with equal terms keep their input order.
func NewTermIndex(bonds []types.BondRecord) *TermIndex {
	sorted := make([]types.BondRecord, len(bonds))
	copy(sorted, bonds)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Term < sorted[j].Term
	})

	terms := make([]float64, len(sorted))
	for i, bond := range sorted {
		terms[i] = bond.Term
	}

	return &TermIndex{
		bonds: sorted,
		terms: terms,
	}
}

// Bonds returns the sorted government bonds.
func (idx *TermIndex) Bonds() []types.BondRecord {
	return idx.bonds
}

// Terms returns the sorted terms, parallel to Bonds.
func (idx *TermIndex) Terms() []float64 {
	return idx.terms
}

func (idx *TermIndex) Len() int {
	return len(idx.bonds)
}

func (idx *TermIndex) IsEmpty() bool {
	return len(idx.bonds) == 0
}

// MinTerm returns the shortest term on the curve, or 0 for an empty curve.
func (idx *TermIndex) MinTerm() float64 {
	if idx.IsEmpty() {
		return 0
	}

	return idx.terms[0]
}

// MaxTerm returns the longest term on the curve, or 0 for an empty curve.
func (idx *TermIndex) MaxTerm() float64 {
	if idx.IsEmpty() {
		return 0
	}

	return idx.terms[len(idx.terms)-1]
}

// UpperBound returns the index of the first term strictly greater than term,
// or Len() if no such term exists.
func (idx *TermIndex) UpperBound(term float64) int {
	return sort.Search(len(idx.terms), func(i int) bool {
		return idx.terms[i] > term
	})
}

// bracket returns the upper bound hi and its left neighbour lo. lo is -1 when
// term is below the whole curve and hi is Len() when it is at or above the end.
func (idx *TermIndex) bracket(term float64) (lo, hi int) {
	hi = idx.UpperBound(term)

	return hi - 1, hi
}
