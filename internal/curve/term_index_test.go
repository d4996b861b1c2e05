package curve

import (
	"testing"

	"github.com/rxtech-lab/bond-spread/internal/types"
	"github.com/stretchr/testify/suite"
)

type TermIndexTestSuite struct {
	suite.Suite
}

func TestTermIndexSuite(t *testing.T) {
	suite.Run(t, new(TermIndexTestSuite))
}

func gov(bond string, term, yield float64) types.BondRecord {
	return types.BondRecord{Bond: bond, Type: types.BondTypeGovernment, Term: term, Yield: yield}
}

func (suite *TermIndexTestSuite) TestSortsByTerm() {
	input := []types.BondRecord{
		gov("G3", 16.9, 5.5),
		gov("G1", 9.4, 3.7),
		gov("G2", 12, 4.8),
	}

	idx := NewTermIndex(input)

	suite.Equal(3, idx.Len())
	suite.Equal([]float64{9.4, 12, 16.9}, idx.Terms())
	suite.Equal("G1", idx.Bonds()[0].Bond)
	suite.Equal("G2", idx.Bonds()[1].Bond)
	suite.Equal("G3", idx.Bonds()[2].Bond)
	suite.Equal(9.4, idx.MinTerm())
	suite.Equal(16.9, idx.MaxTerm())
}

func (suite *TermIndexTestSuite) TestDoesNotMutateInput() {
	input := []types.BondRecord{gov("G2", 5, 4), gov("G1", 1, 2)}

	NewTermIndex(input)

	suite.Equal("G2", input[0].Bond)
	suite.Equal("G1", input[1].Bond)
}

func (suite *TermIndexTestSuite) TestParallelSlices() {
	idx := NewTermIndex([]types.BondRecord{gov("A", 3, 1), gov("B", 1, 1), gov("C", 2, 1), gov("D", 2, 1)})

	suite.Len(idx.Terms(), len(idx.Bonds()))
	for i, bond := range idx.Bonds() {
		suite.Equal(bond.Term, idx.Terms()[i])
	}
}

func (suite *TermIndexTestSuite) TestEqualTermsKeepInputOrder() {
	idx := NewTermIndex([]types.BondRecord{gov("B", 2, 1), gov("A", 1, 1), gov("C", 2, 1)})

	suite.Equal("A", idx.Bonds()[0].Bond)
	suite.Equal("B", idx.Bonds()[1].Bond)
	suite.Equal("C", idx.Bonds()[2].Bond)
}

func (suite *TermIndexTestSuite) TestEmpty() {
	idx := NewTermIndex(nil)

	suite.True(idx.IsEmpty())
	suite.Equal(0, idx.Len())
	suite.Equal(0.0, idx.MinTerm())
	suite.Equal(0.0, idx.MaxTerm())
	suite.Equal(0, idx.UpperBound(5))
}

func (suite *TermIndexTestSuite) TestUpperBound() {
	idx := NewTermIndex([]types.BondRecord{gov("G1", 1, 2), gov("G2", 5, 4), gov("G3", 10, 5)})

	tests := []struct {
		term     float64
		expected int
	}{
		{0.5, 0},
		{1, 1},
		{3, 1},
		{5, 2},
		{9.99, 2},
		{10, 3},
		{30, 3},
	}

	for _, tt := range tests {
		suite.Equal(tt.expected, idx.UpperBound(tt.term), "term %v", tt.term)
	}
}
