package types

type BondType string

const (
	// BondTypeGovernment is a government bond, used as a point on the benchmark curve
	BondTypeGovernment BondType = "government"
	// BondTypeCorporate is a corporate bond, priced against the government curve
	BondTypeCorporate BondType = "corporate"
)

// BondRecord is a single parsed input row.
type BondRecord struct {
	// Bond is the bond identifier, e.g. "C1" or "G2"
	Bond string
	// Type is the bond category as it appeared in the input
	Type BondType
	// Term is the maturity in years
	Term float64
	// Yield is the yield in percent, 3.70 means 3.70%
	Yield float64
}

// IsGovernment reports whether the record belongs to the government curve.
func (b BondRecord) IsGovernment() bool {
	return b.Type == BondTypeGovernment
}

// IsCorporate reports whether the record is a corporate bond.
func (b BondRecord) IsCorporate() bool {
	return b.Type == BondTypeCorporate
}
