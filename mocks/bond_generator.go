package mocks

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/rxtech-lab/bond-spread/internal/types"
)

// BondGenerator generates bond universes for testing and benchmarking.
type BondGenerator struct {
	rng *rand.Rand
}

// NewBondGenerator creates a new BondGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewBondGenerator(seed int64) *BondGenerator {
	return &BondGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how bonds are generated.
type GeneratorConfig struct {
	// GovernmentCount is the number of government bonds, at least 2
	GovernmentCount int
	// CorporateCount is the number of corporate bonds
	CorporateCount int
	// MinTerm is the term of the shortest government bond, in years
	MinTerm float64
	// BaseYield is the government yield at MinTerm, in percent
	BaseYield float64
	// Slope is the average yield change per year of term
	Slope float64
	// Noise is the maximum random deviation applied to each government yield
	Noise float64
	// CorporateSpread is the average corporate premium over government, in percent
	CorporateSpread float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		GovernmentCount: 8,
		CorporateCount:  20,
		MinTerm:         0.5,
		BaseYield:       1.5,
		Slope:           0.15,
		Noise:           0.1,
		CorporateSpread: 1.5,
	}
}

// Universe is a generated set of bonds.
type Universe struct {
	// Government is in shuffled order, not sorted by term
	Government []types.BondRecord
	// Corporate terms all lie inside [min government term, max government term)
	Corporate []types.BondRecord
}

// Generate creates a universe. Government terms are distinct and at least 0.1
// years apart. Terms carry one decimal and yields two, like real input files.
func (g *BondGenerator) Generate(config GeneratorConfig) Universe {
	government := make([]types.BondRecord, config.GovernmentCount)
	term := roundToDecimals(config.MinTerm, 1)

	for i := 0; i < config.GovernmentCount; i++ {
		if i > 0 {
			gap := roundToDecimals(0.1+g.rng.Float64()*3, 1)
			term = roundToDecimals(term+gap, 1)
		}

		noise := (g.rng.Float64()*2 - 1) * config.Noise
		yield := config.BaseYield + config.Slope*(term-config.MinTerm) + noise

		government[i] = types.BondRecord{
			Bond:  fmt.Sprintf("G%d", i+1),
			Type:  types.BondTypeGovernment,
			Term:  term,
			Yield: roundToDecimals(yield, 2),
		}
	}

	minTerm := government[0].Term
	maxTerm := government[len(government)-1].Term

	corporate := make([]types.BondRecord, config.CorporateCount)
	for i := 0; i < config.CorporateCount; i++ {
		corpTerm := roundToDecimals(minTerm+g.rng.Float64()*(maxTerm-minTerm), 1)
		if corpTerm >= maxTerm {
			corpTerm = roundToDecimals(maxTerm-0.1, 1)
		}

		if corpTerm < minTerm {
			corpTerm = minTerm
		}

		spread := config.CorporateSpread * (0.5 + g.rng.Float64())
		yield := config.BaseYield + config.Slope*(corpTerm-config.MinTerm) + spread

		corporate[i] = types.BondRecord{
			Bond:  fmt.Sprintf("C%d", i+1),
			Type:  types.BondTypeCorporate,
			Term:  corpTerm,
			Yield: roundToDecimals(yield, 2),
		}
	}

	g.rng.Shuffle(len(government), func(i, j int) {
		government[i], government[j] = government[j], government[i]
	})

	return Universe{
		Government: government,
		Corporate:  corporate,
	}
}

// CSV renders the universe in the input file format, government and corporate
// rows interleaved.
func (u Universe) CSV() string {
	var b strings.Builder

	b.WriteString("bond,type,term,yield\n")

	for i := 0; i < len(u.Government) || i < len(u.Corporate); i++ {
		if i < len(u.Corporate) {
			writeRow(&b, u.Corporate[i])
		}

		if i < len(u.Government) {
			writeRow(&b, u.Government[i])
		}
	}

	return b.String()
}

func writeRow(b *strings.Builder, bond types.BondRecord) {
	fmt.Fprintf(b, "%s,%s,%.1f years,%.2f%%\n", bond.Bond, bond.Type, bond.Term, bond.Yield)
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(val*pow) / pow
}
