package spread

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/bond-spread/internal/curve"
	"github.com/rxtech-lab/bond-spread/internal/types"
)

// Calculator computes the spread of one corporate bond against a government
// reference and renders it as an output row.
type Calculator interface {
	// Header returns the output column names.
	Header() []string
	// Calculate returns the spread of corporate against the reference yield.
	Calculate(corporate types.BondRecord) (types.SpreadResult, error)
	// Row renders a result as output fields, in Header order.
	Row(result types.SpreadResult) []string
}

// FormatSpread renders a spread in percentage points with precision decimal
// digits and a trailing percent sign, e.g. "1.23%" or "-0.45%".
func FormatSpread(spread float64, precision int) string {
	return fmt.Sprintf("%.*f%%", precision, spread)
}

// BenchmarkCalculator measures corporate bonds against the nearest government bond.
type BenchmarkCalculator struct {
	index     *curve.TermIndex
	precision int
}

// NewBenchmarkCalculator creates a calculator that writes bond,benchmark,spread_to_benchmark.
func NewBenchmarkCalculator(index *curve.TermIndex, precision int) Calculator {
	return &BenchmarkCalculator{
		index:     index,
		precision: precision,
	}
}

func (c *BenchmarkCalculator) Header() []string {
	return []string{"bond", "benchmark", "spread_to_benchmark"}
}

func (c *BenchmarkCalculator) Calculate(corporate types.BondRecord) (types.SpreadResult, error) {
	benchmark, err := c.index.NearestBenchmark(corporate.Term)
	if err != nil {
		return types.SpreadResult{}, err
	}

	return types.SpreadResult{
		Bond:      corporate.Bond,
		Benchmark: optional.Some(benchmark.Bond),
		Spread:    corporate.Yield - benchmark.Yield,
	}, nil
}

func (c *BenchmarkCalculator) Row(result types.SpreadResult) []string {
	return []string{result.Bond, result.Benchmark.TakeOr(""), FormatSpread(result.Spread, c.precision)}
}

// CurveCalculator measures corporate bonds against the interpolated government curve.
type CurveCalculator struct {
	index     *curve.TermIndex
	precision int
}

// NewCurveCalculator creates a calculator that writes bond,spread_to_curve.
func NewCurveCalculator(index *curve.TermIndex, precision int) Calculator {
	return &CurveCalculator{
		index:     index,
		precision: precision,
	}
}

func (c *CurveCalculator) Header() []string {
	return []string{"bond", "spread_to_curve"}
}

func (c *CurveCalculator) Calculate(corporate types.BondRecord) (types.SpreadResult, error) {
	governmentYield, err := c.index.Interpolate(corporate.Term)
	if err != nil {
		return types.SpreadResult{}, err
	}

	return types.SpreadResult{
		Bond:      corporate.Bond,
		Benchmark: optional.None[string](),
		Spread:    corporate.Yield - governmentYield,
	}, nil
}

func (c *CurveCalculator) Row(result types.SpreadResult) []string {
	return []string{result.Bond, FormatSpread(result.Spread, c.precision)}
}

// NewCalculator returns the calculator for mode.
func NewCalculator(mode types.SpreadMode, index *curve.TermIndex, precision int) (Calculator, error) {
	switch mode {
	case types.SpreadModeBenchmark:
		return NewBenchmarkCalculator(index, precision), nil
	case types.SpreadModeCurve:
		return NewCurveCalculator(index, precision), nil
	default:
		return nil, fmt.Errorf("unsupported spread mode: %s", mode)
	}
}
