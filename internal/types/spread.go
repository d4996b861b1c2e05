package types

import "github.com/moznion/go-optional"

type SpreadMode string

const (
	// SpreadModeBenchmark measures against the nearest government bond
	SpreadModeBenchmark SpreadMode = "benchmark"
	// SpreadModeCurve measures against the interpolated government curve
	SpreadModeCurve SpreadMode = "curve"
)

// SpreadResult is the outcome for one corporate bond.
type SpreadResult struct {
	// Bond is the corporate bond identifier
	Bond string
	// Benchmark is the government bond used as reference. It is None in curve mode.
	Benchmark optional.Option[string]
	// Spread is the corporate yield minus the reference yield, in percentage points
	Spread float64
}
