package spread

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rxtech-lab/bond-spread/internal/bond"
	"github.com/rxtech-lab/bond-spread/internal/config"
	"github.com/rxtech-lab/bond-spread/internal/curve"
	"github.com/rxtech-lab/bond-spread/internal/logger"
	"github.com/rxtech-lab/bond-spread/internal/types"
	"github.com/rxtech-lab/bond-spread/pkg/errors"
	"go.uber.org/zap"
)

// Pipeline converts one input file into one spread file.
type Pipeline struct {
	mode   types.SpreadMode
	config config.Config
	loader *bond.Loader
	log    *logger.Logger
}

// NewPipeline creates a pipeline for mode. A nil log discards all logging.
func NewPipeline(mode types.SpreadMode, cfg config.Config, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Pipeline{
		mode:   mode,
		config: cfg,
		loader: bond.NewLoader(cfg.GovernmentType, cfg.CorporateType),
		log:    log,
	}
}

// Run loads inputPath, computes a spread for every corporate bond and writes
// them to outputPath. The input is fully read before the output file is
// created. A failure midway leaves the rows written so far in place.
func (p *Pipeline) Run(ctx context.Context, inputPath, outputPath string) error {
	log := &logger.Logger{
		Logger: p.log.With(
			zap.String("run_id", uuid.New().String()),
			zap.String("mode", string(p.mode)),
		),
	}

	bonds, err := p.loader.LoadFile(inputPath)
	if err != nil {
		return err
	}

	log.Info("Loaded bonds",
		zap.String("input", inputPath),
		zap.Int("government", len(bonds.Government)),
		zap.Int("corporate", len(bonds.Corporate)),
		zap.Int("skipped", bonds.Skipped),
	)

	file, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeWriteFailed, err, "failed to create output file %s", outputPath)
	}

	writer := NewCSVWriter(file, p.config.CRLF)

	if err := p.execute(ctx, bonds, writer, log); err != nil {
		_ = writer.Close()

		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}

	log.Info("Wrote spreads", zap.String("output", outputPath), zap.Int("rows", len(bonds.Corporate)))

	return nil
}

// Execute computes spreads for bonds and sends them to writer, corporate
// bonds in input order. It does not close writer.
func (p *Pipeline) Execute(ctx context.Context, bonds *bond.Bonds, writer Writer) error {
	return p.execute(ctx, bonds, writer, p.log)
}

func (p *Pipeline) execute(ctx context.Context, bonds *bond.Bonds, writer Writer, log *logger.Logger) error {
	index := curve.NewTermIndex(bonds.Government)

	calculator, err := NewCalculator(p.mode, index, p.config.Precision)
	if err != nil {
		return err
	}

	if err := writer.WriteHeader(calculator.Header()); err != nil {
		return err
	}

	for _, corporate := range bonds.Corporate {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := calculator.Calculate(corporate)
		if err != nil {
			return errors.Wrapf(errors.GetCode(err), err, "failed to price bond %s", corporate.Bond)
		}

		log.Debug("Priced bond",
			zap.String("bond", corporate.Bond),
			zap.Float64("term", corporate.Term),
			zap.String("benchmark", result.Benchmark.TakeOr("")),
			zap.Float64("spread", result.Spread),
		)

		if err := writer.WriteRow(calculator.Row(result)); err != nil {
			return err
		}
	}

	return nil
}

// CalculateBenchmarks writes the spread of every corporate bond to its
// nearest government benchmark.
func CalculateBenchmarks(ctx context.Context, inputPath, outputPath string, cfg config.Config, log *logger.Logger) error {
	return NewPipeline(types.SpreadModeBenchmark, cfg, log).Run(ctx, inputPath, outputPath)
}

// CalculateSpreadToCurve writes the spread of every corporate bond to the
// interpolated government curve.
func CalculateSpreadToCurve(ctx context.Context, inputPath, outputPath string, cfg config.Config, log *logger.Logger) error {
	return NewPipeline(types.SpreadModeCurve, cfg, log).Run(ctx, inputPath, outputPath)
}
