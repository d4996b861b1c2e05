package app

import (
	"context"
	"fmt"

	"github.com/rxtech-lab/bond-spread/internal/config"
	"github.com/rxtech-lab/bond-spread/internal/logger"
	"github.com/rxtech-lab/bond-spread/internal/spread"
	"github.com/rxtech-lab/bond-spread/internal/types"
	"github.com/rxtech-lab/bond-spread/internal/version"
	"github.com/rxtech-lab/bond-spread/pkg/errors"
	"github.com/urfave/cli/v3"
)

const configFlag = "config"

// ConfigLoader resolves the configuration for a command invocation.
type ConfigLoader func(cmd *cli.Command) (config.Config, error)

// DefaultConfigLoader ignores the command and returns the defaults.
func DefaultConfigLoader(*cli.Command) (config.Config, error) {
	return config.DefaultConfig(), nil
}

// FlagConfigLoader reads the YAML file named by the --config flag, if set.
func FlagConfigLoader(cmd *cli.Command) (config.Config, error) {
	return config.LoadConfig(cmd.String(configFlag))
}

// PositionalPaths returns the <input_file> and <output_file> arguments.
func PositionalPaths(cmd *cli.Command) (string, string, error) {
	args := cmd.Args()
	if args.Len() != 2 {
		return "", "", errors.Newf(errors.ErrCodeMissingArgument,
			"expected <input_file> <output_file>, got %d argument(s)", args.Len())
	}

	return args.Get(0), args.Get(1), nil
}

// convertAction runs the spread pipeline for mode on the two positional paths.
func convertAction(mode types.SpreadMode, loadConfig ConfigLoader) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		inputPath, outputPath, err := PositionalPaths(cmd)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log, err := logger.NewLoggerWithLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to create logger", err)
		}
		defer func() { _ = log.Sync() }()

		return spread.NewPipeline(mode, cfg, log).Run(ctx, inputPath, outputPath)
	}
}

// NewBenchmarkCommand builds the benchmark spread command.
func NewBenchmarkCommand(loadConfig ConfigLoader) *cli.Command {
	return &cli.Command{
		Name:      "benchmark",
		Usage:     "Calculate the yield spread between each corporate bond and its government bond benchmark",
		ArgsUsage: "<input_file> <output_file>",
		Action:    convertAction(types.SpreadModeBenchmark, loadConfig),
	}
}

// NewCurveCommand builds the spread to curve command.
func NewCurveCommand(loadConfig ConfigLoader) *cli.Command {
	return &cli.Command{
		Name:      "curve",
		Usage:     "Calculate the spread of each corporate bond to the government bond curve",
		ArgsUsage: "<input_file> <output_file>",
		Action:    convertAction(types.SpreadModeCurve, loadConfig),
	}
}

// NewSchemaCommand builds the command printing the config JSON schema.
func NewSchemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON schema of the configuration file",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg := config.DefaultConfig()

			schema, err := cfg.GenerateSchemaJSON()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, schema)

			return err
		},
	}
}

// NewSpreadCommand builds the combined tool with a --config flag and all subcommands.
func NewSpreadCommand() *cli.Command {
	return &cli.Command{
		Name:    "spread",
		Usage:   "Calculate corporate bond yield spreads against the government curve",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     configFlag,
				Aliases:  []string{"c"},
				Usage:    "Path to a YAML configuration `FILE`",
				Required: false,
			},
		},
		Commands: []*cli.Command{
			NewBenchmarkCommand(FlagConfigLoader),
			NewCurveCommand(FlagConfigLoader),
			NewSchemaCommand(),
		},
	}
}
