package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rxtech-lab/bond-spread/pkg/errors"
	"github.com/stretchr/testify/suite"
)

const roundTripInput = `bond,type,term,yield
G1,government,1 years,2.00%
G2,government,5 years,4.00%
C1,corporate,3 years,5.00%
`

type AppTestSuite struct {
	suite.Suite
	ctx    context.Context
	tmpDir string
	input  string
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (suite *AppTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.tmpDir = suite.T().TempDir()
	suite.input = filepath.Join(suite.tmpDir, "input.csv")
	suite.Require().NoError(os.WriteFile(suite.input, []byte(roundTripInput), 0644))
}

func (suite *AppTestSuite) readFile(path string) string {
	data, err := os.ReadFile(path)
	suite.Require().NoError(err)

	return string(data)
}

func (suite *AppTestSuite) TestBenchmarkCommand() {
	output := filepath.Join(suite.tmpDir, "out.csv")

	err := NewBenchmarkCommand(DefaultConfigLoader).Run(suite.ctx, []string{"benchmark", suite.input, output})
	suite.Require().NoError(err)
	suite.Equal("bond,benchmark,spread_to_benchmark\r\nC1,G2,1.00%\r\n", suite.readFile(output))
}

func (suite *AppTestSuite) TestCurveCommand() {
	output := filepath.Join(suite.tmpDir, "out.csv")

	err := NewCurveCommand(DefaultConfigLoader).Run(suite.ctx, []string{"curve", suite.input, output})
	suite.Require().NoError(err)
	suite.Equal("bond,spread_to_curve\r\nC1,2.00%\r\n", suite.readFile(output))
}

func (suite *AppTestSuite) TestMissingArguments() {
	tests := [][]string{
		{"benchmark"},
		{"benchmark", suite.input},
		{"benchmark", suite.input, "a.csv", "b.csv"},
	}

	for _, args := range tests {
		err := NewBenchmarkCommand(DefaultConfigLoader).Run(suite.ctx, args)
		suite.True(errors.HasCode(err, errors.ErrCodeMissingArgument), "args %v", args)
	}
}

func (suite *AppTestSuite) TestMissingInputFile() {
	err := NewCurveCommand(DefaultConfigLoader).Run(suite.ctx,
		[]string{"curve", filepath.Join(suite.tmpDir, "missing.csv"), filepath.Join(suite.tmpDir, "out.csv")})
	suite.True(errors.HasCode(err, errors.ErrCodeFileNotFound))
}

func (suite *AppTestSuite) TestSpreadCommandWithConfig() {
	configPath := filepath.Join(suite.tmpDir, "spread.yaml")
	suite.Require().NoError(os.WriteFile(configPath, []byte("precision: 3\ncrlf: false\nlog_level: error\n"), 0644))
	output := filepath.Join(suite.tmpDir, "out.csv")

	err := NewSpreadCommand().Run(suite.ctx, []string{"spread", "--config", configPath, "curve", suite.input, output})
	suite.Require().NoError(err)
	suite.Equal("bond,spread_to_curve\nC1,2.000%\n", suite.readFile(output))
}

func (suite *AppTestSuite) TestSpreadCommandWithoutConfig() {
	output := filepath.Join(suite.tmpDir, "out.csv")

	err := NewSpreadCommand().Run(suite.ctx, []string{"spread", "benchmark", suite.input, output})
	suite.Require().NoError(err)
	suite.Equal("bond,benchmark,spread_to_benchmark\r\nC1,G2,1.00%\r\n", suite.readFile(output))
}

func (suite *AppTestSuite) TestSpreadCommandInvalidConfig() {
	configPath := filepath.Join(suite.tmpDir, "spread.yaml")
	suite.Require().NoError(os.WriteFile(configPath, []byte("precision: 42\n"), 0644))

	err := NewSpreadCommand().Run(suite.ctx,
		[]string{"spread", "--config", configPath, "curve", suite.input, filepath.Join(suite.tmpDir, "out.csv")})
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *AppTestSuite) TestSchemaCommand() {
	var buf bytes.Buffer

	cmd := NewSpreadCommand()
	cmd.Writer = &buf

	suite.Require().NoError(cmd.Run(suite.ctx, []string{"spread", "schema"}))

	var schema map[string]any
	suite.Require().NoError(json.Unmarshal(buf.Bytes(), &schema))
	suite.Equal("bond-spread-config", schema["title"])
}
