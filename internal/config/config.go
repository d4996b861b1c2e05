package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/bond-spread/internal/types"
	"github.com/rxtech-lab/bond-spread/internal/version"
	"github.com/rxtech-lab/bond-spread/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls how input rows are classified and how spreads are written.
type Config struct {
	// Version is the tool version the file was written for. Empty skips the check.
	Version string `yaml:"version" json:"version,omitempty" jsonschema:"title=Version,description=Tool version this configuration targets"`
	// Precision is the number of decimal digits in the spread column.
	Precision int `yaml:"precision" json:"precision" jsonschema:"title=Precision,description=Decimal digits in formatted spreads,minimum=0,maximum=10,default=2" validate:"min=0,max=10"`
	// GovernmentType is the type label marking government bonds.
	GovernmentType types.BondType `yaml:"government_type" json:"government_type" jsonschema:"title=Government Type,description=Value of the type column for government bonds,default=government" validate:"required"`
	// CorporateType is the type label marking corporate bonds.
	CorporateType types.BondType `yaml:"corporate_type" json:"corporate_type" jsonschema:"title=Corporate Type,description=Value of the type column for corporate bonds,default=corporate" validate:"required,nefield=GovernmentType"`
	// CRLF terminates output lines with \r\n instead of \n.
	CRLF bool `yaml:"crlf" json:"crlf" jsonschema:"title=CRLF,description=Terminate output lines with CRLF,default=true"`
	// LogLevel is the minimum level written to stderr.
	LogLevel string `yaml:"log_level" json:"log_level" jsonschema:"title=Log Level,description=Minimum log level,enum=debug,enum=info,enum=warn,enum=error,default=info" validate:"required,oneof=debug info warn error"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Version:        "",
		Precision:      2,
		GovernmentType: types.BondTypeGovernment,
		CorporateType:  types.BondTypeCorporate,
		CRLF:           true,
		LogLevel:       "info",
	}
}

// Validate checks field constraints and the version compatibility.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return version.CheckConfigCompatibility(version.GetVersion(), c.Version)
}

// Parse decodes YAML on top of the defaults, so omitted keys keep their default values.
func Parse(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadConfig reads and parses a YAML file. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}

		return Config{}, errors.Wrapf(errors.ErrCodeReadFailed, err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// GenerateSchema returns the JSON schema of the configuration file.
func (c *Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	schema := reflector.Reflect(c)
	schema.Title = "bond-spread-config"
	schema.Description = "Configuration schema for the bond-spread tool"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON returns the JSON schema as an indented string.
func (c *Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
