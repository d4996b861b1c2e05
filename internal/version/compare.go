package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/bond-spread/pkg/errors"
)

// CheckConfigCompatibility checks whether a configuration file written for
// configVersion can be read by a tool running toolVersion.
//
// Compatibility Rules:
//   - An empty config version means the file did not pin a version and is accepted
//   - If either version is "main" (development build), the check is skipped
//   - Major versions must match exactly
//   - The config minor version must not be newer than the tool minor version
//   - Patch versions are ignored
//
// Examples:
//   - Tool 1.2.0, Config 1.2.0 -> OK
//   - Tool 1.3.0, Config 1.2.4 -> OK (older minor)
//   - Tool 1.2.0, Config 1.3.0 -> ERROR (config needs newer tool)
//   - Tool 2.0.0, Config 1.2.0 -> ERROR (major differs)
func CheckConfigCompatibility(toolVersion, configVersion string) error {
	toolVersion = strings.TrimPrefix(toolVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if configVersion == "" {
		return nil
	}

	if toolVersion == "main" || configVersion == "main" {
		return nil
	}

	toolSemver, err := semver.NewVersion(toolVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeVersionMismatch, err, "invalid tool version '%s'", toolVersion)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeVersionMismatch, err, "invalid config version '%s'", configVersion)
	}

	if toolSemver.Major() != configSemver.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"major version mismatch: tool is %d.x.x but config requires %d.x.x",
			toolSemver.Major(), configSemver.Major())
	}

	if configSemver.Minor() > toolSemver.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"config requires %d.%d.x but tool is %d.%d.x",
			configSemver.Major(), configSemver.Minor(),
			toolSemver.Major(), toolSemver.Minor())
	}

	return nil
}
