package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	pterrors "github.com/arthur-debert/pathtidy/pkg/errors"
)

// GenerateDefaultContent returns the annotated default config with every
// value commented out, ready to be dropped into the user config location.
func GenerateDefaultContent() string {
	return commentOutConfigValues(string(defaultConfig))
}

// GenerateEffectiveContent marshals the fully merged configuration, useful
// for checking what file plus environment overrides resolve to.
func GenerateEffectiveContent(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", pterrors.Wrap(err, pterrors.ErrInternal, "failed to marshal effective configuration")
	}
	return string(out), nil
}

// commentOutConfigValues comments every assignment line of the TOML
// content, leaving comments, blanks and section headers untouched.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
