package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBackend is the in-process go-git backend.
	DefaultBackend = "gogit"
	// DefaultRef is the committed version files are compared with.
	DefaultRef = "HEAD"
)

// Settings is the runtime configuration of a reconcile run.
type Settings struct {
	Backend             string            `json:"backend"               yaml:"backend"`
	Ref                 string            `json:"ref"                   yaml:"ref"`
	Encoding            string            `json:"encoding"              yaml:"encoding"`
	Normalization       NormalizationMode `json:"normalization"         yaml:"normalization"`
	IgnorePatterns      []string          `json:"ignore_patterns"       yaml:"ignore_patterns"`
	ExtraIgnorePatterns []string          `json:"extra_ignore_patterns" yaml:"extra_ignore_patterns"`
}

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Backend:        DefaultBackend,
		Ref:            DefaultRef,
		Encoding:       DefaultEncoding,
		Normalization:  NormalizationCollapse,
		IgnorePatterns: append([]string(nil), DefaultIgnorePatterns...),
	}
}

// NewSettings reads a YAML or JSON(C) configuration file on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fileSettings Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if unmarshalErr := json.Unmarshal(jsonc.ToJSON(data), &fileSettings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	default:
		if unmarshalErr := yaml.Unmarshal(data, &fileSettings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	settings := NewDefaultSettings()
	settings.merge(&fileSettings)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// merge copies every non-empty field of other into the receiver.
func (it *Settings) merge(other *Settings) {
	if other.Backend != "" {
		it.Backend = other.Backend
	}
	if other.Ref != "" {
		it.Ref = other.Ref
	}
	if other.Encoding != "" {
		it.Encoding = other.Encoding
	}
	if other.Normalization != "" {
		it.Normalization = other.Normalization
	}
	if other.IgnorePatterns != nil {
		it.IgnorePatterns = other.IgnorePatterns
	}
	it.ExtraIgnorePatterns = append(it.ExtraIgnorePatterns, other.ExtraIgnorePatterns...)
}

// Validate checks the values a run depends on.
func (it *Settings) Validate() error {
	if strings.TrimSpace(it.Backend) == "" {
		return errors.New("backend is required")
	}
	if strings.TrimSpace(it.Ref) == "" {
		return errors.New("ref is required")
	}
	if _, err := ParseNormalizationMode(string(it.Normalization)); err != nil {
		return err
	}
	return ValidateEncoding(it.Encoding)
}

// EffectiveIgnorePatterns returns the base patterns followed by the extra ones.
func (it *Settings) EffectiveIgnorePatterns() []string {
	patterns := make([]string, 0, len(it.IgnorePatterns)+len(it.ExtraIgnorePatterns))
	patterns = append(patterns, it.IgnorePatterns...)
	return append(patterns, it.ExtraIgnorePatterns...)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".crlfrevert.yaml",
		".crlfrevert.yml",
		".crlfrevert.jsonc",
		".crlfrevert.json",
		"crlfrevert.yaml",
		"crlfrevert.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadSettings loads the explicit path when given, otherwise the first config
// file found, otherwise the defaults.
func LoadSettings(explicitPath string) (*Settings, error) {
	if explicitPath != "" {
		return NewSettings(explicitPath)
	}

	path, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return NewDefaultSettings(), nil
	}

	logger.Infof("Using config file: %s", path)
	return NewSettings(path)
}
