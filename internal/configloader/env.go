package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdtree/pkg/config"
)

// envVarPrefix is the prefix for all mdtree environment variables.
const envVarPrefix = "MDTREE_"

// envConfigPathVar names a config file directly, standing in for --config
// when the flag is absent.
const envConfigPathVar = envVarPrefix + "CONFIG"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":         {field: "format", typ: envTypeString},
	"JOBS":           {field: "jobs", typ: envTypeInt},
	"FAIL_FAST":      {field: "fail_fast", typ: envTypeBool},
	"IGNORE":         {field: "ignore", typ: envTypeSlice},
	"DISABLED_RULES": {field: "disabled_rules", typ: envTypeSlice},
}

// ConfigPathFromEnv returns the config file path named by MDTREE_CONFIG,
// or empty string if it is unset.
func ConfigPathFromEnv() string {
	return os.Getenv(envConfigPathVar)
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDTREE_ (e.g., MDTREE_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fail_fast":
		cfg.FailFast = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "disabled_rules":
		cfg.DisabledRules = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDTREE_CONFIG":         "Path to a config file (same as --config)",
		"MDTREE_FORMAT":         "Output format: text, json, or summary",
		"MDTREE_JOBS":           "Number of parallel workers (0 = auto)",
		"MDTREE_FAIL_FAST":      "Stop at the first file that fails: true or false",
		"MDTREE_IGNORE":         "Comma-separated list of ignore patterns",
		"MDTREE_DISABLED_RULES": "Comma-separated list of block rules to disable",
	}
}
