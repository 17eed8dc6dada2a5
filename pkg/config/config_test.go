package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdtree/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, 0, cfg.Jobs)
	assert.Nil(t, cfg.DisabledRules)
	assert.Nil(t, cfg.Ignore)
	assert.False(t, cfg.FailFast)
	assert.False(t, cfg.Debug)
}

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		want   bool
	}{
		{config.FormatText, true},
		{config.FormatJSON, true},
		{config.FormatSummary, true},
		{config.OutputFormat("sarif"), false},
		{config.OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestColorMode_IsValid(t *testing.T) {
	tests := []struct {
		mode config.ColorMode
		want bool
	}{
		{config.ColorAuto, true},
		{config.ColorAlways, true},
		{config.ColorNever, true},
		{config.ColorMode("sometimes"), false},
		{config.ColorMode(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.IsValid())
		})
	}
}
