package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtree/pkg/config"
)

func TestGenerateTemplate_Minimal(t *testing.T) {
	content := string(config.GenerateTemplate(config.TemplateOptions{}))

	assert.True(t, strings.HasPrefix(content, "# mdtree configuration"))
	assert.Contains(t, content, "format: text")
	assert.Contains(t, content, "disabled_rules")
	assert.NotContains(t, content, "Full Template")
}

func TestGenerateTemplate_Full(t *testing.T) {
	content := string(config.GenerateTemplate(config.TemplateOptions{Full: true}))

	assert.Contains(t, content, "Full Template")
	assert.Contains(t, content, "ignore:")

	// Every block rule is documented
	for _, name := range []string{"blockquote", "heading", "fence", "list"} {
		assert.Contains(t, content, name+":")
	}
}

func TestGenerateTemplate_ParsesBack(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		cfg, err := config.FromYAML(config.GenerateTemplate(config.TemplateOptions{}))
		require.NoError(t, err)
		assert.Equal(t, config.FormatText, cfg.Format)
	})

	t.Run("full", func(t *testing.T) {
		cfg, err := config.FromYAML(config.GenerateTemplate(config.TemplateOptions{Full: true}))
		require.NoError(t, err)
		assert.Equal(t, config.FormatText, cfg.Format)
		assert.Equal(t, 0, cfg.Jobs)
		assert.Len(t, cfg.Ignore, 3)
		assert.Empty(t, cfg.DisabledRules)
	})
}
