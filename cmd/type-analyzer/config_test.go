package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-analyzer/options"
)

func TestParseConfig(t *testing.T) {
	data := `
types: [Counter, Shape]
stages:
  - fields
  - methods|properties
  - all
format: yaml
dump: true
`
	cfg, err := ParseConfig([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"Counter", "Shape"}, cfg.Types)
	assert.Equal(t, []options.Category{
		options.CategoryFields,
		options.CategoryMethods | options.CategoryProperties,
		options.CategoryAll,
	}, cfg.Stages)
	assert.Equal(t, formatYAML, cfg.Format)
	assert.True(t, cfg.Dump)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Example"}, cfg.Types)
	assert.Equal(t, []options.Category{options.CategoryMethods, options.CategoryAll}, cfg.Stages)
	assert.Equal(t, formatText, cfg.Format)
	assert.False(t, cfg.Dump)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig_BadCategory(t *testing.T) {
	_, err := ParseConfig([]byte("stages: [methods, events]\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, options.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{
		Types:  []string{"Example", "Nope"},
		Stages: []options.Category{options.Category(32)},
		Format: "xml",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, options.ErrUnknownCategory)
	assert.Contains(t, err.Error(), `unknown sample type "Nope"`)
	assert.Contains(t, err.Error(), `unknown format "xml"`)

	cfg = &Config{Types: []string{"counter"}, Format: formatText}
	assert.ErrorContains(t, cfg.Validate(), "did you mean Counter?")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types: [Celsius]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Celsius"}, cfg.Types)
	assert.Len(t, cfg.Stages, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.yaml")
}
