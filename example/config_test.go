package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "dropdown example", cfg.Title)
	assert.Equal(t, []any{"Red", "Green", "Blue"}, cfg.Options)
	assert.Equal(t, language.English, cfg.Tag())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
title: colours
language: de
label_field: name
default: Blue
width: 200
options:
  - name: Red
  - name: Blue
`)
	cfg, err := LoadConfig(newViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "colours", cfg.Title)
	assert.Equal(t, "name", cfg.LabelField)
	assert.Equal(t, "Blue", cfg.Default)
	assert.Equal(t, 200, cfg.Width)
	assert.Len(t, cfg.Options, 2)
	assert.Equal(t, language.German, cfg.Tag())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DROPDOWN_TITLE", "from env")
	cfg, err := LoadConfig(newViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "from env", cfg.Title)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad language", "language: \"not a tag!\"\n"},
		{"untranslated language", "language: ja\n"},
		{"negative width", "width: -5\n"},
		{"empty title", "title: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(newViper(), writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewWidgetsResolvesDefaultByLabel(t *testing.T) {
	cfg := Config{
		Title:      "t",
		LabelField: "name",
		Default:    "Blue",
		Options: []any{
			map[string]any{"name": "Red"},
			map[string]any{"name": "Blue"},
		},
	}
	picker, size := newWidgets(cfg, nil)

	_, idx, ok := picker.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "Blue", picker.TriggerLabel())

	_, _, ok = size.Selected()
	assert.False(t, ok)
}
