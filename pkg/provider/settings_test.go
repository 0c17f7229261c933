package provider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSettings(t *testing.T) {
	schema := []Field{
		{Key: "account_id", Kind: FieldSecret, Required: true},
		{Key: "api_key", Kind: FieldSecret, Required: true},
		{Key: "builtin", Kind: FieldBoolean, Default: true},
		{Key: "base_url", Kind: FieldText},
	}

	settings, err := ParseSettings(schema, map[string]any{
		"account_id": "acc",
		"api_key":    "key",
	})

	require.NoError(t, err)

	require.Equal(t, "acc", settings.String("account_id"))
	require.Equal(t, "key", settings.String("api_key"))
	require.True(t, settings.Bool("builtin"))
	require.Empty(t, settings.String("base_url"))
}

func TestParseSettingsMissingRequired(t *testing.T) {
	schema := []Field{
		{Key: "api_key", Kind: FieldSecret, Required: true},
	}

	_, err := ParseSettings(schema, map[string]any{})

	require.Error(t, err)
	require.True(t, IsConfigurationError(err))

	_, err = ParseSettings(schema, map[string]any{"api_key": ""})

	require.Error(t, err)
	require.True(t, IsConfigurationError(err))
}

func TestParseSettingsKinds(t *testing.T) {
	schema := []Field{
		{Key: "builtin", Kind: FieldBoolean},
	}

	_, err := ParseSettings(schema, map[string]any{"builtin": "yes"})

	require.Error(t, err)
	require.True(t, IsConfigurationError(err))

	settings, err := ParseSettings(schema, map[string]any{"builtin": false})

	require.NoError(t, err)
	require.False(t, settings.Bool("builtin"))
}

func TestParseSettingsIgnoresUnknownKeys(t *testing.T) {
	schema := []Field{
		{Key: "api_key", Kind: FieldSecret, Required: true},
	}

	settings, err := ParseSettings(schema, map[string]any{
		"api_key": "key",
		"extra":   "ignored",
	})

	require.NoError(t, err)
	require.NotContains(t, settings, "extra")
}
