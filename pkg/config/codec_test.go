package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goslang/pkg/config"
)

func sampleConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Ignore = []string{"testdata/**"}
	cfg.Validation = config.ValidationFail
	cfg.CPD = config.CPDConfig{Enabled: true, MinTokens: 50}
	cfg.Rules["SL101"] = config.RuleConfig{Options: map[string]any{"threshold": 20}}
	cfg.Jobs = 3
	return cfg
}

func TestConfig_EncodeDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		path   string
		want   string
	}{
		{format: "yaml", path: ".goslang.yml", want: "validation: fail"},
		{format: "toml", path: ".goslang.toml", want: "min_tokens = 50"},
		{format: "json", path: ".goslang.json", want: `"min_tokens": 50`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			data, err := sampleConfig().Encode(tt.format)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
			assert.NotContains(t, string(data), "jobs", "CLI-only fields stay out of files")

			parsed, err := config.Decode(tt.path, data)
			require.NoError(t, err)
			assert.Equal(t, config.ValidationFail, parsed.Validation)
			assert.Equal(t, []string{"testdata/**"}, parsed.Ignore)
			assert.True(t, parsed.CPD.Enabled)
			assert.Equal(t, 50, parsed.CPDMinTokens())
			assert.EqualValues(t, 20, parsed.Rules["SL101"].Options["threshold"])
		})
	}

	t.Run("json is valid JSON", func(t *testing.T) {
		t.Parallel()

		data, err := sampleConfig().Encode("json")
		require.NoError(t, err)
		assert.True(t, json.Valid(data))
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := sampleConfig().Encode("ini")
		require.Error(t, err)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	cfg, err := config.Decode("empty.yml", nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg.Rules)

	_, err = config.Decode(".goslang.yml", []byte("rules: [unterminated"))
	require.ErrorContains(t, err, "parse YAML")

	_, err = config.Decode(".goslang.toml", []byte("rules = "))
	require.ErrorContains(t, err, "parse TOML")
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	enabled := true
	severity := "error"
	original := config.NewConfig()
	original.Rules["SL101"] = config.RuleConfig{
		Enabled:  &enabled,
		Severity: &severity,
		Options:  map[string]any{"threshold": 10},
	}
	original.Ignore = []string{"vendor/**"}
	original.Languages = []string{"go"}
	original.EnableRules = []string{"SL122"}
	original.Strict = true

	clone := original.Clone()
	*clone.Rules["SL101"].Severity = "info"
	*clone.Rules["SL101"].Enabled = false
	clone.Rules["SL101"].Options["threshold"] = 20
	clone.Ignore[0] = "node_modules/**"
	clone.Languages[0] = "javascript"
	clone.EnableRules[0] = "SL101"

	assert.Equal(t, "error", *original.Rules["SL101"].Severity)
	assert.True(t, *original.Rules["SL101"].Enabled)
	assert.Equal(t, 10, original.Rules["SL101"].Options["threshold"])
	assert.Equal(t, []string{"vendor/**"}, original.Ignore)
	assert.Equal(t, []string{"go"}, original.Languages)
	assert.Equal(t, []string{"SL122"}, original.EnableRules)
	assert.True(t, clone.Strict)
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.ValidationLog, cfg.ValidationPolicy())
	assert.Equal(t, config.DefaultCPDMinTokens, cfg.CPDMinTokens())

	var nilCfg *config.Config
	assert.Equal(t, config.ValidationLog, nilCfg.ValidationPolicy())
	assert.True(t, config.ValidationOff.IsValid())
	assert.False(t, config.ValidationPolicy("maybe").IsValid())
	assert.True(t, config.SeverityInfo.IsValid())
	assert.False(t, config.Severity("fatal").IsValid())
}
