package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/prettyqr/pkg/generator"
)

func load(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	return FromViper(v)
}

func TestFromViper(t *testing.T) {
	cfg, err := load(t, `
settings:
  debug: true
  timezone: Europe/Moscow
  log-to-file: true
  logs-dir: qr-logs
qr:
  output-dir: out
  seed: 42
  styles:
    - name: normal
      data: https://example.com
      box-size: 20
      border: 0
      fill-color: black
    - name: dots
      kind: dot
      data: https://example.com
      fill-color: ["#000", "#111", "#222"]
      dot-size: [0.7, 0.8, 0.9]
      dot-radius: 0
      finder-radius: 0
`)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Logger.Debug)
	assert.True(t, cfg.Logger.LogToFile)
	assert.Equal(t, "qr-logs", cfg.Logger.LogsDir)
	require.NotNil(t, cfg.Logger.TimeLocation)
	assert.Equal(t, "Europe/Moscow", cfg.Logger.TimeLocation.String())

	require.Len(t, cfg.Styles, 2)

	normal := cfg.Styles[0]
	assert.Equal(t, "normal", normal.Name)
	assert.Equal(t, 20, normal.BoxSize)
	require.NotNil(t, normal.Border)
	assert.Equal(t, 0, *normal.Border)
	assert.Equal(t, []string{"black"}, normal.FillColor)
	assert.Nil(t, normal.DotRadius)

	dots := cfg.Styles[1]
	assert.Equal(t, generator.KindDot, dots.Kind)
	assert.Equal(t, []string{"#000", "#111", "#222"}, dots.FillColor)
	assert.Equal(t, []float64{0.7, 0.8, 0.9}, dots.DotSize)
	require.NotNil(t, dots.DotRadius)
	assert.Zero(t, *dots.DotRadius)
	require.NotNil(t, dots.FinderRadius)
	assert.Zero(t, *dots.FinderRadius)
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := load(t, `
qr:
  styles:
    - data: hello
`)
	require.NoError(t, err)
	assert.Equal(t, "examples", cfg.OutputDir)
	assert.Equal(t, "logs", cfg.Logger.LogsDir)
	assert.Nil(t, cfg.Logger.TimeLocation)
	assert.Zero(t, cfg.Seed)
}

func TestFromViperErrors(t *testing.T) {
	tests := map[string]string{
		"no styles": `
qr:
  output-dir: out
`,
		"missing data": `
qr:
  styles:
    - name: empty
`,
		"bad timezone": `
settings:
  timezone: Mars/Olympus
qr:
  styles:
    - data: hello
`,
	}
	for name, yaml := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, yaml)
			assert.Error(t, err)
		})
	}
}
