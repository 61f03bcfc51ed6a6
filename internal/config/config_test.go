package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir from Go 1.24, reimplemented so the tests run on older
// toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Error(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", cfg.Server.Addr())
	assert.Equal(t, "https://codeforces.com/api", cfg.Codeforces.BaseURL)
	assert.Equal(t, "data/codeforces.db", cfg.Database.Path)
	assert.Equal(t, "data/analysis.json", cfg.Analysis.OutputPath)

	// Bands and the tag table fall back to the built-in data.
	require.Len(t, cfg.Analysis.Bands, 5)
	assert.Equal(t, 800, cfg.Analysis.Bands[0].Lo)
	assert.Equal(t, "Expert", cfg.Analysis.Bands[4].Label)
	assert.NotEmpty(t, cfg.Analysis.TagCategories)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 8080
database:
  path: /tmp/other.db
analysis:
  output_path: /tmp/out.json
  bands:
    - {lo: 0, hi: 5000, label: "Everything"}
  tag_categories:
    - {tag: "dp", category: "DP"}
    - {tag: "*special", category: ""}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/out.json", cfg.Analysis.OutputPath)

	// Configured tables replace the defaults wholesale.
	require.Len(t, cfg.Analysis.Bands, 1)
	assert.Equal(t, "Everything", cfg.Analysis.Bands[0].Label)
	require.Len(t, cfg.Analysis.TagCategories, 2)
	assert.Equal(t, "DP", cfg.Analysis.TagCategories[0].Category)
	assert.Empty(t, cfg.Analysis.TagCategories[1].Category)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: ["), 0o644))
	chdir(t, dir)

	_, err := Load()
	assert.Error(t, err)
}
