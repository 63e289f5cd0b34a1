package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeTempConfig(t, `max_hops = 5`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxHops)
	assert.Equal(t, "pubmed", cfg.IDPatterns["PMID:"])
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, 256, cfg.Server.CacheSize)
}

func TestLoadOverridesAllKeys(t *testing.T) {
	path := writeTempConfig(t, `
max_hops = 2

[id_patterns]
"PMID:" = "pubmed"
"DOI:" = "doi"

[ara_to_infores_map]
ara-a = "infores:ara-a"

[server]
listen_addr = ":9090"
cache_size = 64
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxHops)
	assert.Equal(t, "doi", cfg.IDPatterns["DOI:"])
	assert.Equal(t, "infores:ara-a", cfg.AraToInforesMap["ara-a"])
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, 64, cfg.Server.CacheSize)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadClampsInvalidMaxHops(t *testing.T) {
	path := writeTempConfig(t, `max_hops = 0`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxHops)
}
