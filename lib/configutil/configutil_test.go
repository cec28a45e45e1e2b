package configutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port    int               `json:"port"`
	BaseUrl string            `json:"base_url"`
	Headers map[string]string `json:"headers"`
	Regions []string          `json:"regions"`
}

func writeFile(t *testing.T, path, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestSplitExt(t *testing.T) {
	name, ext := splitExt("config.json5")
	require.Equal(t, "config", name)
	require.Equal(t, "json5", ext)

	name, ext = splitExt("config")
	require.Equal(t, "config", name)
	require.Equal(t, "", ext)
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{
		// comments are allowed
		port: 8080,
		base_url: "https://www.hltv.org",
		headers: {"X-A": "a"},
	}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{
		base_url: "http://localhost:3000",
		headers: {"X-B": "b"},
	}`)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 8080, config.Port)
	require.Equal(t, "http://localhost:3000", config.BaseUrl)
	require.Equal(t, map[string]string{"X-A": "a", "X-B": "b"}, config.Headers)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{port: `)

	_, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.Error(t, err)
	require.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestReadRecursively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{port: 9000}`)
	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	config, err := ReadRecursively[testConfig]("config.json5")
	require.NoError(t, err)
	require.Equal(t, 9000, config.Port)
}

func TestReadOrDefault(t *testing.T) {
	defaults := testConfig{
		Port:    8080,
		BaseUrl: "https://www.hltv.org",
		Regions: []string{"Denmark"},
	}

	dir := t.TempDir()
	config, err := ReadOrDefault(filepath.Join(dir, "missing.json5"), defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, config)

	writeFile(t, filepath.Join(dir, "config.json5"), `{port: 3000}`)
	config, err = ReadOrDefault(filepath.Join(dir, "config.json5"), defaults)
	require.NoError(t, err)
	require.Equal(t, 3000, config.Port)
	require.Equal(t, "https://www.hltv.org", config.BaseUrl)
	require.Equal(t, []string{"Denmark"}, config.Regions)
	require.Equal(t, 8080, defaults.Port)
}
