package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl  string `json:"base_url"`
	DataFile string `json:"data_file"`
}

func writeFile(t *testing.T, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0644)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.json5")
	writeFile(t, path, `{
		// json5 comments are allowed
		base_url: "https://wiki.example.com",
		data_file: "characters.json",
	}`)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "https://wiki.example.com", config.BaseUrl)
	require.Equal(t, "characters.json", config.DataFile)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json5"), `{
		base_url: "https://wiki.example.com",
		data_file: "characters.json",
	}`)
	writeFile(t, filepath.Join(dir, "app.local.json5"), `{
		base_url: "http://localhost:8080",
	}`)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", config.BaseUrl)
	require.Equal(t, "characters.json", config.DataFile)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
