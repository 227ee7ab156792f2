package viper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"
)

func TestNew_ReadsEnv(t *testing.T) {
	t.Setenv("GEOLOCDB_MAX_ATTEMPTS", "4")

	v := New()
	assert.Equal(t, 4, v.GetInt("max-attempts"))
}

func TestReadInConfig_Search(t *testing.T) {
	dir := fs.NewDir(t, "viper", fs.WithFile(".geolocdb.yml", "output: found.mmdb\n"))
	defer dir.Remove()
	empty := fs.NewDir(t, "viper")
	defer empty.Remove()

	v := New()
	require.NoError(t, ReadInConfig(v, "", empty.Path(), dir.Path()))
	assert.Equal(t, "found.mmdb", v.GetString("output"))
}

func TestReadInConfig_NotFound(t *testing.T) {
	empty := fs.NewDir(t, "viper")
	defer empty.Remove()

	assert.NoError(t, ReadInConfig(New(), "", empty.Path()))
}

func TestReadInConfig_ExplicitFile(t *testing.T) {
	dir := fs.NewDir(t, "viper", fs.WithFile("settings.yaml", "url: https://example.com/db.mmdb\n"))
	defer dir.Remove()

	v := New()
	require.NoError(t, ReadInConfig(v, dir.Join("settings.yaml")))
	assert.Equal(t, "https://example.com/db.mmdb", v.GetString("url"))

	assert.Error(t, ReadInConfig(New(), dir.Join("missing.yaml")))
}
