package configpaths_test

import (
	"path/filepath"
	"testing"

	"github.com/Alia5/cuamap/internal/configpaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/cuamap", dir)

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	dir, err = configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/someone/.config/cuamap", dir)

	t.Setenv("HOME", "")
	_, err = configpaths.DefaultConfigDir()
	assert.Error(t, err)
}

func TestConfigCandidatePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	tests := []struct {
		name     string
		userPath string
		first    func(j, y, tm []string) string
	}{
		{name: "json", userPath: "/srv/my.json", first: func(j, _, _ []string) string { return j[0] }},
		{name: "yaml", userPath: "/srv/my.yml", first: func(_, y, _ []string) string { return y[0] }},
		{name: "toml", userPath: "/srv/my.toml", first: func(_, _, tm []string) string { return tm[0] }},
		{name: "unknown extension goes to json", userPath: "/srv/my.conf", first: func(j, _, _ []string) string { return j[0] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tt.userPath)
			assert.Equal(t, tt.userPath, tt.first(j, y, tm))
		})
	}

	j, y, tm := configpaths.ConfigCandidatePaths("")
	assert.Contains(t, j, "/tmp/xdg/cuamap/cuamap.json")
	assert.Contains(t, y, "/tmp/xdg/cuamap/run.yaml")
	assert.Contains(t, tm, filepath.Join(configpaths.SystemDir, "config.toml"))
	assert.Equal(t, 2*len(j), len(y), "yaml probes both extensions")
}
