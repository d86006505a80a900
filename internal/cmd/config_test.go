package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigInitTemplate(t *testing.T) {
	root, err := (&ConfigInit{Command: "run"}).template()
	require.NoError(t, err)

	assert.Equal(t, "/dev/input/event0", root["device"])
	assert.Equal(t, "", root["device_name"])
	assert.Equal(t, "1s", root["startup_delay"])
	assert.Equal(t, []string{"KEY_LEFTALT", "KEY_LEFTCTRL"}, root["swap"])
	assert.Equal(t, false, root["dry_run"])
	assert.Equal(t, map[string]any{
		"enabled": false,
		"guard":   "KEY_CAPSLOCK",
		"key":     "KEY_EQUAL",
	}, root["kill"])

	logGroup, ok := root["log"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "info", logGroup["level"])
	assert.Contains(t, logGroup, "raw_file")
}

func TestConfigInitUnknownCommand(t *testing.T) {
	_, err := (&ConfigInit{Command: "server"}).template()
	assert.Error(t, err)
}

func TestConfigInitWritesFormats(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(dir, "sub", "run."+format)
			c := &ConfigInit{Command: "run", Format: format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)

			decoded := map[string]any{}
			switch format {
			case "json":
				require.NoError(t, json.Unmarshal(data, &decoded))
			case "yaml":
				require.NoError(t, yaml.Unmarshal(data, &decoded))
			case "toml":
				tree, err := toml.LoadBytes(data)
				require.NoError(t, err)
				decoded = tree.ToMap()
			}
			assert.Equal(t, "/dev/uinput", decoded["uinput"])
			assert.Contains(t, decoded, "kill")
			assert.Contains(t, decoded, "log")

			assert.Error(t, c.Run(), "refuses to overwrite without --force")
			c.Force = true
			assert.NoError(t, c.Run())
		})
	}
}

func TestConfigKey(t *testing.T) {
	type sample struct {
		StartupDelay string
		DryRun       bool
		Uinput       string
		ConfigFile   string `name:"config"`
	}
	typ := reflect.TypeFor[sample]()
	want := []string{"startup_delay", "dry_run", "uinput", "config"}
	for i, w := range want {
		assert.Equal(t, w, configKey(typ.Field(i)))
	}
}
