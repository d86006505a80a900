//go:build linux

package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	th "github.com/Alia5/cuamap/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemdUnitContent(t *testing.T) {
	unit := systemdUnitContent("/usr/local/bin/cuamap", "")
	assert.Contains(t, unit, `ExecStart="/usr/local/bin/cuamap" run`)
	assert.Contains(t, unit, "RestartPreventExitStatus=3\n")
	assert.Contains(t, unit, "Restart=on-failure\n")

	unit = systemdUnitContent("/opt/cuamap/cuamap", "/etc/cuamap/cuamap.yaml")
	assert.Contains(t, unit, `ExecStart="/opt/cuamap/cuamap" --config="/etc/cuamap/cuamap.yaml" run`)
	assert.Contains(t, unit, "WorkingDirectory=/opt/cuamap\n")
}

func fakeSystemctl(t *testing.T, failOn string) *[]string {
	t.Helper()
	var calls []string
	orig := runSystemctl
	runSystemctl = func(args ...string) error {
		call := strings.Join(args, " ")
		calls = append(calls, call)
		if call == failOn {
			return th.ErrInjected
		}
		return nil
	}
	t.Cleanup(func() { runSystemctl = orig })
	return &calls
}

func useServicePath(t *testing.T) string {
	t.Helper()
	orig := servicePath
	servicePath = filepath.Join(t.TempDir(), serviceName)
	t.Cleanup(func() { servicePath = orig })
	return servicePath
}

func TestInstallUninstall(t *testing.T) {
	path := useServicePath(t)
	calls := fakeSystemctl(t, "")

	require.NoError(t, install(slog.New(slog.DiscardHandler), ""))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Description=cuamap keyboard remapper")
	assert.Equal(t, []string{"daemon-reload", "enable cuamap.service", "restart cuamap.service"}, *calls)

	*calls = nil
	require.NoError(t, uninstall(slog.New(slog.DiscardHandler)))
	assert.NoFileExists(t, path)
	assert.Equal(t, []string{"stop cuamap.service", "disable cuamap.service", "daemon-reload"}, *calls)
}

func TestUninstallCollectsErrors(t *testing.T) {
	useServicePath(t)
	calls := fakeSystemctl(t, "stop cuamap.service")

	err := uninstall(slog.New(slog.DiscardHandler))
	assert.ErrorIs(t, err, th.ErrInjected)
	assert.Len(t, *calls, 3, "keeps going after a failed step")
}
