//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const serviceName = "cuamap.service"

// Replaced in tests.
var (
	servicePath  = "/etc/systemd/system/cuamap.service"
	runSystemctl = systemctl
)

func install(logger *slog.Logger, configFile string) error {
	exePath, err := currentExecutable()
	if err != nil {
		return err
	}

	unit := systemdUnitContent(exePath, configFile)
	if err := os.WriteFile(servicePath, []byte(unit), 0o644); err != nil {
		return err
	}

	steps := [][]string{
		{"daemon-reload"},
		{"enable", serviceName},
		{"restart", serviceName},
	}

	for _, args := range steps {
		if err := runSystemctl(args...); err != nil {
			return err
		}
	}

	logger.Info("cuamap systemd service installed", "path", servicePath, "exe", exePath)
	return nil
}

func uninstall(logger *slog.Logger) error {
	var errs []error

	if err := runSystemctl("stop", serviceName); err != nil {
		errs = append(errs, err)
	}
	if err := runSystemctl("disable", serviceName); err != nil {
		errs = append(errs, err)
	}

	if err := os.Remove(servicePath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}

	if err := runSystemctl("daemon-reload"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("cuamap systemd service removed", "path", servicePath)
	return nil
}

func systemdUnitContent(exePath, configFile string) string {
	args := "run"
	if configFile != "" {
		args = fmt.Sprintf("--config=%q run", configFile)
	}
	return fmt.Sprintf(`[Unit]
Description=cuamap keyboard remapper
After=systemd-udev-settle.service

[Service]
Type=simple
ExecStart=%q %s
WorkingDirectory=%s
Restart=on-failure
RestartPreventExitStatus=%d

[Install]
WantedBy=multi-user.target
`, exePath, args, filepath.Dir(exePath), ExitKilled)
}

func systemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
