package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Install registers cuamap as a systemd service that starts the remapper at boot.
type Install struct{}

func (i *Install) Run(logger *slog.Logger, cli *CLI) error {
	cfg := cli.ConfigFile
	if cfg != "" {
		if abs, err := filepath.Abs(cfg); err == nil {
			cfg = abs
		}
	}
	return install(logger, cfg)
}

// Uninstall stops and removes the systemd service.
type Uninstall struct{}

func (u *Uninstall) Run(logger *slog.Logger) error {
	return uninstall(logger)
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}
