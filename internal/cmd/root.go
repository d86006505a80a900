// Package cmd holds the kong command tree of cuamap.
package cmd

import "github.com/Alia5/cuamap/internal/log"

// CLI is the root of the command tree.
type CLI struct {
	ConfigFile string     `name:"config" help:"JSON, YAML or TOML file with flag defaults" type:"path" env:"CUAMAP_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Run       Run           `cmd:"" default:"withargs" help:"Grab the keyboard and remap it (default)"`
	Devices   Devices       `cmd:"" help:"List input devices"`
	Keys      Keys          `cmd:"" help:"List key names accepted by key flags"`
	Config    ConfigCommand `cmd:"" help:"Configuration helpers"`
	Install   Install       `cmd:"" help:"Install cuamap as a systemd service"`
	Uninstall Uninstall     `cmd:"" help:"Remove the cuamap systemd service"`
}
