package main

import (
	"io"
	"os"
	"strings"

	"github.com/Alia5/cuamap/internal/cmd"
	"github.com/Alia5/cuamap/internal/configpaths"
	"github.com/Alia5/cuamap/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	userCfg := findUserConfig(args)
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	parser, err := kong.New(&cli,
		kong.Name("cuamap"),
		kong.Description("CUA-style keyboard remapper for evdev/uinput"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		return cmd.ExitFailure
	}
	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		return cmd.ExitFailure
	}
	events, rawFile := log.SetupEventLogger(cli.Log, logger)
	if rawFile != nil {
		closeFiles = append(closeFiles, rawFile)
	}
	defer closeAll(closeFiles)

	ctx.Bind(logger, &cli)
	ctx.BindTo(events, (*log.EventLogger)(nil))

	err = ctx.Run()
	if err != nil {
		logger.Error("cuamap exited with error", "error", err)
	}
	return cmd.ExitCode(err)
}

func closeAll(cs []io.Closer) {
	for _, c := range cs {
		_ = c.Close()
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("CUAMAP_CONFIG"); v != "" {
		return v
	}
	return ""
}
