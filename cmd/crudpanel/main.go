package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/crudpanel/internal/cli"
	"github.com/Makepad-fr/crudpanel/internal/config"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to config.yaml (default ~/.crudpanel/config.yaml)")
	baseURL := flag.String("base-url", "", "CRUD endpoint, e.g. http://127.0.0.1:8000/crud")
	rootURL := flag.String("root-url", "", "liveness endpoint (default: origin of --base-url)")
	timeout := flag.Duration("timeout", 0, "per-request timeout (0 = none)")
	theme := flag.String("theme", "", "classic | neon | mono")
	logFile := flag.String("log-file", "", "write JSON logs to this file")
	debug := flag.Bool("debug", false, "debug-level logging")
	color := flag.Bool("color", false, "force colored output")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, flag.Args(), cli.Options{
		ConfigPath: *configPath,
		Flags: config.Config{
			BaseURL: *baseURL,
			RootURL: *rootURL,
			Timeout: *timeout,
			Theme:   *theme,
			LogFile: *logFile,
			Debug:   *debug,
		},
		Color:   *color,
		NoColor: *noColor,
	})
	stop()
	os.Exit(code)
}
