package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Makepad-fr/crudpanel/internal/api"
	"github.com/Makepad-fr/crudpanel/internal/config"
	"github.com/Makepad-fr/crudpanel/internal/dispatch"
	"github.com/Makepad-fr/crudpanel/internal/logging"
	"github.com/Makepad-fr/crudpanel/internal/model"
	"github.com/Makepad-fr/crudpanel/internal/tui"
	"github.com/Makepad-fr/crudpanel/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	ConfigPath string
	Flags      config.Config // non-zero fields override file and env
	Color      bool          // force color even when stdout is not a TTY
	NoColor    bool

	// Stdout and Stderr default to the process streams.
	Stdout, Stderr io.Writer
}

// app is everything a subcommand needs, built once per Run.
type app struct {
	client *api.Client
	render ui.Renderer
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	cmd, a := "ui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	}

	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		ui.Fail(opt.Stderr, "config: "+err.Error())
		return 2
	}
	cfg.Override(opt.Flags)
	if err := cfg.Validate(); err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 2
	}
	ui.SetColorForcing(opt.Color, opt.NoColor)
	ui.SetTheme(cfg.Theme)

	log, closeLog, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return 1
	}
	defer closeLog()

	ap, err := newApp(cfg, log, opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 2
	}

	switch cmd {
	case "ui":
		return ap.doUI(ctx)
	case "ping":
		return ap.doPing(ctx)
	case "config":
		fmt.Fprint(ap.out, cfg.String())
		return 0
	}

	m, err := model.ParseMethod(cmd)
	if err != nil {
		ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}
	if len(a) != 0 {
		ui.Fail(opt.Stderr, fmt.Sprintf("usage: crudpanel %s", strings.ToLower(cmd)))
		return 2
	}
	return ap.doSend(ctx, m)
}

func newApp(cfg config.Config, log *slog.Logger, opt Options) (*app, error) {
	client, err := api.NewClient(cfg.BaseURL,
		api.WithRootURL(cfg.RootURL),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	origin := strings.TrimSuffix(client.RootURL(), "/")
	if o, err := api.OriginOf(client.RootURL()); err == nil {
		origin = strings.TrimSuffix(o, "/")
	}
	return &app{
		client: client,
		render: ui.Renderer{Endpoint: client.BaseURL(), Origin: origin, StartHint: cfg.StartHint},
		log:    log,
		out:    opt.Stdout,
		errOut: opt.Stderr,
	}, nil
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `crudpanel - send requests to a CRUD endpoint and show the result

Usage:
  crudpanel [flags] [subcommand]

Subcommands:
  ui                 Interactive panel (default)
  get|post|put|patch|delete
                     Send one request and print the result panel
  ping               Check that the API server root answers
  config             Print the effective configuration

Examples:
  crudpanel
  crudpanel post
  crudpanel --base-url http://127.0.0.1:9000/crud get
`)
}

// -------------- subcommand impls ----------------

func (ap *app) doUI(ctx context.Context) int {
	if err := tui.Run(ctx, ap.client, ap.render, ap.log); err != nil {
		ui.Fail(ap.errOut, "tui: "+err.Error())
		return 1
	}
	return 0
}

func (ap *app) doPing(ctx context.Context) int {
	ctrl := dispatch.New(ap.client, nil, ap.log)
	live := ctrl.CheckLiveness(ctx)
	switch {
	case live.Down:
		fmt.Fprintln(ap.errOut, ap.render.ServerDown())
		return 1
	case !live.Up:
		// Reachable, but the root itself is not a 2xx.
		ui.OK(ap.out, fmt.Sprintf("API server answered at %s (status %d)", ap.client.RootURL(), live.Status))
		return 0
	}
	ui.OK(ap.out, "API server is running and accessible")
	if live.Greeting != "" {
		fmt.Fprintln(ap.out, ui.Current().Muted.Render(live.Greeting))
	}
	return 0
}

// doSend mirrors the page: liveness first, then one request regardless.
func (ap *app) doSend(ctx context.Context, m model.Method) int {
	ctrl := dispatch.New(ap.client, nil, ap.log)
	if live := ctrl.CheckLiveness(ctx); live.Down {
		fmt.Fprintln(ap.errOut, ap.render.ServerDown())
	}
	env, err := ctrl.Dispatch(ctx, m)
	if err != nil {
		fmt.Fprintln(ap.errOut, ap.render.Error(err))
		return 1
	}
	fmt.Fprintln(ap.out, ap.render.Success(env))
	return 0
}
