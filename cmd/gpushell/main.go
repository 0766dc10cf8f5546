// Command gpushell opens a window and renders a triangle with gogpu/wgpu.
//
// Settings come from the built-in defaults, then the YAML config file
// (-config, or $XDG_CONFIG_HOME/gpushell/config.yaml when present), then
// command-line flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gpushell"
	"github.com/gogpu/gpushell/app"
	"github.com/gogpu/gpushell/backend"
	"github.com/gogpu/gpushell/internal/desktop"
	"github.com/gogpu/gpushell/shader"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "gpushell:", err)
		os.Exit(1)
	}
}

// options are the parsed command line.
type options struct {
	configPath string
	logLevel   slog.Level
	cfg        gpushell.Config
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("gpushell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "YAML config file (default $XDG_CONFIG_HOME/gpushell/config.yaml)")
		title       = fs.String("title", gpushell.DefaultTitle, "window title")
		width       = fs.Uint("width", gpushell.DefaultWidth, "logical window width")
		height      = fs.Uint("height", gpushell.DefaultHeight, "logical window height")
		controlFlow = fs.String("control-flow", "poll", "event loop scheduling: poll or wait")
		backendName = fs.String("backend", "", "platform backend (default: best registered)")
		shaderPath  = fs.String("shader", "", "WGSL file replacing the built-in triangle shader")
		logLevel    = fs.String("log-level", "warn", "log level: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &options{configPath: *configPath}
	if err := opts.logLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}

	cfg := gpushell.DefaultConfig()
	var err error
	if opts.configPath != "" {
		cfg, err = gpushell.LoadConfigFile(opts.configPath, cfg)
	} else {
		cfg, err = gpushell.LoadDefaultConfig(cfg)
	}
	if err != nil {
		return nil, err
	}

	// Flags given explicitly override the file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg = cfg.WithTitle(*title)
		case "width":
			cfg = cfg.WithSize(uint32(*width), cfg.Height)
		case "height":
			cfg = cfg.WithSize(cfg.Width, uint32(*height))
		case "control-flow":
			cf, err := gpushell.ParseControlFlow(*controlFlow)
			if err != nil {
				flagErr = err
				return
			}
			cfg = cfg.WithControlFlow(cf)
		case "backend":
			cfg = cfg.WithBackend(*backendName)
		case "shader":
			cfg = cfg.WithShaderPath(*shaderPath)
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts.cfg = cfg
	return opts, nil
}

func loadShader(cfg gpushell.Config) (*shader.Artifact, error) {
	if cfg.ShaderPath != "" {
		return shader.LoadFile(cfg.ShaderPath)
	}
	return shader.Triangle()
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	cfg := opts.cfg

	gpushell.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: opts.logLevel,
	})))
	log := gpushell.Logger()

	platform, err := backend.Select(cfg.Backend)
	if err != nil {
		return err
	}
	artifact, err := loadShader(cfg)
	if err != nil {
		return err
	}
	log.Info("gpushell: starting",
		"platform", platform.Name(), "shader", artifact.Label,
		"control_flow", cfg.ControlFlow, "width", cfg.Width, "height", cfg.Height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop, err := desktop.NewEventLoop(cfg.ControlFlow)
	if err != nil {
		return err
	}
	controller := app.New(ctx, app.OptionsFromConfig(cfg, app.RenderConnector(platform, artifact)))
	loop.Run(controller)
	controller.Shutdown()
	return controller.Err()
}
