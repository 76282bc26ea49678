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
	"strings"
	"syscall"
	"time"

	_ "rule-ca/internal/app"
	"rule-ca/internal/config"
	"rule-ca/internal/core"
	_ "rule-ca/internal/render"
	"rule-ca/internal/sims/elementary"
	"rule-ca/internal/telemetry"
	_ "rule-ca/internal/term"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// writesOutput lists the modes that write to -out instead of a display.
var writesOutput = map[string]bool{"text": true, "png": true}

type options struct {
	configPath  string
	mode        string
	outPath     string
	statsPath   string
	writeConfig string
	overrides   []string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "ca.yaml", "path to the YAML configuration")
	flag.StringVar(&opts.mode, "mode", "text", "presenter to use: "+strings.Join(core.PresenterNames(), ", "))
	flag.StringVar(&opts.outPath, "out", "", "output file for the text and png presenters (default stdout)")
	flag.StringVar(&opts.statsPath, "stats", "", "write per-generation growth stats to this CSV file")
	flag.StringVar(&opts.writeConfig, "write-config", "", "write the effective configuration to this YAML file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logJSON := flag.Bool("log-json", false, "log as JSON instead of text")
	var overrides kvList
	flag.Var(&overrides, "set", "configuration override in key=value form (repeatable)")
	flag.Parse()
	opts.overrides = overrides

	logger, err := newLogger(os.Stderr, *logLevel, *logJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		slog.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(opts.overrides); err != nil {
		return fmt.Errorf("applying overrides: %w", err)
	}

	factory, ok := core.Presenters()[opts.mode]
	if !ok {
		return fmt.Errorf("unknown mode %q (available: %s)", opts.mode, strings.Join(core.PresenterNames(), ", "))
	}
	if opts.mode == "window" {
		if err := cfg.ValidateWindow(); err != nil {
			return err
		}
	}
	if opts.outPath != "" && !writesOutput[opts.mode] {
		return fmt.Errorf("-out is only used by the text and png modes, not %q", opts.mode)
	}

	out := io.Writer(os.Stdout)
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}
	presenter, err := factory(cfg.Present(out))
	if err != nil {
		return fmt.Errorf("creating %s presenter: %w", opts.mode, err)
	}

	eng, err := elementary.New(cfg.Engine(), logger)
	if err != nil {
		return err
	}
	logger.Info("starting", eng.Parameters().Attrs()...)

	start := time.Now()
	for eng.Step() {
	}
	logger.Info("computed", "summary", eng.History().Summarize(), "elapsed", time.Since(start))

	if opts.statsPath != "" {
		if err := telemetry.WriteCSVFile(opts.statsPath, eng.History()); err != nil {
			return err
		}
	}
	if opts.writeConfig != "" {
		if err := cfg.WriteYAML(opts.writeConfig); err != nil {
			return err
		}
	}

	if err := presenter.Present(ctx, eng); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("presenting: %w", err)
	}
	return nil
}
