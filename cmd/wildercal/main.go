package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/wildercal/internal/app"
	"github.com/alexanderramin/wildercal/internal/cli"
	"github.com/alexanderramin/wildercal/internal/cli/formatter"
	"github.com/alexanderramin/wildercal/internal/config"
	"github.com/alexanderramin/wildercal/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	c, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}()

	a := &cli.App{
		Curation:   c.Curation,
		Plans:      c.Plans,
		Editions:   c.Editions,
		Discoverer: c.Discoverer,
		Catalog:    c.Catalog,
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	formatter.SetColor(stdoutTTY && os.Getenv("NO_COLOR") == "")
	if isatty.IsTerminal(os.Stderr.Fd()) {
		a.Progress = os.Stderr
	}

	root := cli.NewRootCmd(a)
	root.SilenceErrors = true
	return root.ExecuteContext(ctx)
}
