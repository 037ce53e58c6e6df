package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/beamshop/opticut/internal/cli"
	"github.com/beamshop/opticut/internal/config"
	"github.com/beamshop/opticut/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var logW io.Writer
	if cfg.Verbose || os.Getenv("OPTICUT_VERBOSE") == "1" {
		logW = os.Stderr
	}

	app := &cli.App{
		Optimize:     service.NewOptimizeService(cfg.Rates, service.NewLogUseCaseObserver(logW)),
		DefaultGoals: cfg.DefaultGoals,
	}

	// Detect interactive terminal for the intake form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
