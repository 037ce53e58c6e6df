package cli

import (
	"github.com/spf13/cobra"

	"github.com/beamshop/opticut/internal/domain"
	"github.com/beamshop/opticut/internal/service"
)

// App holds references to the services and defaults CLI commands use.
type App struct {
	Optimize     service.OptimizeService
	DefaultGoals domain.OptimizationGoals

	// IsInteractive reports whether stdin is a terminal; the intake
	// form is only offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "opticut" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "opticut",
		Short: "Laser-cutting job queue optimizer",
		Long: "opticut sequences a queue of pending laser-cutting jobs across the machine pool\n" +
			"and projects performance, cost and risk for the resulting schedule.",
	}

	root.AddCommand(
		newOptimizeCmd(app),
	)

	return root
}
