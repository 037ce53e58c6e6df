package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/beamshop/opticut/internal/cli/formatter"
	"github.com/beamshop/opticut/internal/contract"
	"github.com/beamshop/opticut/internal/importer"
)

func newOptimizeCmd(app *App) *cobra.Command {
	var (
		inputPath   string
		nowStr      string
		jsonOut     bool
		csvPath     string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize a job queue bundle and print the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := resolveNow(nowStr)
			if err != nil {
				return err
			}

			req, err := loadRequest(app, inputPath, interactive, now)
			if err != nil {
				return err
			}

			resp, err := app.Optimize.Optimize(context.Background(), req)
			if err != nil {
				return err
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("creating CSV file: %w", err)
				}
				defer f.Close()
				if err := WriteScheduleCSV(f, resp); err != nil {
					return err
				}
			}

			if jsonOut {
				return WriteResponseJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptimizeResponse(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input bundle JSON file (\"-\" for stdin)")
	cmd.Flags().StringVar(&nowStr, "now", "", "Reference time, RFC3339 (default: current time UTC)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full result bundle as JSON")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write the schedule to a CSV file")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Build a bundle with the intake form")

	return cmd
}

func resolveNow(nowStr string) (time.Time, error) {
	if nowStr == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, nowStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --now: %w", err)
	}
	return t.UTC(), nil
}

func loadRequest(app *App, inputPath string, interactive bool, now time.Time) (contract.OptimizeRequest, error) {
	switch {
	case interactive:
		if app.IsInteractive != nil && !app.IsInteractive() {
			return contract.OptimizeRequest{}, fmt.Errorf("--interactive requires a terminal")
		}
		return runIntakeForm(app, now)
	case inputPath == "-":
		schema, err := importer.ReadBundleSchema(os.Stdin)
		if err != nil {
			return contract.OptimizeRequest{}, err
		}
		return importer.ConvertBundle(schema, now)
	case inputPath != "":
		schema, err := importer.LoadBundleSchema(inputPath)
		if err != nil {
			return contract.OptimizeRequest{}, err
		}
		return importer.ConvertBundle(schema, now)
	default:
		return contract.OptimizeRequest{}, fmt.Errorf("either --input or --interactive is required")
	}
}
