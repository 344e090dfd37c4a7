package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/cli/formatter"
	"github.com/alexanderramin/wildercal/internal/service"
	"github.com/alexanderramin/wildercal/internal/themes"
)

// App holds everything the commands drive.
type App struct {
	Curation   service.CurationService
	Plans      service.PlanService
	Editions   service.EditionService
	Discoverer service.Discoverer
	Catalog    *themes.Catalog

	// Progress receives spinner frames during long calls. Nil disables them.
	Progress io.Writer
}

// NewRootCmd creates the top-level "wildercal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var noColor bool
	root := &cobra.Command{
		Use:   "wildercal",
		Short: "Curate local places and plan a 52-week family activity calendar",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				formatter.SetColor(false)
				app.Progress = nil
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output and spinners")

	root.AddCommand(
		newThemesCmd(app),
		newDiscoverCmd(app),
		newCurateCmd(app),
		newPlanCmd(app),
		newEditionsCmd(app),
		newExportCmd(app),
		newScoreCmd(),
	)

	return root
}
