package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wildercal/internal/export"
)

const (
	formatXLSX = "xlsx"
	formatMD   = "md"
	formatHTML = "html"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export <edition>",
		Short: "Write an edition as a workbook, markdown or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveEditionID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Editions.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			report := export.Report{
				Edition:     d.Edition,
				Places:      d.Places,
				Assignments: d.Assignments,
				Themes:      d.Themes,
			}

			if out == "" && format == formatXLSX {
				out = defaultExportName(d.Edition.City, format)
			}
			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := writeReport(w, format, report); err != nil {
				return err
			}
			if out != "" && out != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().Var(newEnumValue(&format, formatXLSX, formatXLSX, formatMD, formatHTML), "format", "Output format: xlsx, md or html")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout for md/html, <city>_wilder_seasons.xlsx for xlsx)")
	return cmd
}

func writeReport(w io.Writer, format string, r export.Report) error {
	switch format {
	case formatMD:
		_, err := io.WriteString(w, export.Markdown(r))
		return err
	case formatHTML:
		page, err := export.HTML(r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	default:
		return export.WriteWorkbook(w, r)
	}
}

func defaultExportName(city, format string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(city), "_"))
	if slug == "" {
		slug = "edition"
	}
	return slug + "_wilder_seasons." + format
}
