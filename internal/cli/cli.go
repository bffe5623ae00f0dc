// Package cli wires the pivotgrid commands.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aerissecure/pivotgrid"
	"github.com/aerissecure/pivotgrid/config"
	"github.com/aerissecure/pivotgrid/docx"
	"github.com/aerissecure/pivotgrid/errors"
	"github.com/aerissecure/pivotgrid/htmltable"
	"github.com/aerissecure/pivotgrid/internal/logging"
	"github.com/aerissecure/pivotgrid/table"
	"github.com/aerissecure/pivotgrid/xlsx"
)

var errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "pivotgrid",
		Short: "Render multidimensional query results as pivot tables",
		Long: `pivotgrid lays out a multidimensional query result as a two-dimensional
pivot table and writes it as a spreadsheet, a Word table, an HTML table, a
terminal table or CSV.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newMembersCmd())
	return rootCmd
}

// FormatError renders err for the terminal.
func FormatError(err error) string {
	return errorLabel.Render("error:") + " " + err.Error()
}

func newRenderCmd() *cobra.Command {
	var input, configPath, format, output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a cell set",
		Long: `Render reads a cell set (YAML or JSON, "-" for stdin) and writes it in the
format of the report definition. Without a definition the defaults apply,
adjusted by PIVOTGRID_ environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if format != "" {
				report.Format = format
			}
			cs, err := loadInput(cmd, input)
			if err != nil {
				return err
			}
			return withOutput(cmd, output, func(w io.Writer) error {
				return renderReport(w, cs, report)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Cell set file, - for stdin")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Report definition (YAML, JSON or TOML)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: xlsx, docx, html, table or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func renderReport(w io.Writer, cs *pivotgrid.CellSet, report *config.Report) error {
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "render "+report.Format)
	defer done()

	switch report.Format {
	case config.FormatXLSX:
		size, err := xlsx.Write(w, report.Sheet, cs, report.XLSXOptions())
		if err != nil {
			return err
		}
		logger.Info().Int("rows", size.Rows).Int("columns", size.Columns).Msg("wrote workbook")
		return nil
	case config.FormatHTML:
		return htmltable.Write(w, cs, report.HTMLOptions())
	case config.FormatDOCX:
		return docx.Write(w, cs, report.DOCXOptions())
	case config.FormatTable, config.FormatCSV:
		name := report.Title
		if name == "" {
			name = report.Sheet
		}
		tbl, err := table.FromCellSet(cs, name, report.TableOptions())
		if err != nil || tbl == nil {
			return err
		}
		if report.Format == config.FormatCSV {
			return tbl.WriteCSV(w)
		}
		if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
			return errors.Wrap(err, errors.ErrWrite, "failed to write table")
		}
		return nil
	}
	return errors.Newf(errors.ErrConfigParse, "unknown output format %q", report.Format)
}

func newPreviewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Convert a workbook or Word document into an HTML preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrNotFound, "open %s", args[0])
			}
			toHTML := xlsx.ToHTML
			if strings.EqualFold(filepath.Ext(args[0]), ".docx") {
				toHTML = docx.ToHTML
			}
			out, err := toHTML(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				return err
			}
			return withOutput(cmd, output, func(w io.Writer) error {
				if _, err := io.WriteString(w, out); err != nil {
					return errors.Wrap(err, errors.ErrWrite, "failed to write preview")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newMembersCmd() *cobra.Command {
	var input, property string

	cmd := &cobra.Command{
		Use:   "members",
		Short: "List the column axis members of a cell set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := loadInput(cmd, input)
			if err != nil {
				return err
			}
			members, err := pivotgrid.AxisMembers(cs, property)
			if err != nil {
				return err
			}
			for _, m := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.UniqueName, m.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Cell set file, - for stdin")
	cmd.Flags().StringVarP(&property, "property", "p", "", "Member property to list instead of the caption")
	return cmd
}

func loadInput(cmd *cobra.Command, path string) (*pivotgrid.CellSet, error) {
	if path == "-" {
		return pivotgrid.LoadCellSet(cmd.InOrStdin())
	}
	return pivotgrid.LoadCellSetFile(path)
}

// withOutput runs write against the named file, or the command output when
// path is empty.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWrite, "create %s", path)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrWrite, "close %s", path)
	}
	log.Info().Str("path", path).Msg("wrote output")
	return nil
}
