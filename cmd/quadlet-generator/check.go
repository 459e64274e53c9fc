package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quadlet-generator/internal/catalog"
	"quadlet-generator/internal/diagnostic"
)

var severityColor = map[diagnostic.DiagnosticSeverity]*color.Color{
	diagnostic.DiagnosticError:   color.New(color.FgRed, color.Bold),
	diagnostic.DiagnosticWarning: color.New(color.FgYellow),
	diagnostic.DiagnosticInfo:    color.New(color.FgCyan),
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [catalog-file]",
		Short: "Check a catalogue against the schema rules",
		Long: "Check a catalogue file, the file given by --catalog, or the builtin " +
			"catalogue of --kind. Exits non-zero when errors are found.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := a.catalogData(args)
			if err != nil {
				return err
			}

			cat, err := catalog.Parse(data)
			if err != nil {
				return err
			}

			diags := catalog.Validate(cat, a.reg)
			printDiagnostics(cmd.OutOrStdout(), name, diags)

			if diags.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", name, len(diags.Errors))
			}

			return nil
		},
	}
}

func (a *app) catalogData(args []string) (string, []byte, error) {
	path := a.v.GetString(keyCatalog)
	if len(args) > 0 {
		path = args[0]
	}

	if path == "" {
		kind := a.v.GetString(keyKind)
		data, err := catalog.BuiltinData(kind)

		return kind, data, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return path, data, nil
}

func printDiagnostics(w io.Writer, name string, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		label := severityColor[d.Severity].Sprintf("%-7s", d.Severity)
		fmt.Fprintf(w, "%s %s\n", label, d)
	}

	summary := color.GreenString("ok")
	if diags.HasErrors() {
		summary = color.RedString("failed")
	}

	fmt.Fprintf(w, "%s: %s (%d errors, %d warnings, %d infos)\n",
		name, summary, len(diags.Errors), len(diags.Warnings), len(diags.Infos))
}
