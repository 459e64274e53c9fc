package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"quadlet-generator/internal/catalog"
)

func newOptionsCommand(a *app) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the options of a catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			if export {
				data, err := catalog.Marshal(cat)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), optionsTable(cat))

			return nil
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "print the catalogue as YAML")

	return cmd
}

func optionsTable(cat *catalog.Catalog) string {
	table := uitable.New()
	table.Separator = "  "
	table.MaxColWidth = 60
	table.AddRow("OPTION", "ARG", "MULTIPLE", "PARAMS", "DESCRIPTION")

	for _, opt := range cat.Options {
		arg := opt.Arg
		if opt.Unsupported {
			arg = "(unsupported)"
		}

		params := make([]string, 0, len(opt.Params))
		for _, p := range opt.Params {
			params = append(params, paramLabel(p))
		}

		table.AddRow(opt.Name, arg, yesNo(opt.AllowMultiple), strings.Join(params, " "), opt.Description)
	}

	return table.String() + "\n"
}

func paramLabel(p catalog.Param) string {
	label := p.Param + ":" + p.TypeName
	if p.IsArray && p.Type != catalog.TypePair {
		label += "[]"
	}

	if !p.IsRequired() {
		label += "?"
	}

	return label
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
