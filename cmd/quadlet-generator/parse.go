package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"quadlet-generator/internal/form"
	"quadlet-generator/internal/record"
)

type parseFlags struct {
	dump bool
	flat bool
}

// dumpedRecord is the plain shape printed by parse --dump.
type dumpedRecord struct {
	Option string
	Params map[string]any
}

func newParseCommand(a *app) *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Show the records parsed from field entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.parse(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch {
			case flags.flat:
				return form.WriteEntries(out, res.Entries())
			case flags.dump:
				cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
				cfg.Fdump(out, dumpRecords(res))

				return nil
			}

			res.Each(func(option string, records []*record.Record) {
				for i, r := range records {
					fmt.Fprintf(out, "%s[%d] %s\n", option, i, r)
				}
			})

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.dump, "dump", false, "dump records with their Go types")
	cmd.Flags().BoolVar(&flags.flat, "flat", false, "print the records as normalized field entries")

	return cmd
}

func dumpRecords(res *form.Result) []dumpedRecord {
	var out []dumpedRecord

	res.Each(func(option string, records []*record.Record) {
		for _, r := range records {
			out = append(out, dumpedRecord{Option: option, Params: r.Data()})
		}
	})

	return out
}
