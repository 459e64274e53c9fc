package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quadlet-generator/internal/output"
)

func newFieldsCommand(a *app) *cobra.Command {
	var siblings int

	cmd := &cobra.Command{
		Use:   "fields <option>",
		Short: "Print the field names a form emits for one option instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			opt := cat.Lookup(args[0])
			if opt == nil {
				return fmt.Errorf("%w %q for kind %s", output.ErrUnknownOption, args[0], cat.Kind)
			}

			if opt.Unsupported {
				return fmt.Errorf("%w: %s", output.ErrUnsupportedOption, opt.Name)
			}

			for _, name := range opt.FieldNames(siblings) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&siblings, "siblings", "n", 1, "number of elements per array field")

	return cmd
}
