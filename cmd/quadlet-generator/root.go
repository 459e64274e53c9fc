package main

import (
	"github.com/spf13/cobra"
)

const example = `  # Quadlet unit from a field file
  quadlet-generator generate web.fields

  # podman command line from stdin
  cat web.fields | quadlet-generator generate --mode podman

  # field names for two capabilities
  quadlet-generator fields AddCapability --siblings 2

  # list the volume options
  quadlet-generator options --kind volume`

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Generate Podman Quadlet units from form fields",
		Example:       example,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	addPersistentFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGenerateCommand(a),
		newParseCommand(a),
		newFieldsCommand(a),
		newOptionsCommand(a),
		newCheckCommand(a),
	)

	return cmd
}
