package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quadlet-generator/internal/output"
)

func newGenerateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate a Quadlet unit or podman command from field entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args)
		},
	}

	fs := cmd.Flags()
	fs.StringP(keyMode, "m", "quadlet", "output mode: quadlet or podman")
	fs.Bool(keySection, true, "write the unit section header in quadlet mode")
	fs.StringP(keyOutput, "o", "", "write to file instead of stdout")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	mode, err := output.ParseMode(a.v.GetString(keyMode))
	if err != nil {
		return err
	}

	cat, err := a.catalog()
	if err != nil {
		return err
	}

	res, err := a.parse(args)
	if err != nil {
		return err
	}

	if missing := cat.MissingRequired(res.Has); len(missing) > 0 {
		a.log.Warn("required options missing", zap.String("kind", cat.Kind), zap.Strings("options", missing))
	}

	section := ""
	if a.v.GetBool(keySection) {
		section = cat.Section
	}

	text, err := output.Generate(cat, res, mode, section)
	if err != nil {
		return err
	}

	a.log.Info("generated",
		zap.Stringer("mode", mode), zap.String("kind", cat.Kind), zap.Int("options", res.Len()))

	if path := a.v.GetString(keyOutput); path != "" {
		return output.WriteFile(path, text)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(text, "\n"))

	return err
}
