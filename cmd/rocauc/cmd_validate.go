package main

import (
	"fmt"

	"github.com/spboyer/rocauc/internal/projectconfig"
	"github.com/spboyer/rocauc/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a .rocauc.yaml file against the config schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := projectconfig.FileName
			if len(args) == 1 {
				path = args[0]
			}

			errs, err := validation.ValidateConfigFile(path)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(errs) == 0 {
				fmt.Fprintf(w, "✅ %s is valid\n", path)
				return nil
			}

			fmt.Fprintf(w, "❌ %s has %d problem(s):\n", path, len(errs))
			for _, e := range errs {
				fmt.Fprintf(w, "  - %s\n", e)
			}
			return fmt.Errorf("%s failed schema validation", path)
		},
	}
}
