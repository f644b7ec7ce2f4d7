package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spechtlabs/errorprone-sl/severity"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "List the checks every project starts with at ERROR",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		r := severity.NewRegistry()
		r.SeedDefaults()

		out := cmd.OutOrStdout()
		for _, name := range r.Checks(severity.LevelError) {
			fmt.Fprintf(out, "%s %s\n", color.RedString(severity.LevelError.String()), name)
		}

		if dups := severity.DefaultErrorCheckDuplicates(); len(dups) > 0 {
			fmt.Fprintf(out, "\n%s listed more than once in the default policy: %s\n",
				color.YellowString("note:"), strings.Join(dups, ", "))
		}
	},
}
