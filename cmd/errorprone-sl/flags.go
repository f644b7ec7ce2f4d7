package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	errorpronesl "github.com/spechtlabs/errorprone-sl"
	"github.com/spechtlabs/errorprone-sl/flags"
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Print the Error Prone flags derived from the configuration",
	Long: `Evaluates the configured project and prints the compiler flags the
errorprone-sl plugin appends to compile tasks, one per line.`,
	Args: cobra.NoArgs,
	RunE: runFlags,
}

func init() {
	flagsCmd.Flags().Bool("single-line", false, "print the flags on one line, separated by spaces")
}

func runFlags(cmd *cobra.Command, _ []string) error {
	singleLine, err := cmd.Flags().GetBool("single-line")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	project, err := cfg.Evaluate(cmd.Context())
	if err != nil {
		return err
	}
	registry, err := errorpronesl.Extension(project)
	if err != nil {
		return err
	}

	options := flags.Build(registry.Freeze())
	out := cmd.OutOrStdout()
	if singleLine {
		fmt.Fprintln(out, strings.Join(options, " "))
		return nil
	}
	for _, opt := range options {
		fmt.Fprintln(out, opt)
	}
	return nil
}
