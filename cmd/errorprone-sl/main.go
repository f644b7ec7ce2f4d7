// Command errorprone-sl evaluates Java build descriptions with the
// errorprone-sl plugin applied and reports the Error Prone flags each compile
// task ends up with.
//
// Usage:
//
//	# Print the flags derived from the nearest configuration file
//	errorprone-sl flags
//
//	# Evaluate one or more build descriptions and show every task
//	errorprone-sl configure services/a/.errorprone-sl.yaml services/b/errorprone-sl.toml
//
//	# List the checks every project starts with at ERROR
//	errorprone-sl defaults
//
// Configuration:
//
// Create a .errorprone-sl.yaml (or errorprone-sl.toml) file in your project root:
//
//	project:
//	  name: shop
//	  tasks:
//	    - name: compileTestJava
//	      toolchain: javac
//	errorprone:
//	  warn: [MethodCanBeStatic]
//	  off: [FieldCanBeFinal]
//	  suppressWarningsInGeneratedCode: true
//	  excludedPaths:
//	    - .*/build/generated/.*
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spechtlabs/errorprone-sl/internal/config"
	"github.com/spechtlabs/errorprone-sl/internal/logging"
	"github.com/spechtlabs/errorprone-sl/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "errorprone-sl",
		Short:             "Configure Error Prone severities for Java compile tasks",
		Long:              `errorprone-sl applies Error Prone check overrides to the compile tasks of a Java build.`,
		Version:           version.Short(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "configuration file (default: nearest "+config.ConfigFileName+" or "+config.TOMLConfigFileName+")")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "only log warnings and errors")

	return rootCmd
}

// setup applies the color mode and puts a logger into the command context.
func setup(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return humane.New(fmt.Sprintf("invalid --color value %q", mode), "Use one of auto, on or off.")
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	if quiet {
		logger = logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
	}
	cmd.SetContext(logging.IntoContext(cmd.Context(), logger))
	return nil
}

// loadConfig reads --config, or the nearest configuration file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func printError(err error) {
	var herr humane.Error
	if errors.As(err, &herr) {
		fmt.Fprintln(os.Stderr, herr.Display())
		return
	}
	fmt.Fprintf(os.Stderr, "errorprone-sl: %v\n", err)
}
