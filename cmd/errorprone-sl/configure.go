package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/spechtlabs/errorprone-sl/buildhost"
	"github.com/spechtlabs/errorprone-sl/internal/config"
)

var configureCmd = &cobra.Command{
	Use:   "configure [config files...]",
	Short: "Evaluate build descriptions and report each compile task",
	Long: `Evaluates every given build description (or the nearest one) with its
plugins applied and reports the toolchain and compiler arguments of each
compile task together with the declared dependencies. Projects are evaluated
independently and in parallel.`,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().StringP("output", "o", "text", "output format (text|yaml|json)")
}

type projectReport struct {
	Project      string              `json:"project" yaml:"project"`
	Source       string              `json:"source,omitempty" yaml:"source,omitempty"`
	Plugins      []string            `json:"plugins" yaml:"plugins"`
	Tasks        []taskReport        `json:"tasks" yaml:"tasks"`
	Dependencies []dependencyReport `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

type dependencyReport struct {
	Configuration string `json:"configuration" yaml:"configuration"`
	Notation      string `json:"notation" yaml:"notation"`
}

type taskReport struct {
	Name         string   `json:"name" yaml:"name"`
	ToolChain    string   `json:"toolchain" yaml:"toolchain"`
	CompilerArgs []string `json:"compilerArgs" yaml:"compilerArgs"`
}

func runConfigure(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	switch output {
	case "text", "yaml", "json":
	default:
		return humane.New(fmt.Sprintf("invalid --output value %q", output), "Use one of text, yaml or json.")
	}

	configs, err := loadConfigs(cmd, args)
	if err != nil {
		return err
	}

	reports := make([]projectReport, len(configs))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, cfg := range configs {
		g.Go(func() error {
			project, err := cfg.Evaluate(ctx)
			if err != nil {
				return err
			}
			reports[i] = reportFor(project, cfg.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch output {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	writeText(out, reports)
	return nil
}

func loadConfigs(cmd *cobra.Command, paths []string) ([]*config.Config, error) {
	if len(paths) == 0 {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		return []*config.Config{cfg}, nil
	}

	configs := make([]*config.Config, 0, len(paths))
	for _, path := range paths {
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func reportFor(project *buildhost.Project, source string) projectReport {
	r := projectReport{
		Project: project.Name,
		Source:  source,
		Plugins: project.Plugins.Applied(),
	}
	for _, task := range project.Tasks.Tasks() {
		r.Tasks = append(r.Tasks, taskReport{
			Name:         task.Name,
			ToolChain:    string(task.ToolChain),
			CompilerArgs: task.CompilerArgs,
		})
	}
	for _, name := range project.Configurations.Names() {
		cfg, err := project.Configurations.GetAt(name)
		if err != nil {
			continue
		}
		for _, dep := range cfg.Dependencies() {
			r.Dependencies = append(r.Dependencies, dependencyReport{Configuration: name, Notation: dep.String()})
		}
	}
	return r
}

func writeText(w io.Writer, reports []projectReport) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Source != "" {
			fmt.Fprintf(w, "%s %s\n", bold("project "+r.Project), faint("("+r.Source+")"))
		} else {
			fmt.Fprintln(w, bold("project "+r.Project))
		}

		for _, t := range r.Tasks {
			tc := color.GreenString(t.ToolChain)
			if t.ToolChain != string(buildhost.ToolChainErrorProne) {
				tc = color.YellowString(t.ToolChain)
			}
			fmt.Fprintf(w, "  task %s [%s]\n", bold(t.Name), tc)
			for _, arg := range t.CompilerArgs {
				fmt.Fprintf(w, "    %s\n", arg)
			}
		}

		for _, dep := range r.Dependencies {
			fmt.Fprintf(w, "  %s %s\n", faint(dep.Configuration+":"), dep.Notation)
		}
	}
}
