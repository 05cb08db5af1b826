// Package main is the entry point for the propcheck demo CLI: a small
// catalog of property scenarios runnable from the command line, useful for
// poking at the driver's behavior without writing Go.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nomagicln/propcheck"
)

// Build information, set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

// Execute builds and runs the root command.
func Execute() error {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "propcheck",
		Short:   "Run property-based test scenarios",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML file overriding the default run config")

	rootCmd.AddCommand(newListCmd(), newRunCmd(&configPath))

	return rootCmd.Execute()
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, s := range scenarios {
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
			}
			return nil
		},
	}
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run [name...]",
		Short: "Run one or more scenarios by name, or all of them if none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			names := args
			if len(names) == 0 {
				for _, s := range scenarios {
					names = append(names, s.Name)
				}
			}

			failed := 0
			for _, name := range names {
				s, ok := findScenario(name)
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: unknown scenario\n", name)
					failed++
					continue
				}
				runCfg := cfg
				if s.Configure != nil {
					s.Configure(&runCfg)
				}
				result := propcheck.CheckWithConfig(runCfg, s.Build())
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.Name, result)
				if result.Kind == propcheck.Violation {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d scenario(s) reported a violation or were unknown", failed)
			}
			return nil
		},
	}
}
