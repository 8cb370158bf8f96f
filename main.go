// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/avlkit/commands"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("avlkit failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Self-balancing AVL trees you can poke at from the terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var config *Config
	var verbose bool

	newSession := func() *commands.Session {
		return commands.NewSession(config.SessionOptions())
	}

	runREPL := func(cmd *cobra.Command, args []string) error {
		return runBubbleTeaApp(newSession(), commands.NewManager(), NewHelpCache())
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive avlkit session",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens an interactive session with a live view of the tree`),
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	}

	var cmdExec = &cobra.Command{
		Use:   "exec <script>",
		Short: "Run a script of tree commands",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Exec runs every command of a script file against a fresh tree"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readScriptFile(args[0])
			if err != nil {
				return err
			}
			progress, _ := cmd.Flags().GetBool("progress")
			printTree, _ := cmd.Flags().GetBool("print")
			quiet, _ := cmd.Flags().GetBool("quiet")

			s := newSession()
			result, err := runScript(commands.NewManager(), s, lines, ScriptOptions{
				StopOnError:  config.Script.StopOnError,
				ShowProgress: progress || config.Script.ShowProgress,
				Echo:         !quiet,
				Out:          cmd.OutOrStdout(),
				Progress:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			logger.Info().Int("executed", result.Executed).Int("failed", result.Failed).Msg("script finished")

			if printTree {
				s.Render(cmd.OutOrStdout())
			}
			if err := s.Tree().Check(); err != nil {
				return fmt.Errorf("tree invariants broken: %w", err)
			}
			return nil
		},
	}
	cmdExec.Flags().Bool("progress", false, "show a progress bar")
	cmdExec.Flags().Bool("print", false, "print the tree after the script")
	cmdExec.Flags().Bool("quiet", false, "do not echo command output")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Measure tree height against the AVL bound",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Bench inserts N keys, removes every other one and checks the tree after each phase"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			order, _ := cmd.Flags().GetString("order")
			seed, _ := cmd.Flags().GetUint64("seed")
			progress, _ := cmd.Flags().GetBool("progress")

			result, err := runBench(BenchOptions{
				N:            n,
				Order:        order,
				Seed:         seed,
				ShowProgress: progress,
				Progress:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			printBenchResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmdBench.Flags().Int("n", 100000, "number of keys")
	cmdBench.Flags().String("order", "asc", "key order: asc, desc or random")
	cmdBench.Flags().Uint64("seed", 1, "seed for random order")
	cmdBench.Flags().Bool("progress", false, "show a progress bar")

	var cmdPaths = &cobra.Command{
		Use:   "paths <tree.yaml>",
		Short: "Check whether all leaves of a tree share a depth",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Paths loads a plain binary tree from YAML and reports whether every leaf is at the same depth"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadPathsTree(args[0])
			if err != nil {
				return err
			}
			reportPaths(cmd.OutOrStdout(), root)
			return nil
		},
	}

	var cmdDashboard = &cobra.Command{
		Use:   "dashboard <script>",
		Short: "Show a tree dashboard after running a script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Dashboard runs a script and shows the tree, a depth histogram and statistics"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readScriptFile(args[0])
			if err != nil {
				return err
			}
			s := newSession()
			result, err := runScript(commands.NewManager(), s, lines, ScriptOptions{
				StopOnError: config.Script.StopOnError,
			})
			if err != nil {
				return err
			}
			return runDashboard(s, result)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlkit CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avlkit settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings shows ~/.avlkit.yaml, creating it with defaults when missing"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlkit",
		Version:       version,
		Long:          asciiLogo,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config = LoadConfig()
			setupLogging(cmd.ErrOrStderr(), config.Log.Level, verbose)
		},
		// Default to the interactive session when no subcommand is provided
		RunE: runREPL,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(cmdRun, cmdExec, cmdBench, cmdPaths, cmdDashboard, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}
