package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/anggasct/chartpath"
	"github.com/anggasct/chartpath/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "chartpath",
	Short:         "Inspect transition paths of hierarchical state trees",
	Long:          `chartpath loads a YAML tree definition and shows which states a transition exits and enters.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "YAML tree definition")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	_ = rootCmd.MarkPersistentFlagRequired("file")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return logging.NewNop()
	}
	return logging.New(slog.LevelDebug)
}

func loadTree(cmd *cobra.Command) (*chartpath.Tree, error) {
	file, _ := cmd.Flags().GetString("file")
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	def, err := chartpath.LoadDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return def.Build()
}

// resolvePath looks up --from and --to and computes the path between them.
// A missing --to yields a stay path.
func resolvePath(cmd *cobra.Command, tree *chartpath.Tree) (*chartpath.Path, error) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	source, err := tree.Find(from)
	if err != nil {
		return nil, err
	}
	target := chartpath.NoNode
	if to != "" {
		if target, err = tree.Find(to); err != nil {
			return nil, err
		}
	}
	return tree.ComputePath(source, target), nil
}
