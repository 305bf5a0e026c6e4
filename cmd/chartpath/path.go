package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anggasct/chartpath"
	"github.com/anggasct/chartpath/pkg/listeners"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Compute the exit and entry segments of a transition",
	Example: `  chartpath path -f tree.yaml --from A1 --to A2a
  chartpath path -f tree.yaml --from A1 -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd)
		if err != nil {
			return err
		}
		p, err := resolvePath(cmd, tree)
		if err != nil {
			return err
		}

		// replay the path through a notifier so --verbose shows the notifications
		logger := newLogger(cmd)
		registry := chartpath.NewRegistry(chartpath.WithLogger(logger))
		registry.AddListener(tree.MachineObservable(), listeners.NewLogging(logger, slog.LevelDebug))
		notifier := chartpath.NewNotifier(tree, registry, chartpath.WithNotifierLogger(logger))
		t := chartpath.NewTransition(p.Source())
		if !p.IsStay() {
			t.Targets = []chartpath.NodeID{p.Target()}
		}
		notifier.Execute(t)

		output, _ := cmd.Flags().GetString("output")
		switch output {
		case "yaml":
			out, err := yaml.Marshal(p.Report())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		case "text", "":
			out := termenv.NewOutput(cmd.OutOrStdout())
			fmt.Fprint(out, formatReport(out, p.Report()))
			return nil
		default:
			return fmt.Errorf("unknown output format %q", output)
		}
	},
}

// formatReport renders the report as aligned text. Exited names are red and
// entered names green when out supports color.
func formatReport(out *termenv.Output, r chartpath.PathReport) string {
	paint := func(names []string, color string) string {
		styled := make([]string, len(names))
		for i, name := range names {
			styled[i] = out.String(name).Foreground(out.Color(color)).String()
		}
		return strings.Join(styled, " -> ")
	}

	var sb strings.Builder
	scope := r.Scope
	if r.Global {
		scope = "<global>"
	}
	fmt.Fprintf(&sb, "source:  %s\n", r.Source)
	if r.Target == "" {
		fmt.Fprintf(&sb, "target:  <stay>\n")
	} else {
		fmt.Fprintf(&sb, "target:  %s\n", r.Target)
	}
	fmt.Fprintf(&sb, "scope:   %s\n", scope)
	fmt.Fprintf(&sb, "exit:    %s\n", paint(r.Exit, "1"))
	fmt.Fprintf(&sb, "enter:   %s\n", paint(r.Enter, "2"))
	if r.CrossesRegion {
		fmt.Fprintf(&sb, "regions: exited [%s] entered [%s]\n",
			strings.Join(r.RegionsExited, " "), strings.Join(r.RegionsEntered, " "))
	}
	return sb.String()
}

func init() {
	pathCmd.Flags().String("from", "", "Source node")
	pathCmd.Flags().String("to", "", "Target node (omit for a stay transition)")
	pathCmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
	_ = pathCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(pathCmd)
}
