package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anggasct/chartpath/visualization"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Export the tree as a Graphviz diagram",
	Long:  `Prints the tree in DOT format. With --from the computed path is highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(cmd)
		if err != nil {
			return err
		}

		gen := visualization.NewDOTGenerator(tree)
		if from, _ := cmd.Flags().GetString("from"); from != "" {
			p, err := resolvePath(cmd, tree)
			if err != nil {
				return err
			}
			gen.WithPath(p)
		}

		out, err := gen.Generate()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	dotCmd.Flags().String("from", "", "Source node of the path to highlight")
	dotCmd.Flags().String("to", "", "Target node of the path to highlight")
	rootCmd.AddCommand(dotCmd)
}
