package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/chartpath"
)

// DOTGenerator generates Graphviz DOT representations of a tree, optionally
// highlighting one computed path
type DOTGenerator struct {
	tree    *chartpath.Tree
	path    *chartpath.Path
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowPseudostates   bool
	ShowRegionMarkers  bool
	RankDirection      string // "TB", "LR", "BT", "RL"
	NodeShape          string
	ParallelStyle      string
	ExitColor          string
	EntryColor         string
	ScopeColor         string
	DefaultStateColor  string
	PseudostateColor   string
	TransitionEdgeAttr string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowPseudostates:   true,
		ShowRegionMarkers:  true,
		RankDirection:      "TB",
		NodeShape:          "box",
		ParallelStyle:      "dashed,rounded",
		ExitColor:          "lightcoral",
		EntryColor:         "lightgreen",
		ScopeColor:         "gold",
		DefaultStateColor:  "lightblue",
		PseudostateColor:   "lightyellow",
		TransitionEdgeAttr: "color=blue penwidth=2",
	}
}

// NewDOTGenerator creates a new DOT generator for the given tree
func NewDOTGenerator(tree *chartpath.Tree, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		tree:    tree,
		options: opts,
	}
}

// WithPath highlights the exit segment, entry segment and scope of p
func (g *DOTGenerator) WithPath(p *chartpath.Path) *DOTGenerator {
	g.path = p
	return g
}

// Generate creates a DOT representation of the tree
func (g *DOTGenerator) Generate() (string, error) {
	if g.tree == nil {
		return "", fmt.Errorf("no tree to render")
	}
	if g.path != nil && g.path.Tree() != g.tree {
		return "", fmt.Errorf("path belongs to a different tree")
	}

	var dot strings.Builder

	dot.WriteString(fmt.Sprintf("digraph %q {\n", g.tree.TreeName()))
	dot.WriteString(fmt.Sprintf("  // tree %s\n", g.tree.ID()))
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString("  compound=true;\n")
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n\n", g.options.NodeShape))

	for _, root := range g.tree.Roots() {
		g.generateNode(&dot, root, 1)
	}

	if g.path != nil {
		g.generateTransition(&dot)
	}

	dot.WriteString("}\n")

	return dot.String(), nil
}

// generateNode writes a leaf as a node and a node with children as a cluster
func (g *DOTGenerator) generateNode(dot *strings.Builder, id chartpath.NodeID, indent int) {
	pad := strings.Repeat("  ", indent)
	kind := g.tree.Kind(id)

	if kind.IsPseudo() && !g.options.ShowPseudostates {
		return
	}

	children := g.tree.Children(id)
	if len(children) == 0 {
		g.generateLeaf(dot, id, pad)
		return
	}

	dot.WriteString(fmt.Sprintf("%ssubgraph \"cluster_%s\" {\n", pad, g.tree.Name(id)))
	dot.WriteString(fmt.Sprintf("%s  label=\"%s\";\n", pad, g.label(id)))
	style := "rounded"
	if kind == chartpath.KindParallel {
		style = g.options.ParallelStyle
	}
	if color := g.highlight(id); color != "" {
		dot.WriteString(fmt.Sprintf("%s  style=\"%s,filled\";\n", pad, style))
		dot.WriteString(fmt.Sprintf("%s  fillcolor=%s;\n", pad, color))
	} else {
		dot.WriteString(fmt.Sprintf("%s  style=\"%s\";\n", pad, style))
	}

	// anchor node so edges can target the cluster itself
	dot.WriteString(fmt.Sprintf("%s  \"%s\" [shape=point style=invis];\n", pad, g.tree.Name(id)))

	for _, child := range children {
		g.generateNode(dot, child, indent+1)
	}
	dot.WriteString(fmt.Sprintf("%s}\n", pad))
}

func (g *DOTGenerator) generateLeaf(dot *strings.Builder, id chartpath.NodeID, pad string) {
	shape := g.options.NodeShape
	fill := g.options.DefaultStateColor

	switch g.tree.Kind(id) {
	case chartpath.KindFinal:
		shape = "doublecircle"
		fill = g.options.PseudostateColor
	case chartpath.KindHistory:
		shape = "circle"
		fill = g.options.PseudostateColor
	case chartpath.KindInitial:
		shape = "point"
		fill = "black"
	}

	if color := g.highlight(id); color != "" {
		fill = color
	}

	dot.WriteString(fmt.Sprintf("%s\"%s\" [shape=%s style=\"filled\" fillcolor=%s label=\"%s\"];\n",
		pad, g.tree.Name(id), shape, fill, g.label(id)))
}

func (g *DOTGenerator) label(id chartpath.NodeID) string {
	label := g.tree.Name(id)
	switch g.tree.Kind(id) {
	case chartpath.KindParallel:
		label += "\\n[parallel]"
	case chartpath.KindHistory:
		if g.tree.IsDeepHistory(id) {
			label = "H*"
		} else {
			label = "H"
		}
	case chartpath.KindInitial:
		label = ""
	}
	if g.options.ShowRegionMarkers && g.tree.IsRegion(id) {
		label += "\\n(region)"
	}
	return label
}

// highlight returns the fill color for nodes touched by the path
func (g *DOTGenerator) highlight(id chartpath.NodeID) string {
	if g.path == nil {
		return ""
	}
	if id == g.path.Scope() && !g.path.IsStay() {
		return g.options.ScopeColor
	}
	for _, n := range g.path.DownwardSegment() {
		if n == id {
			return g.options.EntryColor
		}
	}
	for _, n := range g.path.UpwardSegment() {
		if n == id {
			return g.options.ExitColor
		}
	}
	return ""
}

func (g *DOTGenerator) generateTransition(dot *strings.Builder) {
	source := g.path.Source()
	target := g.path.Target()
	if target == chartpath.NoNode {
		target = source
	}

	attrs := g.options.TransitionEdgeAttr
	if len(g.tree.Children(source)) > 0 {
		attrs += fmt.Sprintf(" ltail=\"cluster_%s\"", g.tree.Name(source))
	}
	if len(g.tree.Children(target)) > 0 {
		attrs += fmt.Sprintf(" lhead=\"cluster_%s\"", g.tree.Name(target))
	}

	dot.WriteString("\n  // Transition\n")
	dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [%s];\n", g.tree.Name(source), g.tree.Name(target), attrs))
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// GenerateSVG renders the DOT output with the Graphviz dot command
func (g *DOTGenerator) GenerateSVG() (string, error) {
	content, err := g.Generate()
	if err != nil {
		return "", err
	}

	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(content)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}
