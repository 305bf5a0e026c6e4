// Package chartpath resolves transition paths in hierarchical and parallel
// statecharts and fans out the resulting entry, exit and transition
// notifications.
//
// A Tree is an immutable arena of transition targets built with NewTree or
// from a Definition. ComputePath answers, for a source and a target, which
// nodes are exited (UpwardSegment, leaf first), which are entered
// (DownwardSegment, outermost first), which state bounds both (Scope) and
// whether a parallel region border is crossed:
//
//	tree, _ := chartpath.NewTree("doc").
//		State("Root").
//		State("A").
//		State("A1").End().
//		State("A2").State("A2a").
//		Build()
//	p := tree.ComputePath(tree.MustLookup("A1"), tree.MustLookup("A2a"))
//	// p.UpwardSegment()   == [A1]
//	// p.DownwardSegment() == [A2 A2a]
//	// p.Scope()           == A
//
// A Registry keeps listeners per Observable and a Notifier walks paths and
// fires on it. Neither selects transitions nor tracks the active
// configuration; that is left to the engine using this package.
package chartpath
