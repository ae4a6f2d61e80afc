// Package treepath implements a single-character navigation language over
// html trees. A path like "v$>" is applied one directive at a time; the
// first directive that cannot be satisfied produces an error naming the
// path prefix consumed so far, which pinpoints where a document diverged
// from the expected shape.
//
// Directives:
//
//	^  parent
//	>  next element sibling
//	<  previous element sibling
//	v  first element child
//	$  last element child
//
// Sibling and child directives skip non-element nodes. Absent structure is
// always reported through the result value, never a panic, since documents
// are untrusted input.
package treepath

import (
	"fmt"

	"nikkedle-backend/lib/htmlutil"
	"nikkedle-backend/lib/outcome"

	"golang.org/x/net/html"
)

func describe(directive byte) string {
	switch directive {
	case '^':
		return "parent"
	case '>':
		return "next sibling"
	case '<':
		return "previous sibling"
	case 'v':
		return "first child"
	case '$':
		return "last child"
	}
	return "node"
}

// Navigate applies path to node left to right, returning the reached node
// or a failure message naming the consumed path prefix. An empty path
// returns the input node. Requesting the parent of the tree root is a
// failure like any other missing structure.
func Navigate(node *html.Node, path string) outcome.Result[*html.Node, string] {
	if node == nil {
		return outcome.Err[*html.Node, string]("navigation started from a nil node")
	}

	current := node
	for i := 0; i < len(path); i++ {
		directive := path[i]

		var next *html.Node
		switch directive {
		case '^':
			next = htmlutil.Parent(current)
		case '>':
			next = htmlutil.NextElement(current)
		case '<':
			next = htmlutil.PrevElement(current)
		case 'v':
			next = htmlutil.FirstElementChild(current)
		case '$':
			next = htmlutil.LastElementChild(current)
		default:
			return outcome.Err[*html.Node, string](fmt.Sprintf(
				"unknown directive %q at path '%s'", string(directive), path[:i],
			))
		}

		if next == nil {
			return outcome.Err[*html.Node, string](fmt.Sprintf(
				"missing %s at path '%s'", describe(directive), path[:i],
			))
		}
		current = next
	}

	return outcome.Ok[*html.Node, string](current)
}
