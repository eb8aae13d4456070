// Package editkit is the editing kernel behind modal Markdown editing.
//
// It provides block-oriented edits (remove, insert with indent, list-marker
// continuation, indent/unindent of a selection), intra-block motions over
// character targets (the vim f/F/t/T family), a bracket and quote pair
// selector (ci(, da" and friends), selection helpers, and a viewport
// positioner that scrolls a block to the top, middle or bottom of a page.
//
// Every primitive works through a *document.Cursor. Search primitives report
// failure with false or -1; they never return errors. Primitives that make
// more than one mutation wrap them in a single edit transaction.
package editkit
