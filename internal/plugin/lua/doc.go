// Package lua runs user scripts against the Markdown editing kernel.
//
// Scripts run in a gopher-lua state with only the base, table, string and
// math libraries. The io, os, debug and package libraries are never opened,
// and dofile, loadfile, load and loadstring are removed. Output from print
// goes to the writer the state was created with.
//
// The edit global exposes the kernel operations on one document and cursor:
//
//	edit.set_position(0)
//	if edit.find("(", true, true, 1) then
//	    edit.text_object("i(", 1)
//	    print(edit.selected_text())
//	end
//
// Positions are character offsets into the document, as in Go.
//
// Execution is bounded by a timeout set through the context gopher-lua
// checks between instructions.
package lua
