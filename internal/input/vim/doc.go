// Package vim parses and runs the vim normal-mode commands the Markdown
// editor supports on top of the editkit primitives.
//
// The grammar is a subset of vim's:
//
//	[count][operator][count](f|F|t|T)<char>
//	[count][operator][count](i|a)<delimiter>
//	[count][operator][count]^
//	[count]<operator><operator>            (line-wise: dd, yy, cc, >>, <<)
//	i | R | v | V | <Esc>                  (mode switches)
//
// Examples:
//   - "3fx": move to the third x to the right
//   - "d2t,": delete up to the second comma
//   - "ci(": change the text inside the enclosing parentheses
//   - "2ya\"": yank the second enclosing quoted string, quotes included
//   - ">>": indent the current block
package vim
