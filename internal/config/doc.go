// Package config loads keymark settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. Built-in defaults
//  2. Configuration file (TOML or YAML, chosen by extension)
//  3. Environment variables with the KEYMARK_ prefix
//
// A file looks like:
//
//	[editor]
//	indent_width = 2
//	use_tabs = false
//
//	[viewport]
//	wrap = true
//
// Environment variables name a section and a setting:
// KEYMARK_EDITOR_INDENT_WIDTH=2 sets editor.indent_width.
package config
