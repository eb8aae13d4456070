package editkit

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog/log"
)

// ObjectReplacementCharacter is the placeholder rich-text renderers insert
// for embedded non-text objects.
const ObjectReplacementCharacter = '\uFFFC'

var (
	leadingSpaceRe = regexp2.MustCompile(`^(\s*)`, regexp2.None)

	// listMarkRe matches "- " and "12. " list items after optional indentation.
	listMarkRe = regexp2.MustCompile(`^\s*(-|\d+\.)\s`, regexp2.None)

	// objectBlockRe matches a line holding only an object replacement
	// character. Inside the class, '|' and '^' are literals.
	objectBlockRe = regexp2.MustCompile(`[\n|^][ \t]*\uFFFC[ \t]*(?=\n)`, regexp2.None)
)

// leadingSpaces returns the leading whitespace of text.
func leadingSpaces(text string) string {
	m, err := leadingSpaceRe.FindStringMatch(text)
	if err != nil || m == nil {
		return ""
	}
	return m.GroupByNumber(1).String()
}

// listMark returns the marker token ("-" or "n.") of a list item.
func listMark(text string) (string, bool) {
	m, err := listMarkRe.FindStringMatch(text)
	if err != nil || m == nil {
		return "", false
	}
	return m.GroupByNumber(1).String(), true
}

// isEmptyListItem reports whether text is a list marker with no content.
func isEmptyListItem(text string) bool {
	m, err := listMarkRe.FindStringMatch(text)
	if err != nil || m == nil {
		return false
	}
	return strings.TrimSpace(string([]rune(text)[m.Index+m.Length:])) == ""
}

// parseOrdinal parses the number of an "n." marker.
func parseOrdinal(mark string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(mark, "."))
	if err != nil {
		log.Debug().Err(err).Str("mark", mark).Msg("unparsable list ordinal")
		return 0, false
	}
	return n, true
}

// RemoveObjectReplacementCharacter strips lines made only of an object
// replacement character (plus blanks), then every remaining occurrence of it.
func RemoveObjectReplacementCharacter(text string) string {
	out, err := objectBlockRe.Replace(text, "", -1, -1)
	if err != nil {
		log.Debug().Err(err).Msg("object replacement block pattern failed")
		out = text
	}
	return strings.ReplaceAll(out, string(ObjectReplacementCharacter), "")
}
