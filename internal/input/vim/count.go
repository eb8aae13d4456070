package vim

import "math"

// maxCount caps counts so that multiplying them cannot overflow.
const maxCount = math.MaxInt32

// parseCount reads a count prefix from runes and returns it with the number
// of runes consumed. '0' cannot start a count.
func parseCount(runes []rune) (count, consumed int) {
	if len(runes) == 0 || runes[0] < '1' || runes[0] > '9' {
		return 0, 0
	}
	for consumed < len(runes) && runes[consumed] >= '0' && runes[consumed] <= '9' {
		count = min(count*10+int(runes[consumed]-'0'), maxCount)
		consumed++
	}
	return count, consumed
}

// combineCounts multiplies the counts before and after an operator, as in
// "2d3fx". Zero means no count was given.
func combineCounts(c1, c2 int) int {
	c1, c2 = max(c1, 1), max(c2, 1)
	if c1 > maxCount/c2 {
		return maxCount
	}
	return c1 * c2
}
