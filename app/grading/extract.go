package grading

import (
	"regexp"
	"strconv"
)

// ExtractScore pulls the awarded score out of the model's free-text
// feedback. It matches the first "<n>/<fullScore>" occurrence, with
// optional whitespace around the slash; the denominator must be the
// exact fullScore, not any fraction. When no match is found the score
// degrades to 80% of fullScore (floored) so a response in an unexpected
// format never fails the grading call.
//
// The matched value is returned as-is, without clamping to fullScore.
func ExtractScore(text string, fullScore int) int {
	re := regexp.MustCompile(`(\d+)\s*/\s*` + strconv.Itoa(fullScore))

	match := re.FindStringSubmatch(text)
	if match == nil {
		return fullScore * 80 / 100
	}

	score, err := strconv.Atoi(match[1])
	if err != nil {
		// Only possible when the digits overflow int.
		return fullScore * 80 / 100
	}
	return score
}
