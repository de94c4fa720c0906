// Package matching scores a submitted trivia answer against the canonical
// answer on a 0-100 scale. Pure functions, no I/O.
package matching

import (
	"strings"
	"unicode"
)

// AcceptThreshold is the minimum score classified as a correct answer.
const AcceptThreshold = 80

var leadingArticles = []string{"the ", "a ", "an "}

// Normalize lowercases, trims, drops punctuation, collapses internal
// whitespace, and strips a leading English article.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	out := strings.TrimSpace(b.String())
	for _, art := range leadingArticles {
		if strings.HasPrefix(out, art) {
			out = strings.TrimSpace(strings.TrimPrefix(out, art))
			break
		}
	}
	return out
}

// Score computes the indel similarity ratio of the normalized forms:
// 2*LCS / (len(a)+len(b)) scaled to 0-100, which is the classic
// edit-distance ratio with substitution weight 2. Identical strings score
// 100, fully disjoint strings score 0.
func Score(guess, want string) int {
	a := []rune(Normalize(guess))
	b := []rune(Normalize(want))
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := lcsLength(a, b)
	// round(200*matched/total), half up
	return (400*matched + total) / (2 * total)
}

// Match reports whether guess is close enough to want, along with the score.
func Match(guess, want string) (bool, int) {
	score := Score(guess, want)
	return score >= AcceptThreshold, score
}

func lcsLength(a, b []rune) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
