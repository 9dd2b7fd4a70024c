// Package docnum renders allocated sequence values into display numbers.
package docnum

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// seqTokenPattern matches a zero-run sequence token like {0000}. The padding
// width is the number of zeros between the braces.
var seqTokenPattern = regexp.MustCompile(`\{0+\}`)

// Render substitutes the date tokens {yyyy}, {yy}, {mm}, {dd} and the single
// widest zero-padded sequence token in template. It is pure and never fails:
// a template without a recognizable sequence token is returned with whatever
// substitutions were possible, tokens left in place.
func Render(template string, seq int64, at time.Time) string {
	out := template
	out = strings.ReplaceAll(out, "{yyyy}", at.Format("2006"))
	out = strings.ReplaceAll(out, "{yy}", at.Format("06"))
	out = strings.ReplaceAll(out, "{mm}", at.Format("01"))
	out = strings.ReplaceAll(out, "{dd}", at.Format("02"))

	token := widestSeqToken(out)
	if token == "" {
		return out
	}
	width := len(token) - 2 // zeros between the braces
	padded := fmt.Sprintf("%0*d", width, seq)
	return strings.Replace(out, token, padded, 1)
}

// widestSeqToken returns the widest zero-run token present, so a {0000} is
// never shadowed by matching a shorter candidate inside it.
func widestSeqToken(s string) string {
	widest := ""
	for _, m := range seqTokenPattern.FindAllString(s, -1) {
		if len(m) > len(widest) {
			widest = m
		}
	}
	return widest
}
