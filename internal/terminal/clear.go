// Package terminal provides prompts and helpers for tidying up after them.
package terminal

import (
	"math"
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// ClearPreviousLines clears text from the terminal that was previously printed.
// textLength is the number of characters used by the prompt and the answer;
// the line count follows from the current terminal width (80 when unknown),
// plus the empty line left behind by Enter.
func ClearPreviousLines(textLength int) {
	cursor.ClearLinesUp(linesUsed(textLength, width()))
	cursor.StartOfLine()
}

func width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func linesUsed(textLength, termWidth int) int {
	n := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if n < 1 {
		n = 1
	}
	return n
}
