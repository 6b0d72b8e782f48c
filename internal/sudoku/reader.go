package sudoku

import (
	"bufio"
	"io"
	"strings"
)

// ReadGrid reads a Sudoku instance from r, auto-detecting the encoding:
// input containing an underscore is parsed with GetGridFromText, and
// anything else is parsed with GridFromDigitString (the classic N=9
// plain-digit stdin format, matching the teacher's cmd/sudoku prompt).
func ReadGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	var b strings.Builder
	for scanner.Scan() {
		b.WriteString(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	text := b.String()
	if strings.Contains(text, "_") {
		return GetGridFromText(text)
	}
	return GridFromDigitString(text)
}
