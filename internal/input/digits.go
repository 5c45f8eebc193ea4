// Package input reads digit grids from text.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidDigit reports a rune that is not a decimal digit.
var ErrInvalidDigit = errors.New("invalid digit")

// ReadDigits parses one row per non-blank line. Leading and trailing
// whitespace is trimmed; every remaining rune must be 0-9. Row lengths are
// not checked here.
func ReadDigits(r io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	var rows [][]int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		col := 0
		for _, ch := range line {
			col++
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w %q at line %d column %d", ErrInvalidDigit, ch, lineNo, col)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read digits: %w", err)
	}
	return rows, nil
}

// LoadDigits reads a digit grid from the file at path.
func LoadDigits(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadDigits(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
