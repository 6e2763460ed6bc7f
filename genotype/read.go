package genotype

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses a whitespace-separated text matrix, one cell per line, and
// builds a Problem from it. Blank lines are skipped.
// Complexity: O(cells × mutations).
func Read(r io.Reader, opts ...Option) (*Problem, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d column %d %q: %w", line, j+1, f, ErrSyntax)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return NewProblem(rows, opts...)
}

// ReadNames reads one mutation label per non-blank line.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			names = append(names, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadNames: %w", err)
	}
	return names, nil
}
