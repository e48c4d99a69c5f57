// Package input reads tree definitions: one tree per line, each line a list
// of whitespace-separated integers inserted in order.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrBadValue = errors.New("invalid tree value")

// ReadTrees parses r and returns the values of each non-blank line.
func ReadTrees(r io.Reader) ([][]int, error) {
	var trees [][]int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		values, err := convertToIntSlice(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		trees = append(trees, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return trees, nil
}

// ReadFile opens path and parses it with ReadTrees. A path of "-" reads stdin.
func ReadFile(path string) ([][]int, error) {
	if path == "-" {
		return ReadTrees(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()
	return ReadTrees(f)
}

func convertToIntSlice(values []string) ([]int, error) {
	intSlice := make([]int, len(values))
	for i, v := range values {
		num, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrBadValue, v)
		}
		intSlice[i] = num
	}
	return intSlice, nil
}
