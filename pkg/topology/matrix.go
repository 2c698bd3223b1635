package topology

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/freestylewhl/pynoddy/pkg/source"
)

// ReadMatrix reads the exported adjacency-matrix grid of the model at
// basename: one tab-separated row of integers per line. The grid is returned
// as-is for matrix-view collaborators; this package does no rendering.
func ReadMatrix(ctx context.Context, src source.Source, basename string) ([][]int, error) {
	name := basename + matrixSuffix
	f, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	var rows [][]int
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		row := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, parseErrf(name, lineNo, "matrix cell %q: %w", field, ErrFormat)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return rows, nil
}
