package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vkolor/chromab/core"
)

// Sentinel errors. Line-specific detail (the offending line number and raw
// text) is attached via fmt.Errorf's %w verb, so callers that only care
// about the failure class can still errors.Is against these.
var (
	// ErrMissingHeader indicates the input had no "p edge n m" line before
	// its first "e" line, or had no content at all.
	ErrMissingHeader = errors.New("dimacs: missing \"p edge n m\" header")

	// ErrMalformedHeader indicates a "p" line that is not "p edge n m"
	// with two valid non-negative integers.
	ErrMalformedHeader = errors.New("dimacs: malformed header line")

	// ErrMalformedEdge indicates an "e" line that is not "e u v" with two
	// valid integers.
	ErrMalformedEdge = errors.New("dimacs: malformed edge line")

	// ErrVertexOutOfRange indicates an edge line referenced a 1-based
	// vertex index outside [1, n] from the header.
	ErrVertexOutOfRange = errors.New("dimacs: vertex index out of range")

	// ErrSelfLoop indicates an edge line with identical endpoints.
	ErrSelfLoop = errors.New("dimacs: self-loop edge")
)

// Stats summarizes what Parse consumed, independent of the resulting
// core.Graph (which collapses duplicate edges silently).
type Stats struct {
	DeclaredVertices int
	DeclaredEdges    int
	ParsedEdges      int
	DuplicateEdges   int
	CommentLines     int
}

// Parse reads a DIMACS graph-coloring instance from r and returns the
// corresponding core.Graph plus parse statistics. Vertices are named "1"
// through "n" (the DIMACS 1-based convention, preserved verbatim as string
// IDs rather than renumbered to 0-based, so error messages and round-trip
// tooling can refer to the original vertex numbers).
//
// Complexity: O(n + m).
func Parse(r io.Reader) (*core.Graph, Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	g := core.NewGraph()
	var stats Stats
	headerSeen := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			stats.CommentLines++
			continue

		case 'p':
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "edge" {
				return nil, stats, fmt.Errorf("%w: line %d: %q", ErrMalformedHeader, lineNo, line)
			}
			n, errN := strconv.Atoi(fields[2])
			m, errM := strconv.Atoi(fields[3])
			if errN != nil || errM != nil || n < 0 || m < 0 {
				return nil, stats, fmt.Errorf("%w: line %d: %q", ErrMalformedHeader, lineNo, line)
			}
			stats.DeclaredVertices = n
			stats.DeclaredEdges = m
			for i := 1; i <= n; i++ {
				if err := g.AddVertex(strconv.Itoa(i)); err != nil {
					return nil, stats, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
				}
			}
			headerSeen = true

		case 'e':
			if !headerSeen {
				return nil, stats, fmt.Errorf("%w: line %d", ErrMissingHeader, lineNo)
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, stats, fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, lineNo, line)
			}
			u, errU := strconv.Atoi(fields[1])
			v, errV := strconv.Atoi(fields[2])
			if errU != nil || errV != nil {
				return nil, stats, fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, lineNo, line)
			}
			if u < 1 || u > stats.DeclaredVertices || v < 1 || v > stats.DeclaredVertices {
				return nil, stats, fmt.Errorf("%w: line %d: %q", ErrVertexOutOfRange, lineNo, line)
			}
			if u == v {
				return nil, stats, fmt.Errorf("%w: line %d: %q", ErrSelfLoop, lineNo, line)
			}

			err := g.AddEdge(strconv.Itoa(u), strconv.Itoa(v))
			switch {
			case err == nil:
				stats.ParsedEdges++
			case errors.Is(err, core.ErrDuplicateEdge):
				stats.DuplicateEdges++
			default:
				return nil, stats, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}

		default:
			// Unknown directive lines (e.g. DIMACS "n" vertex-weight lines)
			// are ignored rather than rejected: this parser only targets
			// the unweighted coloring subset of the format.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("dimacs: reading input: %w", err)
	}
	if !headerSeen {
		return nil, stats, ErrMissingHeader
	}

	return g, stats, nil
}
