package dimacs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkolor/chromab/dimacs"
)

const queen5x5 = `c queen5_5.col - 5x5 chessboard queens graph, chromatic number 5
p edge 25 160
e 1 2
e 1 3
e 1 4
e 1 5
e 2 3
e 2 4
e 2 5
e 3 4
e 3 5
e 4 5
`

func TestParseHeaderAndComments(t *testing.T) {
	g, stats, err := dimacs.Parse(strings.NewReader(queen5x5))
	require.NoError(t, err)
	require.Equal(t, 25, g.VertexCount())
	require.Equal(t, 25, stats.DeclaredVertices)
	require.Equal(t, 160, stats.DeclaredEdges)
	require.Equal(t, 10, stats.ParsedEdges)
	require.Equal(t, 1, stats.CommentLines)
}

func TestParseMissingHeader(t *testing.T) {
	_, _, err := dimacs.Parse(strings.NewReader("e 1 2\n"))
	require.ErrorIs(t, err, dimacs.ErrMissingHeader)
}

func TestParseMalformedHeader(t *testing.T) {
	_, _, err := dimacs.Parse(strings.NewReader("p edge notanumber 3\n"))
	require.ErrorIs(t, err, dimacs.ErrMalformedHeader)
}

func TestParseVertexOutOfRange(t *testing.T) {
	_, _, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 3\n"))
	require.ErrorIs(t, err, dimacs.ErrVertexOutOfRange)
}

func TestParseSelfLoop(t *testing.T) {
	_, _, err := dimacs.Parse(strings.NewReader("p edge 2 1\ne 1 1\n"))
	require.ErrorIs(t, err, dimacs.ErrSelfLoop)
}

func TestParseDuplicateEdgeCounted(t *testing.T) {
	_, stats, err := dimacs.Parse(strings.NewReader("p edge 2 2\ne 1 2\ne 2 1\n"))
	require.NoError(t, err)
	require.Equal(t, 1, stats.DuplicateEdges)
	require.Equal(t, 1, stats.ParsedEdges)
}
