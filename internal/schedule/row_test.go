package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRowsClustersJitteryLine(t *testing.T) {
	// Three fragments of one visual line with sub-line vertical jitter.
	tokens := []Token{
		mkTok("DD1050", 10, 100),
		mkTok("Pile", 60, 100.8),
		mkTok("diagram", 100, 99.4),
	}

	rows := BuildRows(tokens, 2.0)

	require.Len(t, rows, 1)
	assert.Equal(t, "DD1050 Pile diagram", rows[0].Text())
}

func TestBuildRowsKeepsDistinctLinesApart(t *testing.T) {
	tokens := []Token{
		mkTok("DD1050", 10, 100),
		mkTok("first", 60, 100),
		mkTok("DD1060", 10, 88),
		mkTok("second", 60, 88),
	}

	rows := BuildRows(tokens, 2.0)

	require.Len(t, rows, 2)
	// Top of the page comes first.
	assert.Equal(t, "DD1050 first", rows[0].Text())
	assert.Equal(t, "DD1060 second", rows[1].Text())
	assert.Greater(t, rows[0].YMid, rows[1].YMid)
}

func TestBuildRowsOrdersTokensByX(t *testing.T) {
	tokens := []Token{
		mkTok("works", 120, 100),
		mkTok("S01", 10, 100),
		mkTok("Piling", 50, 100),
	}

	rows := BuildRows(tokens, 2.0)

	require.Len(t, rows, 1)
	assert.Equal(t, "S01 Piling works", rows[0].Text())
	assert.Equal(t, 10.0, rows[0].XMin)
}

func TestBuildRowsYMidIsUnionMidpoint(t *testing.T) {
	// Mixed font heights on one line: a tall token and a short one. The row
	// center must come from the union of extents, not the mean of centers.
	tall := Token{Text: "S01", BBox: BBox{X0: 10, Y0: 95, X1: 30, Y1: 115}}
	short := Token{Text: "Piling", BBox: BBox{X0: 40, Y0: 100, X1: 70, Y1: 106}}

	rows := BuildRows([]Token{tall, short}, 5.0)

	require.Len(t, rows, 1)
	assert.InDelta(t, 105.0, rows[0].YMid, 1e-9)
}

func TestBuildRowsEmptyInput(t *testing.T) {
	assert.Nil(t, BuildRows(nil, 2.0))
}

func TestBuildRowsDeterministic(t *testing.T) {
	tokens := []Token{
		mkTok("b", 50, 100),
		mkTok("a", 10, 100),
		mkTok("d", 50, 80),
		mkTok("c", 10, 80),
	}

	first := BuildRows(tokens, 2.0)
	second := BuildRows(tokens, 2.0)

	assert.Equal(t, first, second)
}
