package ucd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallMap covers the worked example used throughout the tests:
// [0,2] -> "A", [5,5] -> "B", everything else defaults to "Z".
func smallMap() RangeMap {
	return RangeMap{
		{Range: CodepointRange{0x0, 0x2}, Value: "A"},
		{Range: Single(0x5), Value: "B"},
	}
}

func TestBuildTwoStage(t *testing.T) {
	tbl, err := BuildTwoStage("test", smallMap(), 4, "Z", nil)
	require.NoError(t, err)

	// The first four blocks are [A,A,A,Z], [Z,B,Z,Z], [Z,Z,Z,Z],
	// [Z,Z,Z,Z]; the rest of the domain repeats the all-default block.
	require.Equal(t, []int{0, 1, 2, 2}, tbl.Stage1[:4])
	require.Len(t, tbl.Stage2, 3)
	require.Equal(t, []string{"A", "A", "A", "Z"}, tbl.Stage2[0])
	require.Equal(t, []string{"Z", "B", "Z", "Z"}, tbl.Stage2[1])
	require.Equal(t, []string{"Z", "Z", "Z", "Z"}, tbl.Stage2[2])

	assert.Equal(t, "A", tbl.Lookup(0))
	assert.Equal(t, "B", tbl.Lookup(5))
	assert.Equal(t, "Z", tbl.Lookup(12))
	assert.Equal(t, "Z", tbl.Lookup(MaxCodepoint))
}

func TestLookupOutsideDomain(t *testing.T) {
	tbl, err := BuildTwoStage("test", smallMap(), 64, "Z", nil)
	require.NoError(t, err)
	assert.Equal(t, "Z", tbl.Lookup(-1))
	assert.Equal(t, "Z", tbl.Lookup(MaxCodepoint+1))
}

func TestPatchPrecedence(t *testing.T) {
	patch := RangeMap{{Range: Single(0x1), Value: "C"}}
	tbl, err := BuildTwoStage("test", smallMap(), 4, "Z", patch)
	require.NoError(t, err)

	// The patch wins over the primary mapping; everything else is
	// untouched.
	assert.Equal(t, "A", tbl.Lookup(0))
	assert.Equal(t, "C", tbl.Lookup(1))
	assert.Equal(t, "A", tbl.Lookup(2))
	assert.Equal(t, "B", tbl.Lookup(5))
	assert.Equal(t, "Z", tbl.Lookup(12))
}

func TestPatchFillsGaps(t *testing.T) {
	patch := RangeMap{{Range: CodepointRange{0x600, 0x6FF}, Value: "AL"}}
	tbl, err := BuildTwoStage("test", smallMap(), 64, "Z", patch)
	require.NoError(t, err)
	assert.Equal(t, "AL", tbl.Lookup(0x600))
	assert.Equal(t, "AL", tbl.Lookup(0x6FF))
	assert.Equal(t, "Z", tbl.Lookup(0x700))
}

func TestCoverageCompleteness(t *testing.T) {
	m := RangeMap{
		{Range: CodepointRange{0x0, 0x40}, Value: "A"},
		{Range: CodepointRange{0x80, 0x17F}, Value: "B"},
		{Range: Single(0x3FF), Value: "C"},
		{Range: CodepointRange{0x10000, 0x10FFF}, Value: "D"},
	}
	ref := func(cp rune) string {
		for _, rv := range m {
			if rv.Range.Contains(cp) {
				return rv.Value
			}
		}
		return "Z"
	}

	for _, blockSize := range BlockSizes {
		tbl, err := BuildTwoStage("test", m, blockSize, "Z", nil)
		require.NoError(t, err)

		for cp := rune(0); cp <= 0x1000; cp++ {
			require.Equal(t, ref(cp), tbl.Lookup(cp), "block size %d, cp %04X", blockSize, cp)
		}
		// Boundaries of every range, the code points next to them, and
		// the domain edges.
		for _, rv := range m {
			for _, cp := range []rune{rv.Range.First - 1, rv.Range.First, rv.Range.Last, rv.Range.Last + 1} {
				if cp < 0 || cp > MaxCodepoint {
					continue
				}
				require.Equal(t, ref(cp), tbl.Lookup(cp), "block size %d, cp %04X", blockSize, cp)
			}
		}
		require.Equal(t, ref(MaxCodepoint), tbl.Lookup(MaxCodepoint))
	}
}

func TestBlockSizeInvariance(t *testing.T) {
	m := smallMap()
	patch := RangeMap{{Range: Single(0x1), Value: "C"}}

	base, err := BuildTwoStage("test", m, BlockSizes[0], "Z", patch)
	require.NoError(t, err)
	probes := []rune{0, 1, 2, 3, 5, 12, 0x40, 0x1FF, 0xFFFF, 0x10000, MaxCodepoint}

	for _, blockSize := range BlockSizes[1:] {
		tbl, err := BuildTwoStage("test", m, blockSize, "Z", patch)
		require.NoError(t, err)
		for _, cp := range probes {
			require.Equal(t, base.Lookup(cp), tbl.Lookup(cp), "block size %d, cp %04X", blockSize, cp)
		}
	}
}

func TestDedup(t *testing.T) {
	m := RangeMap{
		{Range: CodepointRange{0x0, 0x3}, Value: "A"},
		{Range: CodepointRange{0x8, 0xB}, Value: "A"},
	}
	tbl, err := BuildTwoStage("test", m, 4, "Z", nil)
	require.NoError(t, err)

	// Blocks 0 and 2 have identical content and share a slot.
	require.Equal(t, tbl.Stage1[0], tbl.Stage1[2])
	require.Equal(t, tbl.Stage1[1], tbl.Stage1[3])
	require.NotEqual(t, tbl.Stage1[0], tbl.Stage1[1])
	require.LessOrEqual(t, len(tbl.Stage2), len(tbl.Stage1))
}

func TestBuildDeterminism(t *testing.T) {
	m := RangeMap{
		{Range: CodepointRange{0x20, 0x7E}, Value: "A"},
		{Range: CodepointRange{0x300, 0x36F}, Value: "Mn"},
		{Range: CodepointRange{0xE000, 0xF8FF}, Value: "Co"},
	}
	a, err := BuildTwoStage("test", m, 128, "Z", nil)
	require.NoError(t, err)
	b, err := BuildTwoStage("test", m, 128, "Z", nil)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBuildErrors(t *testing.T) {
	t.Run("overlap", func(t *testing.T) {
		m := RangeMap{
			{Range: CodepointRange{0x0, 0x10}, Value: "A"},
			{Range: CodepointRange{0x8, 0x20}, Value: "B"},
		}
		_, err := BuildTwoStage("test", m, 64, "Z", nil)
		var invalid *InvalidMappingError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, "test", invalid.Property)
		require.Equal(t, CodepointRange{0x8, 0x20}, invalid.Range)
	})

	t.Run("overflow", func(t *testing.T) {
		m := RangeMap{{Range: CodepointRange{0x10FF00, 0x110010}, Value: "A"}}
		_, err := BuildTwoStage("test", m, 64, "Z", nil)
		var overflow *DomainOverflowError
		require.ErrorAs(t, err, &overflow)
		require.Equal(t, "test", overflow.Property)
	})

	t.Run("bad patch", func(t *testing.T) {
		patch := RangeMap{
			{Range: CodepointRange{0x10, 0x0}, Value: "A"},
		}
		_, err := BuildTwoStage("test", smallMap(), 64, "Z", patch)
		require.Error(t, err)
		require.True(t, errors.As(err, new(*InvalidMappingError)))
	})
}

func TestIndexWidth(t *testing.T) {
	var cases = []struct {
		slots int
		want  int
	}{
		{1, 1},
		{2, 1},
		{256, 1},
		{257, 2},
		{65536, 2},
		{65537, 3},
	}
	for _, tc := range cases {
		tbl := &TwoStageTable{Stage2: make([][]string, tc.slots)}
		require.Equal(t, tc.want, tbl.IndexWidth(), "slots %d", tc.slots)
	}
}

func TestTableBytes(t *testing.T) {
	tbl, err := BuildTwoStage("test", smallMap(), 256, "Z", nil)
	require.NoError(t, err)
	require.Equal(t, len(tbl.Stage1)*1+len(tbl.Stage2)*256*1, tbl.TableBytes(1))
	require.Equal(t, len(tbl.Stage1)*1+len(tbl.Stage2)*256*2, tbl.TableBytes(2))
	require.Equal(t, len(tbl.Stage1)*1+len(tbl.Stage2)*32, tbl.TableBytesPacked())
}

func TestPackedStage2(t *testing.T) {
	m := RangeMap{
		{Range: Single(0x3), Value: "true"},
		{Range: Single(0x9), Value: "true"},
	}

	t.Run("block size 4", func(t *testing.T) {
		tbl, err := BuildTwoStage("test", m, 4, "false", nil)
		require.NoError(t, err)
		packed := tbl.PackedStage2()

		// Three distinct blocks: bit 3 set, bit 1 set, empty.
		require.Len(t, packed, 3)
		require.Equal(t, []byte{0x08}, packed[0])
		require.Equal(t, []byte{0x02}, packed[1])
		require.Equal(t, []byte{0x00}, packed[2])
		assert.Equal(t, "true", tbl.Lookup(3))
		assert.Equal(t, "false", tbl.Lookup(4))
		assert.Equal(t, "true", tbl.Lookup(9))
	})

	t.Run("block size 64", func(t *testing.T) {
		tbl, err := BuildTwoStage("test", m, 64, "false", nil)
		require.NoError(t, err)
		packed := tbl.PackedStage2()
		require.Len(t, packed[0], 8)
		require.Equal(t, byte(0x08), packed[0][0]) // bit 3
		require.Equal(t, byte(0x02), packed[0][1]) // bit 9
	})
}
