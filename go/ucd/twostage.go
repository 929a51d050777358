package ucd

import (
	"strings"

	"golang.org/x/exp/slices"
)

// BlockSizes is the candidate set of block sizes tried when searching
// for the smallest table. The candidates bracket the size/dedup-ratio
// trade-off for real Unicode properties.
var BlockSizes = []int{64, 128, 256, 512}

// TwoStageTable maps every code point in [0, U+10FFFF] to a property
// value through a two-level index. Stage 1 holds one entry per block of
// BlockSize code points, naming the deduplicated stage-2 block that
// stores the per-code-point values.
//
// A table is built once from immutable inputs and never mutated
// afterwards; it is only measured and serialized.
type TwoStageTable struct {
	Property  string
	BlockSize int
	Default   string

	// Stage1 has one entry per block, in domain order.
	Stage1 []int
	// Stage2 holds the distinct block contents, in first-seen order.
	Stage2 [][]string
}

// BuildTwoStage constructs the two-stage table for a property. The
// mapping must be sorted and non-overlapping; violations are detected
// opportunistically while scanning and abort the build. Patch
// assignments fill in values the primary source omits and win on the
// rare overlap.
func BuildTwoStage(prop string, m RangeMap, blockSize int, def string, patch RangeMap) (*TwoStageTable, error) {
	values := make([]string, NumCodepoints)
	for i := range values {
		values[i] = def
	}
	if err := fill(prop, values, m); err != nil {
		return nil, err
	}
	if err := fill(prop, values, patch); err != nil {
		return nil, err
	}

	nblocks := (NumCodepoints + blockSize - 1) / blockSize
	t := &TwoStageTable{
		Property:  prop,
		BlockSize: blockSize,
		Default:   def,
		Stage1:    make([]int, 0, nblocks),
	}
	seen := make(map[string]int)
	for b := 0; b < nblocks; b++ {
		block := blockContent(values, b, blockSize, def)
		key := strings.Join(block, "\x00")
		slot, ok := seen[key]
		if !ok {
			slot = len(t.Stage2)
			seen[key] = slot
			t.Stage2 = append(t.Stage2, slices.Clone(block))
		}
		t.Stage1 = append(t.Stage1, slot)
	}
	return t, nil
}

// blockContent returns the value run for block b. The last block is
// padded with the default value when the domain size is not a multiple
// of the block size.
func blockContent(values []string, b, blockSize int, def string) []string {
	lo := b * blockSize
	if hi := lo + blockSize; hi <= len(values) {
		return values[lo:hi]
	}
	block := make([]string, blockSize)
	n := copy(block, values[lo:])
	for i := n; i < blockSize; i++ {
		block[i] = def
	}
	return block
}

func fill(prop string, values []string, m RangeMap) error {
	var prev CodepointRange
	for i, rv := range m {
		r := rv.Range
		if r.First < 0 || r.Last > MaxCodepoint {
			return &DomainOverflowError{Property: prop, Range: r}
		}
		if r.Last < r.First || (i > 0 && r.First <= prev.Last) {
			return &InvalidMappingError{Property: prop, Range: r, Prev: prev}
		}
		for cp := r.First; cp <= r.Last; cp++ {
			values[cp] = rv.Value
		}
		prev = r
	}
	return nil
}

// Lookup returns the value assigned to cp, or the default when cp lies
// outside the code point domain.
func (t *TwoStageTable) Lookup(cp rune) string {
	if cp < 0 || cp > MaxCodepoint {
		return t.Default
	}
	return t.Stage2[t.Stage1[int(cp)/t.BlockSize]][int(cp)%t.BlockSize]
}

// IndexWidth is the smallest byte width able to address every stage-2
// slot. It grows past one byte as the dedup ratio worsens.
func (t *TwoStageTable) IndexWidth() int {
	w := 1
	for n := len(t.Stage2); n > 1<<(8*w); {
		w++
	}
	return w
}

// TableBytes is the encoded size of the table with reprSize bytes per
// value. This is the minimization criterion used by SelectMinimal.
func (t *TwoStageTable) TableBytes(reprSize int) int {
	return len(t.Stage1)*t.IndexWidth() + len(t.Stage2)*t.BlockSize*reprSize
}

// TableBytesPacked is the encoded size with stage-2 blocks packed one
// bit per code point, the footprint of the boolean table shape.
func (t *TwoStageTable) TableBytesPacked() int {
	return len(t.Stage1)*t.IndexWidth() + len(t.Stage2)*packedBlockLen(t.BlockSize)
}

// PackedStage2 returns the stage-2 blocks packed one bit per code
// point, LSB first within each byte. A bit is set when the value
// differs from the default, which for boolean properties means the
// property holds.
func (t *TwoStageTable) PackedStage2() [][]byte {
	packed := make([][]byte, len(t.Stage2))
	for i, block := range t.Stage2 {
		bits := make([]byte, packedBlockLen(t.BlockSize))
		for j, v := range block {
			if v != t.Default {
				bits[j/8] |= 1 << (j % 8)
			}
		}
		packed[i] = bits
	}
	return packed
}

func packedBlockLen(blockSize int) int {
	return (blockSize + 7) / 8
}
