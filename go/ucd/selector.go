package ucd

import "golang.org/x/sync/errgroup"

// Candidate is a built table together with its encoded byte cost.
type Candidate struct {
	Table *TwoStageTable
	Bytes int
}

// EvaluateCandidates builds one table per candidate block size and
// reports each table's byte cost under the given cost function. The
// builds share no state and run concurrently; the result order matches
// BlockSizes.
func EvaluateCandidates(prop string, m RangeMap, def string, patch RangeMap, cost func(*TwoStageTable) int) ([]Candidate, error) {
	candidates := make([]Candidate, len(BlockSizes))
	var g errgroup.Group
	for i, blockSize := range BlockSizes {
		i, blockSize := i, blockSize
		g.Go(func() error {
			t, err := BuildTwoStage(prop, m, blockSize, def, patch)
			if err != nil {
				return err
			}
			candidates[i] = Candidate{Table: t, Bytes: cost(t)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Minimal returns the cheapest candidate's table. Ties go to the
// earlier candidate, i.e. the smaller block size.
func Minimal(candidates []Candidate) *TwoStageTable {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Bytes < best.Bytes {
			best = c
		}
	}
	return best.Table
}

// SelectMinimal returns the candidate table with the smallest encoded
// size at reprSize bytes per value.
func SelectMinimal(prop string, m RangeMap, reprSize int, def string, patch RangeMap) (*TwoStageTable, error) {
	candidates, err := EvaluateCandidates(prop, m, def, patch, func(t *TwoStageTable) int {
		return t.TableBytes(reprSize)
	})
	if err != nil {
		return nil, err
	}
	return Minimal(candidates), nil
}

// SelectMinimalPacked is SelectMinimal for boolean properties, costing
// stage-2 blocks at one bit per code point.
func SelectMinimalPacked(prop string, m RangeMap, def string, patch RangeMap) (*TwoStageTable, error) {
	candidates, err := EvaluateCandidates(prop, m, def, patch, (*TwoStageTable).TableBytesPacked)
	if err != nil {
		return nil, err
	}
	return Minimal(candidates), nil
}
