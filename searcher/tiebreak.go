package searcher

import "lukechampine.com/frand"

// TieBreak selects among root moves sharing the best score.
type TieBreak int

const (
	// TieBreakFirst keeps the first best move in generation order. Repeated
	// searches of the same position return the same move.
	TieBreakFirst TieBreak = iota
	// TieBreakRandom picks uniformly among equal-best moves, for variety
	// against human opponents. Exact tie detection costs the root its
	// window narrowing; deeper nodes still prune normally.
	TieBreakRandom
)

func (t TieBreak) String() string {
	if t == TieBreakRandom {
		return "random"
	}
	return "first"
}

func (t TieBreak) pick(candidates []int) int {
	if t == TieBreakRandom && len(candidates) > 1 {
		return candidates[frand.Intn(len(candidates))]
	}
	return candidates[0]
}
