package searcher

import (
	"math/rand"

	"gambit/game"
)

// Toy game for search tests: states are explicit tree nodes, so expected
// values can be read straight off the fixtures.

type toyMove string

func (m toyMove) String() string { return string(m) }

type toyState struct {
	role    game.Role
	value   game.Score // heuristic when the depth budget runs out
	outcome game.Outcome
	moves   []game.Move
	next    map[string]*toyState
}

func (s *toyState) Role() game.Role { return s.role }

func (s *toyState) LegalMoves() []game.Move {
	return append([]game.Move(nil), s.moves...)
}

func (s *toyState) Play(m game.Move) game.State {
	child, ok := s.next[m.String()]
	if !ok {
		panic("illegal toy move " + m.String())
	}
	return child
}

func (s *toyState) Outcome() game.Outcome { return s.outcome }

func (s *toyState) Hash() game.StateHash { return 0 }

func toyEvaluate(s game.State) game.Score {
	return s.(*toyState).value
}

type child struct {
	move  string
	state *toyState
}

func branch(role game.Role, value game.Score, children ...child) *toyState {
	s := &toyState{role: role, value: value, next: map[string]*toyState{}}
	for _, c := range children {
		s.moves = append(s.moves, toyMove(c.move))
		s.next[c.move] = c.state
	}
	return s
}

func leaf(value game.Score) *toyState {
	return &toyState{value: value}
}

func terminal(outcome game.Outcome) *toyState {
	return &toyState{outcome: outcome}
}

// randomTree builds a complete alternating-turn tree of the given depth with
// integer heuristic values, for brute-force comparisons.
func randomTree(rng *rand.Rand, role game.Role, depth, branching int) *toyState {
	value := game.Score(rng.Intn(101) - 50)
	if depth == 0 {
		return leaf(value)
	}
	// Sprinkle in occasional terminals so mate scoring gets exercised.
	if rng.Intn(20) == 0 {
		outcomes := []game.Outcome{game.MaximizerWin, game.MinimizerWin, game.Draw}
		return terminal(outcomes[rng.Intn(len(outcomes))])
	}

	children := make([]child, branching)
	for i := range children {
		children[i] = child{
			move:  string(rune('a' + i)),
			state: randomTree(rng, role.Opponent(), depth-1, branching),
		}
	}
	return branch(role, value, children...)
}
