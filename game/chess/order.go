package chess

import (
	"sort"

	rules "github.com/notnil/chess"

	"gambit/game"
)

// Relative piece worth for capture ordering (MVV-LVA).
var orderValues = map[rules.PieceType]int{
	rules.Pawn:   1,
	rules.Knight: 3,
	rules.Bishop: 3,
	rules.Rook:   5,
	rules.Queen:  9,
	rules.King:   100,
}

const (
	checkPriority   = 900
	promoPriority   = 800
	centralPriority = 50
)

// OrderedMoves returns legal moves sorted most-promising-first: winning
// captures, checks, promotions, then central moves. Better ordering means
// earlier cutoffs; it never changes the search result.
func (s State) OrderedMoves() []game.Move {
	valid := s.pos.ValidMoves()
	priorities := make([]int, len(valid))
	for i, m := range valid {
		priorities[i] = s.movePriority(m)
	}

	order := make([]int, len(valid))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return priorities[order[a]] > priorities[order[b]]
	})

	moves := make([]game.Move, len(valid))
	for i, idx := range order {
		moves[i] = Move{inner: valid[idx]}
	}
	return moves
}

func (s State) movePriority(m *rules.Move) int {
	priority := 0
	board := s.pos.Board()

	if m.HasTag(rules.Capture) || m.HasTag(rules.EnPassant) {
		victim := rules.Pawn // en passant victim is off the target square
		if piece := board.Piece(m.S2()); piece != rules.NoPiece {
			victim = piece.Type()
		}
		attacker := board.Piece(m.S1()).Type()
		priority += 10*orderValues[victim] - orderValues[attacker]
	}

	if m.HasTag(rules.Check) {
		priority += checkPriority
	}

	if m.Promo() != rules.NoPieceType {
		priority += promoPriority
	}

	if central(m.S2()) {
		priority += centralPriority
	}

	return priority
}

func central(sq rules.Square) bool {
	file, rank := int(sq.File()), int(sq.Rank())
	return file >= 2 && file <= 5 && rank >= 2 && rank <= 5
}
