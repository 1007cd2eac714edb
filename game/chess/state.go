package chess

import (
	"fmt"
	"hash/fnv"

	rules "github.com/notnil/chess"

	"gambit/game"
)

// State wraps an immutable chess position. White is the Maximizer, Black the
// Minimizer. Position.Update returns a fresh position, so Play never mutates
// the receiver.
type State struct {
	pos *rules.Position
}

// NewState returns the standard starting position.
func NewState() State {
	return State{pos: rules.StartingPosition()}
}

// FromFEN builds a state from a FEN string.
func FromFEN(fen string) (State, error) {
	opt, err := rules.FEN(fen)
	if err != nil {
		return State{}, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return State{pos: rules.NewGame(opt).Position()}, nil
}

func (s State) Role() game.Role {
	if s.pos.Turn() == rules.White {
		return game.Maximizer
	}
	return game.Minimizer
}

func (s State) LegalMoves() []game.Move {
	valid := s.pos.ValidMoves()
	moves := make([]game.Move, len(valid))
	for i, m := range valid {
		moves[i] = Move{inner: m}
	}
	return moves
}

func (s State) Play(mv game.Move) game.State {
	m, ok := mv.(Move)
	if !ok {
		panic(fmt.Sprintf("chess: foreign move type %T", mv))
	}
	return State{pos: s.pos.Update(m.inner)}
}

func (s State) Outcome() game.Outcome {
	switch s.pos.Status() {
	case rules.Checkmate:
		// The side to move is mated.
		if s.pos.Turn() == rules.White {
			return game.MinimizerWin
		}
		return game.MaximizerWin
	case rules.Stalemate:
		return game.Draw
	default:
		return game.Ongoing
	}
}

func (s State) Hash() game.StateHash {
	h := fnv.New64a()
	h.Write([]byte(s.pos.String()))
	return game.StateHash(h.Sum64())
}

// FEN returns the position in Forsyth-Edwards notation.
func (s State) FEN() string {
	return s.pos.String()
}

// Draw renders the board as text, for console play.
func (s State) Draw() string {
	return s.pos.Board().Draw()
}

// ParseMove accepts a move in UCI ("e2e4") or algebraic ("e4", "Nf3")
// notation and returns it as a legal move for this position.
func (s State) ParseMove(text string) (game.Move, error) {
	if m, err := (rules.UCINotation{}).Decode(s.pos, text); err == nil {
		if s.isLegal(m) {
			return Move{inner: m}, nil
		}
	}
	if m, err := (rules.AlgebraicNotation{}).Decode(s.pos, text); err == nil {
		if s.isLegal(m) {
			return Move{inner: m}, nil
		}
	}
	return nil, fmt.Errorf("invalid move %q", text)
}

func (s State) isLegal(m *rules.Move) bool {
	for _, v := range s.pos.ValidMoves() {
		if v.S1() == m.S1() && v.S2() == m.S2() && v.Promo() == m.Promo() {
			return true
		}
	}
	return false
}

// Move wraps a single chess move.
type Move struct {
	inner *rules.Move
}

func (m Move) String() string {
	return m.inner.String()
}
