package game

// Role identifies which side of the minimax tree a player drives.
type Role int

const (
	Maximizer Role = iota
	Minimizer
)

func (r Role) Opponent() Role {
	if r == Maximizer {
		return Minimizer
	}
	return Maximizer
}

func (r Role) String() string {
	if r == Maximizer {
		return "maximizer"
	}
	return "minimizer"
}

// Outcome is the terminal classification of a state.
type Outcome int

const (
	Ongoing Outcome = iota
	MaximizerWin
	MinimizerWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case MaximizerWin:
		return "maximizer win"
	case MinimizerWin:
		return "minimizer win"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

type StateHash uint64

// Move is an atomic transition between two states. The search treats it as
// opaque; String is for logging and notation only.
type Move interface {
	String() string
}

// State should be immutable - Play always returns a new copy, never a shared
// mutation, so sibling branches of the search can hold states concurrently.
type State interface {
	// Role returns the side to move.
	Role() Role
	// LegalMoves returns every move legal for the side to move. Generation
	// order carries no guarantee; the search may reorder for pruning.
	LegalMoves() []Move
	// Play applies a legal move and returns the resulting state. Applying an
	// illegal move is a programming error and may panic.
	Play(Move) State
	// Outcome classifies the state. Anything other than Ongoing is terminal
	// and must be scored exactly, never by the heuristic.
	Outcome() Outcome
	Hash() StateHash
}

// MoveOrderer is an optional interface a State may implement to hand the
// search moves sorted most-promising-first. Ordering is a pure heuristic: it
// changes how much gets pruned, never the result.
type MoveOrderer interface {
	OrderedMoves() []Move
}

// Evaluate scores a non-terminal state from the Maximizer's perspective,
// regardless of the side to move. It must be deterministic and side-effect
// free: the search may re-evaluate the same state any number of times.
// Returned values must stay strictly inside (LossThreshold, WinThreshold).
type Evaluate func(State) Score
