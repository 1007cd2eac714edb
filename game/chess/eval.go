package chess

import (
	rules "github.com/notnil/chess"

	"gambit/game"
)

// Material values in centipawns.
var pieceValues = map[rules.PieceType]game.Score{
	rules.Pawn:   100,
	rules.Knight: 320,
	rules.Bishop: 330,
	rules.Rook:   500,
	rules.Queen:  900,
	rules.King:   20000,
}

// Piece-square tables, written from White's point of view with rank 8 on the
// first row. Index with psqIndex.
var pawnTable = [64]game.Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]game.Score{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]game.Score{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]game.Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]game.Score{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleTable = [64]game.Score{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndTable = [64]game.Score{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

const (
	positionalWeight = 0.1
	mobilityWeight   = 2
)

// Evaluate scores a position from White's (the Maximizer's) perspective:
// material, piece placement, and mobility of the side to move. Terminal
// positions get their exact score so the heuristic never overrides a proven
// outcome. Satisfies game.Evaluate.
func Evaluate(gs game.State) game.Score {
	s := gs.(State)

	switch s.Outcome() {
	case game.MaximizerWin:
		return game.WinScore
	case game.MinimizerWin:
		return game.LossScore
	case game.Draw:
		return game.DrawScore
	}

	board := s.pos.Board()
	var material, positional game.Score
	for sq := rules.A1; sq <= rules.H8; sq++ {
		piece := board.Piece(sq)
		if piece == rules.NoPiece {
			continue
		}
		value := pieceValues[piece.Type()]
		placement := pieceSquareValue(piece, sq, isEndgame(board))
		if piece.Color() == rules.White {
			material += value
			positional += placement
		} else {
			material -= value
			positional -= placement
		}
	}

	// Mobility of the side to move, signed from White's perspective. The
	// rules oracle only generates moves for the player on turn.
	mobility := game.Score(len(s.pos.ValidMoves()))
	if s.pos.Turn() == rules.Black {
		mobility = -mobility
	}

	return material + positional*positionalWeight + mobility*mobilityWeight
}

// pieceSquareValue looks up the placement bonus for a piece. Black squares
// are mirrored vertically so both colors share one table.
func pieceSquareValue(piece rules.Piece, sq rules.Square, endgame bool) game.Score {
	idx := int(sq) ^ 56 // white: flip table rows to square order
	if piece.Color() == rules.Black {
		idx = int(sq)
	}
	switch piece.Type() {
	case rules.Pawn:
		return pawnTable[idx]
	case rules.Knight:
		return knightTable[idx]
	case rules.Bishop:
		return bishopTable[idx]
	case rules.Rook:
		return rookTable[idx]
	case rules.Queen:
		return queenTable[idx]
	case rules.King:
		if endgame {
			return kingEndTable[idx]
		}
		return kingMiddleTable[idx]
	}
	return 0
}

// isEndgame reports a queenless or nearly-bare position, which switches the
// king to its active endgame table.
func isEndgame(board *rules.Board) bool {
	queens, minors := 0, 0
	for sq := rules.A1; sq <= rules.H8; sq++ {
		switch board.Piece(sq).Type() {
		case rules.Queen:
			queens++
		case rules.Knight, rules.Bishop:
			minors++
		}
	}
	return queens == 0 || (queens == 2 && minors <= 2)
}
