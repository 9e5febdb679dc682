package chess

// pieceValues holds the centipawn-style material weights from spec.md
// §4.6.
var pieceValues = map[PieceType]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
}

// centerSquares are the four central squares, used as a mobility/center
// control proxy in Evaluate.
var centerSquares = [4]Square{
	NewSquare(3, 3), NewSquare(4, 3), NewSquare(3, 4), NewSquare(4, 4),
}

// MaterialScore returns the white-minus-black material balance in
// centipawn units (spec.md §4.6). Kings are not counted.
func (pos *Position) MaterialScore() int {
	score := 0
	for pt, value := range pieceValues {
		score += pos.bb(GetPiece(pt, White)).PopCount() * value
		score -= pos.bb(GetPiece(pt, Black)).PopCount() * value
	}
	return score
}

// Evaluate returns the static score of pos from White's perspective:
// material plus small positional bonuses for mobility, center control,
// and king safety. It is symmetric: Evaluate() == -Mirror().Evaluate()
// for any position, since every term is computed identically for each
// color and then subtracted (spec.md §4.6, §8).
func (pos *Position) Evaluate() float64 {
	score := float64(pos.MaterialScore())

	whiteMoves := countTokens(pos.PossibleMoves(White))
	blackMoves := countTokens(pos.PossibleMoves(Black))
	score += 0.1 * float64(whiteMoves-blackMoves)

	for _, sq := range centerSquares {
		mask := bbForSquare(sq)
		if pos.whiteOccupied()&mask != 0 {
			score += 10
		}
		if pos.blackOccupied()&mask != 0 {
			score -= 10
		}
	}

	score += kingSafety(pos, White) - kingSafety(pos, Black)

	return score
}

// kingSafety counts the squares immediately around c's king that are
// occupied by one of c's own pieces, a cheap pawn-shield proxy.
func kingSafety(pos *Position, c Color) float64 {
	king := pos.bb(GetPiece(King, c))
	if king == 0 {
		return 0
	}
	shield := kingAttacks[king.Ctz()] & pos.occupiedBy(c)
	return 5 * float64(shield.PopCount())
}

func countTokens(moves string) int {
	return len(moves) / 5
}
