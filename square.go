package chess

import "strconv"

// Square is a board index in 0..63. Bit i of a Bitboard corresponds to
// Square(i). File i%8 is 0-indexed left to right; rank 7-(i/8) is
// 0-indexed with rank 7 at the top of the initial array (Black's back
// rank) and rank 0 at the bottom (White's back rank). This mirrors the
// wire move encoding's x (file) and y (rank) digits directly.
type Square uint8

// NoSquare represents the absence of a square.
const NoSquare Square = 255

// NewSquare builds a Square from a 0-indexed file and rank.
func NewSquare(file, rank int) Square {
	return Square((7-rank)*8 + file)
}

// File returns the 0-indexed file (0 = leftmost).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the 0-indexed rank (0 = White's back rank).
func (sq Square) Rank() int {
	return 7 - int(sq)/8
}

// rankRow is the raw row index (0 = Black's back rank, matching the
// physical bit layout), as opposed to Rank which is White-relative. The
// mask tables in masks.go are indexed by rankRow.
func (sq Square) rankRow() int {
	return int(sq) / 8
}

// String renders the square as its two wire digits, "xy".
func (sq Square) String() string {
	if sq == NoSquare {
		return "--"
	}
	return strconv.Itoa(sq.File()) + strconv.Itoa(sq.Rank())
}

// Color identifies a side of the board.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Named squares for the corners and castling-relevant squares, using the
// indexing above (A1-style naming kept only as a mnemonic; file/rank are
// what matter).
const (
	A1 Square = 56
	E1 Square = 60
	H1 Square = 63
	A8 Square = 0
	E8 Square = 4
	H8 Square = 7
)
