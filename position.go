package chess

import (
	"fmt"
	"math/rand"
)

// CastleRights holds the four independent castling rights. Unlike the
// teacher's FEN-string CastleRights, these are plain booleans per
// spec.md §3 — there is no notation to round-trip through here, so a
// string encoding would just be overhead.
type CastleRights struct {
	WhiteShort bool
	WhiteLong  bool
	BlackShort bool
	BlackLong  bool
}

// GameType selects the back-rank setup used at construction.
type GameType int

const (
	Orthodox GameType = iota
	Chess960
)

// Position is the full, mutable state of a chess board: twelve piece
// bitboards, the en-passant target, castling rights, and the rook
// identities needed to make castling well-defined under Chess960. All
// mutators (Make, Unmake, Minimax) assume exclusive access — see
// spec.md §5.
type Position struct {
	pieces [22]Bitboard // indexed by Piece; 6..15 unused padding

	EnPassant Bitboard
	Rights    CastleRights

	WhiteLeftRook  Bitboard
	WhiteRightRook Bitboard
	BlackLeftRook  Bitboard
	BlackRightRook Bitboard

	history []historyEntry
}

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition builds a starting position. For Orthodox games the back
// rank is the standard RNBQKBNR order; for Chess960 it is shuffled
// uniformly at random (identically for both colors) using rngSeed, with
// no bishop-color or king-between-rooks constraint enforced — the same
// simplification the reference implementation makes (see spec.md
// GLOSSARY, "Chess960 / Fischer Random").
func NewPosition(gt GameType, rngSeed int64) *Position {
	order := backRankOrder
	if gt == Chess960 {
		rng := rand.New(rand.NewSource(rngSeed))
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	pos := &Position{}
	for file, pt := range order {
		pos.setBB(GetPiece(pt, Black), pos.bb(GetPiece(pt, Black))|bbForSquare(NewSquare(file, 7)))
		pos.setBB(GetPiece(pt, White), pos.bb(GetPiece(pt, White))|bbForSquare(NewSquare(file, 0)))
	}
	for file := 0; file < 8; file++ {
		pos.setBB(BlackPawn, pos.bb(BlackPawn)|bbForSquare(NewSquare(file, 6)))
		pos.setBB(WhitePawn, pos.bb(WhitePawn)|bbForSquare(NewSquare(file, 1)))
	}

	wRooks := pos.bb(WhiteRook)
	bRooks := pos.bb(BlackRook)
	pos.WhiteLeftRook = wRooks.LowestBit()
	pos.WhiteRightRook = wRooks ^ pos.WhiteLeftRook
	pos.BlackLeftRook = bRooks.LowestBit()
	pos.BlackRightRook = bRooks ^ pos.BlackLeftRook

	pos.Rights = CastleRights{WhiteShort: true, WhiteLong: true, BlackShort: true, BlackLong: true}
	return pos
}

func (pos *Position) bb(p Piece) Bitboard {
	return pos.pieces[p]
}

func (pos *Position) setBB(p Piece, bb Bitboard) {
	pos.pieces[p] = bb
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (pos *Position) PieceAt(sq Square) Piece {
	mask := bbForSquare(sq)
	for _, p := range allPieces {
		if pos.pieces[p]&mask != 0 {
			return p
		}
	}
	return NoPiece
}

func (pos *Position) whiteOccupied() Bitboard {
	var bb Bitboard
	for p := WhiteKing; p <= WhitePawn; p++ {
		bb |= pos.pieces[p]
	}
	return bb
}

func (pos *Position) blackOccupied() Bitboard {
	var bb Bitboard
	for p := BlackKing; p <= BlackPawn; p++ {
		bb |= pos.pieces[p]
	}
	return bb
}

func (pos *Position) occupied() Bitboard {
	return pos.whiteOccupied() | pos.blackOccupied()
}

func (pos *Position) occupiedBy(c Color) Bitboard {
	if c == White {
		return pos.whiteOccupied()
	}
	return pos.blackOccupied()
}

// checkInvariants panics if any of the invariants in spec.md §3/§8 are
// violated. It is not called on any hot path; tests call it to catch
// programmer errors early, per
// spec.md §7 ("Internal invariants ... implementations may assert").
func (pos *Position) checkInvariants() {
	var seen Bitboard
	for _, p := range allPieces {
		if pos.pieces[p]&seen != 0 {
			panic(fmt.Sprintf("chess: piece bitboards overlap, piece=%d", p))
		}
		seen |= pos.pieces[p]
	}
	if pos.bb(WhiteKing).PopCount() != 1 {
		panic("chess: white king popcount != 1")
	}
	if pos.bb(BlackKing).PopCount() != 1 {
		panic("chess: black king popcount != 1")
	}
	if pos.EnPassant.PopCount() > 1 {
		panic("chess: en-passant bitboard has more than one bit set")
	}
	// The king's home square varies under Chess960, so only the rook
	// identities (not a fixed square) are checked here.
	if pos.Rights.WhiteShort && pos.bb(WhiteRook)&pos.WhiteRightRook == 0 {
		panic("chess: white short castle right without the right rook in place")
	}
	if pos.Rights.WhiteLong && pos.bb(WhiteRook)&pos.WhiteLeftRook == 0 {
		panic("chess: white long castle right without the left rook in place")
	}
	if pos.Rights.BlackShort && pos.bb(BlackRook)&pos.BlackRightRook == 0 {
		panic("chess: black short castle right without the right rook in place")
	}
	if pos.Rights.BlackLong && pos.bb(BlackRook)&pos.BlackLeftRook == 0 {
		panic("chess: black long castle right without the left rook in place")
	}
}

// Clone returns a deep, independent copy of the position (history
// included). Pool workers use it so each search runs on its own copy
// and never mutates the caller's position.
func (pos *Position) Clone() *Position {
	cp := &Position{
		pieces:         pos.pieces,
		EnPassant:      pos.EnPassant,
		Rights:         pos.Rights,
		WhiteLeftRook:  pos.WhiteLeftRook,
		WhiteRightRook: pos.WhiteRightRook,
		BlackLeftRook:  pos.BlackLeftRook,
		BlackRightRook: pos.BlackRightRook,
		history:        append([]historyEntry(nil), pos.history...),
	}
	return cp
}

// Mirror returns a new position with colors swapped and the board
// flipped vertically — the position White would see looking at Black's
// game. Used by the symmetric-evaluation test in spec.md §8.
func (pos *Position) Mirror() *Position {
	cp := &Position{}
	for _, p := range allPieces {
		mirrored := GetPiece(p.Type(), p.Color().Other())
		cp.pieces[mirrored] = pos.pieces[p].FlipVertical()
	}
	cp.EnPassant = pos.EnPassant.FlipVertical()
	cp.Rights = CastleRights{
		WhiteShort: pos.Rights.BlackShort,
		WhiteLong:  pos.Rights.BlackLong,
		BlackShort: pos.Rights.WhiteShort,
		BlackLong:  pos.Rights.WhiteLong,
	}
	cp.WhiteLeftRook = pos.BlackLeftRook.FlipVertical()
	cp.WhiteRightRook = pos.BlackRightRook.FlipVertical()
	cp.BlackLeftRook = pos.WhiteLeftRook.FlipVertical()
	cp.BlackRightRook = pos.WhiteRightRook.FlipVertical()
	return cp
}

// Draw returns an ASCII rendering of the board, uppercase glyphs for
// White and lowercase for Black, matching the reference driver's
// convention (spec.md §6, "Driver -> user").
func (pos *Position) Draw() string {
	s := "\n  0 1 2 3 4 5 6 7\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank)
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(NewSquare(file, rank))
			s += string(p.Glyph()) + " "
		}
		s += "\n"
	}
	return s
}
