package chess

import (
	"strings"

	"github.com/owenkcoyle/fischerchess/bitflip"
)

// moveToken is an intermediate representation used while generating
// moves in "white frame" (the orientation pawn shifts assume); it is
// translated to an actual Square pair and, for Black, mirrored back
// before being encoded into the wire format.
type moveToken struct {
	tag      byte
	from, to Square
}

func encodeToken(tag byte, from, to Square) string {
	return string([]byte{
		tag,
		byte('0' + from.File()), byte('0' + from.Rank()),
		byte('0' + to.File()), byte('0' + to.Rank()),
	})
}

func lowerTag(tag byte) byte {
	if tag >= 'A' && tag <= 'Z' {
		return tag + ('a' - 'A')
	}
	return tag
}

// PossibleMoves returns the concatenation of every pseudo-legal move
// token for side, in the five-character wire format described in
// spec.md §4.4. It does not filter moves that leave side's own king in
// check; see GameOver and Position.Make/Unmake for the legality check
// the driver performs around a tentative move.
func (pos *Position) PossibleMoves(side Color) string {
	var sb strings.Builder
	sb.WriteString(pos.pawnMoves(side))
	sb.WriteString(pos.knightMoves(side))
	sb.WriteString(pos.sliderMoves(side, Bishop))
	sb.WriteString(pos.sliderMoves(side, Rook))
	sb.WriteString(pos.sliderMoves(side, Queen))
	sb.WriteString(pos.kingMoves(side))
	return sb.String()
}

// pawnMoves generates pawn pushes, captures, en-passant captures and
// promotions. White is generated directly; Black is generated by
// flipping the relevant boards vertically, running the same White-frame
// logic, and reflecting the resulting tokens back (lowercase tag,
// rank 7-y), per spec.md §4.4.
func (pos *Position) pawnMoves(side Color) string {
	cantCapture := pos.occupiedBy(side) | pos.bb(GetPiece(King, side.Other()))
	empty := ^pos.occupied()
	pawns := pos.bb(GetPiece(Pawn, side))
	ep := pos.EnPassant

	if side == Black {
		cantCapture = cantCapture.FlipVertical()
		empty = empty.FlipVertical()
		pawns = pawns.FlipVertical()
		ep = ep.FlipVertical()
	}

	toks := pawnMovesWhiteFrame(cantCapture, empty, ep, pawns)

	var sb strings.Builder
	for _, tok := range toks {
		tag, from, to := tok.tag, tok.from, tok.to
		if side == Black {
			tag = lowerTag(tag)
			from = NewSquare(from.File(), 7-from.Rank())
			to = NewSquare(to.File(), 7-to.Rank())
		}
		sb.WriteString(encodeToken(tag, from, to))
	}
	return sb.String()
}

var promoTags = [4]byte{'Q', 'R', 'B', 'N'}

// pawnMovesWhiteFrame implements the shift arithmetic from spec.md §4.1:
// a White-frame pawn push decreases the board index by 8 (one row) or 16
// (two rows); a capture decreases it by 9 (one row, one file left) or 7
// (one row, one file right). Wraparound across the board edge is
// excluded by masking out the destination file the wrap would land on.
func pawnMovesWhiteFrame(cantCapture, empty, ep, pawns Bitboard) []moveToken {
	promoRank := rankRowMasks[0]
	epLanding := ep >> 8

	capLeft := pawns >> 9 &^ fileMasks[7] &^ cantCapture & (^empty | epLanding)
	capRight := pawns >> 7 &^ fileMasks[0] &^ cantCapture & (^empty | epLanding)
	push1 := pawns >> 8 & empty
	push2 := pawns >> 16 & rankRowMasks[4] & empty & (empty >> 8)

	var out []moveToken
	out = append(out, tokensFromShift(' ', capLeft&^promoRank, 9)...)
	out = append(out, tokensFromShift(' ', capRight&^promoRank, 7)...)
	out = append(out, tokensFromShift(' ', push1&^promoRank, 8)...)
	out = append(out, tokensFromShift(' ', push2, 16)...)

	for _, tag := range promoTags {
		out = append(out, tokensFromShift(tag, capLeft&promoRank, 9)...)
		out = append(out, tokensFromShift(tag, capRight&promoRank, 7)...)
		out = append(out, tokensFromShift(tag, push1&promoRank, 8)...)
	}
	return out
}

func tokensFromShift(tag byte, destinations Bitboard, shift int) []moveToken {
	var out []moveToken
	for destinations != 0 {
		to := Square(destinations.Ctz())
		destinations = destinations.PopLowest()
		from := Square(int(to) + shift)
		out = append(out, moveToken{tag: tag, from: from, to: to})
	}
	return out
}

func (pos *Position) knightMoves(side Color) string {
	cantCapture := pos.occupiedBy(side) | pos.bb(GetPiece(King, side.Other()))
	knights := pos.bb(GetPiece(Knight, side))
	var sb strings.Builder
	for knights != 0 {
		from := Square(knights.Ctz())
		knights = knights.PopLowest()
		targets := knightAttacks[from] &^ cantCapture
		for targets != 0 {
			to := Square(targets.Ctz())
			targets = targets.PopLowest()
			sb.WriteString(encodeToken(' ', from, to))
		}
	}
	return sb.String()
}

func bishopAttacks(occ Bitboard, sq Square) Bitboard {
	return Bitboard(bitflip.LinearAttack(uint64(occ), uint64(bbForSquare(sq)), uint64(diagMask[sq]))) |
		Bitboard(bitflip.LinearAttack(uint64(occ), uint64(bbForSquare(sq)), uint64(antiDiagMask[sq])))
}

func rookAttacks(occ Bitboard, sq Square) Bitboard {
	return Bitboard(bitflip.LinearAttack(uint64(occ), uint64(bbForSquare(sq)), uint64(fileMasks[sq.File()]))) |
		Bitboard(bitflip.LinearAttack(uint64(occ), uint64(bbForSquare(sq)), uint64(rankRowMasks[sq.rankRow()])))
}

func queenAttacks(occ Bitboard, sq Square) Bitboard {
	return bishopAttacks(occ, sq) | rookAttacks(occ, sq)
}

func (pos *Position) sliderMoves(side Color, pt PieceType) string {
	cantCapture := pos.occupiedBy(side) | pos.bb(GetPiece(King, side.Other()))
	occ := pos.occupied()
	pieces := pos.bb(GetPiece(pt, side))
	var sb strings.Builder
	for pieces != 0 {
		from := Square(pieces.Ctz())
		pieces = pieces.PopLowest()
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = bishopAttacks(occ, from)
		case Rook:
			attacks = rookAttacks(occ, from)
		case Queen:
			attacks = queenAttacks(occ, from)
		}
		targets := attacks &^ cantCapture
		for targets != 0 {
			to := Square(targets.Ctz())
			targets = targets.PopLowest()
			sb.WriteString(encodeToken(' ', from, to))
		}
	}
	return sb.String()
}

// OtherThreats returns every square attacked by attacker, used both to
// keep a king from castling or stepping into check and to detect
// checkmate/stalemate (spec.md §4.3).
func (pos *Position) OtherThreats(attacker Color) Bitboard {
	var threats Bitboard

	pawns := pos.bb(GetPiece(Pawn, attacker))
	if attacker == White {
		threats |= pawns &^ fileMasks[0] >> 9
		threats |= pawns &^ fileMasks[7] >> 7
	} else {
		threats |= pawns &^ fileMasks[7] << 9
		threats |= pawns &^ fileMasks[0] << 7
	}

	knights := pos.bb(GetPiece(Knight, attacker))
	for knights != 0 {
		threats |= knightAttacks[knights.Ctz()]
		knights = knights.PopLowest()
	}

	occ := pos.occupied()
	bishops := pos.bb(GetPiece(Bishop, attacker))
	for bishops != 0 {
		threats |= bishopAttacks(occ, Square(bishops.Ctz()))
		bishops = bishops.PopLowest()
	}
	rooks := pos.bb(GetPiece(Rook, attacker))
	for rooks != 0 {
		threats |= rookAttacks(occ, Square(rooks.Ctz()))
		rooks = rooks.PopLowest()
	}
	queens := pos.bb(GetPiece(Queen, attacker))
	for queens != 0 {
		threats |= queenAttacks(occ, Square(queens.Ctz()))
		queens = queens.PopLowest()
	}

	king := pos.bb(GetPiece(King, attacker))
	if king != 0 {
		threats |= kingAttacks[king.Ctz()]
	}

	return threats
}

func (pos *Position) kingMoves(side Color) string {
	king := pos.bb(GetPiece(King, side))
	from := Square(king.Ctz())
	cantCapture := pos.occupiedBy(side) | pos.bb(GetPiece(King, side.Other()))
	threats := pos.OtherThreats(side.Other())

	var sb strings.Builder
	targets := kingAttacks[from] &^ cantCapture &^ threats
	for targets != 0 {
		to := Square(targets.Ctz())
		targets = targets.PopLowest()
		sb.WriteString(encodeToken(' ', from, to))
	}

	tag := byte('C')
	if side == Black {
		tag = 'c'
	}
	if pos.canCastle(side, true) {
		sb.WriteString(encodeToken(tag, from, Square(int(from)-2)))
	}
	if pos.canCastle(side, false) {
		sb.WriteString(encodeToken(tag, from, Square(int(from)+2)))
	}
	return sb.String()
}

// canCastle checks castling legality for side in the given direction.
// The reference implementation only verifies emptiness on the two
// squares nearest the king and threat-freeness on one of those squares
// plus the king's own square, without independently checking the file
// between the king's path and the rook in Chess960 setups (spec.md §9
// flags this as buggy and not to be replicated blindly). This
// implementation instead verifies that every square strictly between the
// king and the rook is empty, and that every square the king passes
// through (including its start and destination) is free of attack.
func (pos *Position) canCastle(side Color, long bool) bool {
	r := pos.Rights
	var has bool
	switch {
	case side == White && long:
		has = r.WhiteLong
	case side == White && !long:
		has = r.WhiteShort
	case side == Black && long:
		has = r.BlackLong
	default:
		has = r.BlackShort
	}
	if !has {
		return false
	}

	king := pos.bb(GetPiece(King, side))
	kingSq := Square(king.Ctz())

	var rookBit Bitboard
	switch {
	case side == White && long:
		rookBit = pos.WhiteLeftRook
	case side == White && !long:
		rookBit = pos.WhiteRightRook
	case side == Black && long:
		rookBit = pos.BlackLeftRook
	default:
		rookBit = pos.BlackRightRook
	}
	if rookBit == 0 {
		return false
	}
	rookSq := Square(rookBit.Ctz())

	between := rangeMaskSameRank(kingSq.rankRow(), kingSq.File(), rookSq.File(), false)
	occWithoutMovers := pos.occupied() &^ king &^ rookBit
	if between&occWithoutMovers != 0 {
		return false
	}

	destFile := kingSq.File() - 2
	if !long {
		destFile = kingSq.File() + 2
	}
	path := rangeMaskSameRank(kingSq.rankRow(), kingSq.File(), destFile, true)

	threats := pos.OtherThreats(side.Other())
	return path&threats == 0
}

func rangeMaskSameRank(rankRow, f1, f2 int, inclusive bool) Bitboard {
	if f1 > f2 {
		f1, f2 = f2, f1
	}
	if !inclusive {
		f1++
		f2--
	}
	var bb Bitboard
	for f := f1; f <= f2; f++ {
		bb |= Bitboard(1) << uint(rankRow*8+f)
	}
	return bb
}

// GameOver reports whether side has no legal move: every pseudo-legal
// move, tried and undone, still leaves side's own king attacked.
// spec.md §4.6.
func (pos *Position) GameOver(side Color) bool {
	moves := pos.PossibleMoves(side)
	for i := 0; i+5 <= len(moves); i += 5 {
		tok := moves[i : i+5]
		if err := pos.Make(tok); err != nil {
			continue
		}
		king := pos.bb(GetPiece(King, side))
		illegal := pos.OtherThreats(side.Other())&king != 0
		pos.Unmake()
		if !illegal {
			return false
		}
	}
	return true
}
