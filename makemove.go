package chess

import "fmt"

// historySlot is one of the three history-entry slots from spec.md §4.4:
// the piece whose bitboard changed, and that bitboard's value before the
// change. Unmake restores it by a straight assignment rather than
// reversing the XOR, so the exact sequence of operations Make performed
// does not need to be replayed.
type historySlot struct {
	piece Piece // NoPiece if this slot is unused for the move
	bb    Bitboard
}

// historyEntry is one undo record. Unlike the reference implementation
// (spec.md §9, "make/unmake symmetry"), it also snapshots en_passant, so
// Unmake is fully self-contained and the caller never needs a side
// channel to restore it.
type historyEntry struct {
	captured   historySlot
	mover      historySlot
	extra      historySlot // promotion target piece, or castling rook
	prevEnPassant Bitboard
	prevRights    CastleRights
}

var promoLetters = map[byte]PieceType{
	'N': Knight, 'n': Knight,
	'B': Bishop, 'b': Bishop,
	'R': Rook, 'r': Rook,
	'Q': Queen, 'q': Queen,
}

// Make applies a 5-character wire move token (spec.md §4.4) to pos. The
// moving piece's color is read off the board at the token's start
// square, so Make does not take a side parameter. A promotion letter is
// accepted in either case; the promoted piece always takes the mover's
// color (see DESIGN.md).
func (pos *Position) Make(token string) error {
	if len(token) != 5 {
		return fmt.Errorf("chess: malformed move token %q", token)
	}
	tag := token[0]
	x1, y1 := int(token[1]-'0'), int(token[2]-'0')
	x2, y2 := int(token[3]-'0'), int(token[4]-'0')
	if x1 < 0 || x1 > 7 || y1 < 0 || y1 > 7 || x2 < 0 || x2 > 7 || y2 < 0 || y2 > 7 {
		return fmt.Errorf("chess: move token %q has an out-of-range coordinate", token)
	}
	from := NewSquare(x1, y1)
	to := NewSquare(x2, y2)

	mover := pos.PieceAt(from)
	if mover == NoPiece {
		return fmt.Errorf("chess: no piece on square %s", from)
	}

	entry := historyEntry{
		captured:      historySlot{piece: NoPiece},
		extra:         historySlot{piece: NoPiece},
		prevEnPassant: pos.EnPassant,
		prevRights:    pos.Rights,
	}
	oldEP := pos.EnPassant

	fromBit, toBit := bbForSquare(from), bbForSquare(to)

	isDoublePush := mover.Type() == Pawn && (int(to) == int(from)+16 || int(to) == int(from)-16)
	pos.EnPassant = 0
	if isDoublePush {
		pos.EnPassant = toBit
	}

	// Capture resolution (spec.md §4.4 step 4), including en-passant.
	// See the original's WHITE_DID_EN_PASSANT/BLACK_DID_EN_PASSANT
	// (original_source/moves.h): white's en-passant capture lands on
	// old_en_passant>>8, black's on old_en_passant<<8.
	whiteDidEP := mover == WhitePawn && oldEP != 0 && int(to) == oldEP.Ctz()-8
	blackDidEP := mover == BlackPawn && oldEP != 0 && int(to) == oldEP.Ctz()+8

	capturedSq := to
	captured := NoPiece
	if whiteDidEP {
		captured = BlackPawn
		capturedSq = Square(oldEP.Ctz())
	} else if blackDidEP {
		captured = WhitePawn
		capturedSq = Square(oldEP.Ctz())
	} else {
		for _, p := range allPieces {
			if p.Color() == mover.Color() {
				continue
			}
			if pos.bb(p)&toBit != 0 {
				captured = p
				break
			}
		}
	}

	if captured != NoPiece {
		entry.captured = historySlot{piece: captured, bb: pos.bb(captured)}
		pos.setBB(captured, pos.bb(captured)&^bbForSquare(capturedSq))
		pos.clearCastleRightOnRookSquare(captured.Color(), capturedSq)
	}

	// Mover resolution (step 5).
	entry.mover = historySlot{piece: mover, bb: pos.bb(mover)}
	pos.setBB(mover, pos.bb(mover)^(fromBit|toBit))

	if mover.Type() == King {
		// Fixes the reference's king-move castling-rights-clear bug
		// (spec.md §9): the rights must be cleared on every king move,
		// not left unreachable after a break.
		if mover.Color() == White {
			pos.Rights.WhiteShort, pos.Rights.WhiteLong = false, false
		} else {
			pos.Rights.BlackShort, pos.Rights.BlackLong = false, false
		}
	}
	if mover.Type() == Rook {
		pos.clearCastleRightOnRookSquare(mover.Color(), from)
	}

	// Tag handling (step 6).
	switch {
	case tag == ' ':
		// no additional action
	case tag == 'C' || tag == 'c':
		color := White
		if tag == 'c' {
			color = Black
		}
		rookPiece := GetPiece(Rook, color)
		var rookFrom Square
		if to < from { // king moved toward file 0: long castle
			rookFrom = pos.leftRook(color)
		} else {
			rookFrom = pos.rightRook(color)
		}
		var rookTo Square
		if to < from {
			rookTo = Square(int(to) + 1)
		} else {
			rookTo = Square(int(to) - 1)
		}
		entry.extra = historySlot{piece: rookPiece, bb: pos.bb(rookPiece)}
		pos.setBB(rookPiece, pos.bb(rookPiece)^(bbForSquare(rookFrom)|bbForSquare(rookTo)))
	default:
		pt, ok := promoLetters[tag]
		if !ok {
			return fmt.Errorf("chess: unknown move tag %q", tag)
		}
		target := GetPiece(pt, mover.Color())
		entry.extra = historySlot{piece: target, bb: pos.bb(target)}
		pos.setBB(mover, pos.bb(mover)&^toBit)
		pos.setBB(target, pos.bb(target)|toBit)
	}

	pos.history = append(pos.history, entry)
	return nil
}

func (pos *Position) leftRook(c Color) Square {
	if c == White {
		return Square(pos.WhiteLeftRook.Ctz())
	}
	return Square(pos.BlackLeftRook.Ctz())
}

func (pos *Position) rightRook(c Color) Square {
	if c == White {
		return Square(pos.WhiteRightRook.Ctz())
	}
	return Square(pos.BlackRightRook.Ctz())
}

func (pos *Position) clearCastleRightOnRookSquare(c Color, sq Square) {
	bit := bbForSquare(sq)
	switch {
	case c == White && bit == pos.WhiteLeftRook:
		pos.Rights.WhiteLong = false
	case c == White && bit == pos.WhiteRightRook:
		pos.Rights.WhiteShort = false
	case c == Black && bit == pos.BlackLeftRook:
		pos.Rights.BlackLong = false
	case c == Black && bit == pos.BlackRightRook:
		pos.Rights.BlackShort = false
	}
}

// Unmake reverts the most recent Make call. It panics if called with no
// history, the same contract the teacher's stack-backed structures use
// for pop-when-empty.
func (pos *Position) Unmake() {
	n := len(pos.history)
	if n == 0 {
		panic("chess: Unmake called with empty history")
	}
	entry := pos.history[n-1]
	pos.history = pos.history[:n-1]

	pos.Rights = entry.prevRights
	pos.EnPassant = entry.prevEnPassant

	if entry.mover.piece != NoPiece {
		pos.setBB(entry.mover.piece, entry.mover.bb)
	}
	if entry.captured.piece != NoPiece {
		pos.setBB(entry.captured.piece, entry.captured.bb)
	}
	if entry.extra.piece != NoPiece {
		pos.setBB(entry.extra.piece, entry.extra.bb)
	}
}
