package chess

import (
	"strings"
	"testing"
)

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	pos := NewPosition(Orthodox, 0)
	moves := pos.PossibleMoves(White)
	if len(moves)%5 != 0 {
		t.Fatalf("PossibleMoves returned a non-multiple-of-5 length: %d", len(moves))
	}
	if got := len(moves) / 5; got != 20 {
		t.Fatalf("initial position has %d pseudo-legal White moves, want 20", got)
	}
}

func tok(tag byte, fromFile, fromRank, toFile, toRank int) string {
	return encodeToken(tag, NewSquare(fromFile, fromRank), NewSquare(toFile, toRank))
}

func TestInitialPositionContainsDoublePawnPush(t *testing.T) {
	pos := NewPosition(Orthodox, 0)
	moves := pos.PossibleMoves(White)
	want := tok(' ', 4, 1, 4, 3) // e2-e4
	if !strings.Contains(moves, want) {
		t.Fatalf("expected %q among %q", want, moves)
	}
}

func TestInitialPositionContainsKnightMoves(t *testing.T) {
	pos := NewPosition(Orthodox, 0)
	moves := pos.PossibleMoves(White)
	want := tok(' ', 1, 0, 2, 2) // Nb1-c3
	if !strings.Contains(moves, want) {
		t.Fatalf("expected %q among %q", want, moves)
	}
}

func TestDoublePawnPushSetsEnPassant(t *testing.T) {
	pos := NewPosition(Orthodox, 0)
	move := tok(' ', 4, 1, 4, 3)
	if err := pos.Make(move); err != nil {
		t.Fatalf("Make(%q) = %v", move, err)
	}
	want := bbForSquare(NewSquare(4, 3))
	if pos.EnPassant != want {
		t.Fatalf("EnPassant = %s, want %s", pos.EnPassant, want)
	}
}

func TestEnPassantCaptureRemovesCapturedPawn(t *testing.T) {
	pos := NewPosition(Orthodox, 0)
	for _, m := range []string{
		tok(' ', 4, 1, 4, 3), // e2-e4
		tok(' ', 0, 6, 0, 5), // a7-a6 (waiting move)
		tok(' ', 4, 3, 4, 4), // e4-e5
		tok(' ', 3, 6, 3, 4), // d7-d5 (double push next to White pawn on e5)
	} {
		if err := pos.Make(m); err != nil {
			t.Fatalf("Make(%q) = %v", m, err)
		}
	}
	ep := tok(' ', 4, 4, 3, 5) // e5xd6 en passant
	moves := pos.PossibleMoves(White)
	if !strings.Contains(moves, ep) {
		t.Fatalf("expected en-passant capture %q among %q", ep, moves)
	}
	if err := pos.Make(ep); err != nil {
		t.Fatalf("Make(%q) = %v", ep, err)
	}
	if pos.PieceAt(NewSquare(3, 4)) != NoPiece {
		t.Fatalf("captured pawn square still occupied after en passant")
	}
	if pos.PieceAt(NewSquare(3, 5)) != WhitePawn {
		t.Fatalf("capturing pawn did not land on destination square")
	}
}

func TestCastlingMovesRookAndClearsRights(t *testing.T) {
	pos := NewPosition(Orthodox, 0)
	for _, p := range []Piece{WhiteKnight, WhiteBishop} {
		bb := pos.bb(p)
		for bb != 0 {
			sq := Square(bb.Ctz())
			bb = bb.PopLowest()
			if sq.Rank() == 0 && sq.File() > 4 {
				pos.setBB(p, pos.bb(p)&^bbForSquare(sq))
			}
		}
	}
	moves := pos.PossibleMoves(White)
	short := tok('C', 4, 0, 6, 0)
	if !strings.Contains(moves, short) {
		t.Fatalf("expected short castle %q among %q", short, moves)
	}
	if err := pos.Make(short); err != nil {
		t.Fatalf("Make(%q) = %v", short, err)
	}
	if pos.PieceAt(NewSquare(5, 0)) != WhiteRook {
		t.Fatalf("rook did not land on f1 after short castle")
	}
	if pos.Rights.WhiteShort || pos.Rights.WhiteLong {
		t.Fatalf("castling rights not cleared after castling")
	}
}

func TestCastlingThroughCheckIsForbidden(t *testing.T) {
	pos := &Position{}
	pos.setBB(WhiteKing, bbForSquare(E1))
	pos.setBB(BlackKing, bbForSquare(NewSquare(4, 7)))
	pos.setBB(WhiteRook, bbForSquare(H1))
	pos.setBB(BlackRook, bbForSquare(NewSquare(5, 7))) // f8, attacks f1
	pos.WhiteRightRook = bbForSquare(H1)
	pos.Rights.WhiteShort = true

	if pos.canCastle(White, false) {
		t.Fatalf("canCastle reported castling legal through an attacked square")
	}
}

func TestPromotionReplacesPawnWithChosenPiece(t *testing.T) {
	pos := &Position{}
	pos.setBB(WhiteKing, bbForSquare(E1))
	pos.setBB(BlackKing, bbForSquare(NewSquare(4, 7)))
	pos.setBB(WhitePawn, bbForSquare(NewSquare(0, 6)))

	moves := pos.PossibleMoves(White)
	promo := tok('Q', 0, 6, 0, 7)
	if !strings.Contains(moves, promo) {
		t.Fatalf("expected queen promotion %q among %q", promo, moves)
	}
	if err := pos.Make(promo); err != nil {
		t.Fatalf("Make(%q) = %v", promo, err)
	}
	if pos.PieceAt(NewSquare(0, 7)) != WhiteQueen {
		t.Fatalf("promotion square does not hold a white queen")
	}
	if pos.bb(WhitePawn) != 0 {
		t.Fatalf("promoted pawn still present on the pawn bitboard")
	}
}

func TestGameOverDetectsFoolsMate(t *testing.T) {
	pos := NewPosition(Orthodox, 0)
	for _, m := range []string{
		tok(' ', 5, 1, 5, 2), // f2-f3
		tok(' ', 4, 6, 4, 4), // e7-e5
		tok(' ', 6, 1, 6, 3), // g2-g4
	} {
		if err := pos.Make(m); err != nil {
			t.Fatalf("Make(%q) = %v", m, err)
		}
	}
	// Black queen h4-e1 equivalent: d8-h4 checkmate.
	qmove := tok(' ', 3, 7, 7, 3)
	if err := pos.Make(qmove); err != nil {
		t.Fatalf("Make(%q) = %v", qmove, err)
	}
	if !pos.GameOver(White) {
		t.Fatalf("expected White to have no legal moves after fool's mate")
	}
	king := pos.bb(WhiteKing)
	if pos.OtherThreats(Black)&king == 0 {
		t.Fatalf("expected White king to be in check in the fool's-mate position")
	}
}
