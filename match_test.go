package chess

import "testing"

func TestNewMatchStartsInProgressAsWhite(t *testing.T) {
	m := NewMatch(MatchConfig{GameType: Orthodox, Opponent: Human, Depth: 1, RNGSeed: 1})
	if m.Turn != White {
		t.Fatalf("Turn = %v, want White", m.Turn)
	}
	if m.Outcome != InProgress {
		t.Fatalf("Outcome = %v, want InProgress", m.Outcome)
	}
}

func TestPlayAdvancesTurnOnLegalMove(t *testing.T) {
	m := NewMatch(MatchConfig{GameType: Orthodox, Opponent: Human, Depth: 1, RNGSeed: 1})
	move := tok(' ', 4, 1, 4, 3) // e2-e4
	if err := m.Play(move); err != nil {
		t.Fatalf("Play(%q) = %v", move, err)
	}
	if m.Turn != Black {
		t.Fatalf("Turn = %v after White's move, want Black", m.Turn)
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	m := NewMatch(MatchConfig{GameType: Orthodox, Opponent: Human, Depth: 1, RNGSeed: 1})
	move := tok(' ', 4, 1, 4, 4) // e2-e5, too far
	if err := m.Play(move); err != ErrIllegalMove {
		t.Fatalf("Play(%q) = %v, want ErrIllegalMove", move, err)
	}
	if m.Turn != White {
		t.Fatalf("Turn changed after a rejected move")
	}
}

func TestPlayRejectsMoveThatLeavesOwnKingInCheck(t *testing.T) {
	m := &Match{
		Pos:      &Position{},
		Engine:   nil,
		Turn:     White,
		Opponent: Human,
		Outcome:  InProgress,
	}
	m.Pos.setBB(WhiteKing, bbForSquare(E1))
	m.Pos.setBB(BlackKing, bbForSquare(NewSquare(4, 7)))
	m.Pos.setBB(WhiteRook, bbForSquare(NewSquare(4, 3))) // e4, pinned to the king along the e-file
	m.Pos.setBB(BlackRook, bbForSquare(NewSquare(4, 6))) // e7, the pinning piece

	move := tok(' ', 4, 3, 0, 3) // Re4-a4, abandoning the e-file pin
	if err := m.Play(move); err != ErrIllegalMove {
		t.Fatalf("Play(%q) = %v, want ErrIllegalMove (exposes king to check)", move, err)
	}
}

func TestEngineMovePlaysAndAdvancesTurn(t *testing.T) {
	m := NewMatch(MatchConfig{GameType: Orthodox, Opponent: EngineOpponent, PlayerColor: Black, Depth: 1, RNGSeed: 1})
	move, err := m.EngineMove()
	if err != nil {
		t.Fatalf("EngineMove() = %v", err)
	}
	if len(move) != 5 {
		t.Fatalf("EngineMove() returned %q, want a 5-character token", move)
	}
	if m.Turn != Black {
		t.Fatalf("Turn = %v after White's engine move, want Black", m.Turn)
	}
}

func TestUpdateOutcomeDetectsStalemate(t *testing.T) {
	m := &Match{Pos: &Position{}, Turn: White, Opponent: Human, Outcome: InProgress}
	// Classic stalemate: White king a1 boxed in by a Black king and
	// queen, with no White piece able to move.
	m.Pos.setBB(WhiteKing, bbForSquare(NewSquare(0, 0)))
	m.Pos.setBB(BlackKing, bbForSquare(NewSquare(2, 1)))
	m.Pos.setBB(BlackQueen, bbForSquare(NewSquare(1, 2)))

	m.updateOutcome()
	if m.Outcome != Stalemate {
		t.Fatalf("Outcome = %v, want Stalemate", m.Outcome)
	}
}
