package chess

import "math"

// Engine wraps a Position with the extra state the search needs: the
// fixed search depth and the best move found by the most recent
// top-level Minimax call (spec.md §4.7, "best-move recording").
type Engine struct {
	Pos      *Position
	Depth    int
	bestMove string
}

// NewEngine constructs an Engine over pos with the given search depth,
// clamped to the 1..5 range spec.md §6 allows the driver to request.
func NewEngine(pos *Position, depth int) *Engine {
	if depth < 1 {
		depth = 1
	}
	if depth > 5 {
		depth = 5
	}
	return &Engine{Pos: pos, Depth: depth}
}

// BestMove returns the move token Minimax last recorded at the top
// level, or "" if Minimax has not been called with recordBest yet.
func (e *Engine) BestMove() string {
	return e.bestMove
}

// Minimax runs negamax with fail-soft alpha-beta pruning to depth d and
// returns the evaluated score from White's perspective (spec.md §4.7).
// Only the top-level call (recordBest == true) updates e.BestMove.
func (e *Engine) Minimax(d int, alpha, beta float64, whiteToMove, recordBest bool) float64 {
	if d == 0 {
		return e.Pos.Evaluate()
	}

	side := White
	if !whiteToMove {
		side = Black
	}
	moves := e.Pos.PossibleMoves(side)

	best := math.Inf(-1)
	if !whiteToMove {
		best = math.Inf(1)
	}
	anyLegal := false

	for i := 0; i+5 <= len(moves); i += 5 {
		tok := moves[i : i+5]
		if err := e.Pos.Make(tok); err != nil {
			continue
		}

		king := e.Pos.bb(GetPiece(King, side))
		if e.Pos.OtherThreats(side.Other())&king != 0 {
			e.Pos.Unmake()
			continue
		}
		anyLegal = true

		score := e.Minimax(d-1, alpha, beta, !whiteToMove, false)
		e.Pos.Unmake()

		if whiteToMove {
			if score > best {
				best = score
				if recordBest {
					e.bestMove = tok
				}
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
				if recordBest {
					e.bestMove = tok
				}
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}

	if !anyLegal {
		return e.Pos.Evaluate()
	}
	return best
}
