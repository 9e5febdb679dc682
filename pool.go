package chess

import (
	"context"
	"math"
	"runtime"
	"sync"
)

// AnalysisRequest is one position to search, submitted to a Pool.
type AnalysisRequest struct {
	Pos   *Position
	Depth int
	Side  Color
}

// AnalysisResult is the Minimax outcome for the matching AnalysisRequest,
// in submission order is not guaranteed -- results arrive as each worker
// finishes.
type AnalysisResult struct {
	Request AnalysisRequest
	Score   float64
	Best    string
}

// Pool runs independent positions through Minimax concurrently. Search
// itself stays single-threaded per spec.md §5: a Pool never shares one
// Position or Engine across goroutines, it only lets unrelated positions
// (e.g. candidate book moves, or a batch of puzzles) run side by side,
// each on its own worker-owned clone.
type Pool struct {
	err error
}

// NewPool returns a new analysis pool.
func NewPool() *Pool {
	return &Pool{}
}

// Run fans work out across runtime.NumCPU() workers, each of which clones
// its own Position per request so no mutable search state is ever shared.
// It closes output once every worker has drained work, and returns
// ctx.Err() if ctx was cancelled before input was exhausted.
func (p *Pool) Run(ctx context.Context, input <-chan AnalysisRequest, output chan<- AnalysisResult) error {
	p.err = nil
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go analysisWorker(ctx, input, output, &wg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		p.err = ctx.Err()
		<-done // workers select on ctx.Done() too, so this still returns promptly
	case <-done:
	}
	close(output)
	return p.err
}

func analysisWorker(ctx context.Context, input <-chan AnalysisRequest, output chan<- AnalysisResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-input:
			if !ok {
				return
			}
			pos := req.Pos.Clone()
			eng := NewEngine(pos, req.Depth)
			score := eng.Minimax(eng.Depth, math.Inf(-1), math.Inf(1), req.Side == White, true)
			select {
			case output <- AnalysisResult{Request: req, Score: score, Best: eng.BestMove()}:
			case <-ctx.Done():
				return
			}
		}
	}
}
