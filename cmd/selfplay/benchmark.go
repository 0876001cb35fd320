package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/apex/log"
	"shogilegal/internal/shogi"
)

// collectPositions 用随机对局凑一批测速局面。
func collectPositions(rng *rand.Rand, n int) []*shogi.Position {
	out := make([]*shogi.Position, 0, n)
	for len(out) < n {
		pos := shogi.NewInitialPosition()
		for ply := 0; ply < 120 && len(out) < n; ply++ {
			moves, err := pos.LegalMoves(pos.SideToMove)
			if err != nil || len(moves) == 0 {
				break
			}
			out = append(out, pos)
			next, ok := pos.ApplyMove(moves[rng.Intn(len(moves))])
			if !ok {
				break
			}
			pos = next
		}
	}
	return out
}

func runBenchmark(d time.Duration, seed int64) {
	positions := collectPositions(rand.New(rand.NewSource(seed)), 2000)
	log.WithField("positions", len(positions)).Info("benchmark positions ready")

	var calls, moves int
	start := time.Now()
	for time.Since(start) < d {
		for _, pos := range positions {
			ms, err := pos.LegalMoves(pos.SideToMove)
			if err != nil {
				log.WithError(err).WithField("sfen", pos.SFEN()).Fatal("generation failed")
			}
			calls++
			moves += len(ms)
		}
	}
	elapsed := time.Since(start)
	perCall := elapsed / time.Duration(max(calls, 1))
	fmt.Printf("Generated %d move lists (%d moves) in %v\n", calls, moves, elapsed)
	fmt.Printf("Per position: %v  Moves/s: %d\n", perCall, int64(float64(moves)/elapsed.Seconds()))
}
