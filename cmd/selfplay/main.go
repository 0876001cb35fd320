package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"
	"shogilegal/internal/logging"
	"shogilegal/internal/shogi"
)

type gameResult struct {
	Plies     int
	Moves     int
	Checkmate bool
	Loser     shogi.Color
}

func main() {
	totalGames := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("plies", 300, "ply limit per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	parallel := flag.Int("parallel", 4, "games played concurrently")
	bench := flag.Duration("bench", 0, "run the generation benchmark for this long instead of self-play")
	level := flag.String("log-level", "info", "log level")
	logJSON := flag.Bool("log-json", false, "log as JSON lines")
	flag.Parse()

	if err := logging.Setup(*level, *logJSON); err != nil {
		log.WithError(err).Fatal("bad log level")
	}

	if *bench > 0 {
		runBenchmark(*bench, *seed)
		return
	}

	var (
		mu      sync.Mutex
		results = make([]gameResult, *totalGames)
	)
	start := time.Now()
	var g errgroup.Group
	g.SetLimit(max(*parallel, 1))
	for i := 0; i < *totalGames; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(*seed + int64(i)))
			res, err := playGame(rng, *maxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			mu.Lock()
			results[i] = res
			mu.Unlock()
			log.WithFields(log.Fields{
				"game":      i + 1,
				"plies":     res.Plies,
				"checkmate": res.Checkmate,
			}).Debug("game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("selfplay failed")
		os.Exit(1)
	}

	var plies, moves, mates int
	for i, r := range results {
		plies += r.Plies
		moves += r.Moves
		if r.Checkmate {
			mates++
			fmt.Printf("Game %d: %v is checkmated after %d plies\n", i+1, r.Loser, r.Plies)
		} else {
			fmt.Printf("Game %d: stopped after %d plies\n", i+1, r.Plies)
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("\n=== Summary ===\n")
	fmt.Printf("Games: %d  Checkmates: %d  Plies: %d  Moves generated: %d\n", *totalGames, mates, plies, moves)
	fmt.Printf("Time: %v  Plies/s: %d\n", elapsed, int64(float64(plies)/elapsed.Seconds()))
}

// playGame 随机对局，每一手都核对生成结果与逐手判定一致。
func playGame(rng *rand.Rand, maxPlies int) (gameResult, error) {
	pos := shogi.NewInitialPosition()
	var res gameResult
	for ply := 0; ply < maxPlies; ply++ {
		side := pos.SideToMove
		moves, err := pos.LegalMoves(side)
		if err != nil {
			return res, fmt.Errorf("ply %d: %w", ply, err)
		}
		res.Moves += len(moves)
		if len(moves) == 0 {
			mate, err := pos.IsCheckmate(side)
			if err != nil {
				return res, err
			}
			res.Checkmate = mate
			res.Loser = side
			return res, nil
		}
		if err := checkPly(pos, side, moves); err != nil {
			return res, fmt.Errorf("ply %d (%s): %w", ply, pos.SFEN(), err)
		}

		mv := moves[rng.Intn(len(moves))]
		next, ok := pos.ApplyMove(mv)
		if !ok {
			return res, fmt.Errorf("ply %d: generated move %s does not apply", ply, mv.USI())
		}
		in, err := next.IsInCheck(side)
		if err != nil {
			return res, fmt.Errorf("ply %d: %w", ply, err)
		}
		if in {
			return res, fmt.Errorf("ply %d: %s leaves own king in check", ply, mv.USI())
		}
		if next.Hash != next.CalculateHash() {
			return res, fmt.Errorf("ply %d: hash drift after %s", ply, mv.USI())
		}
		pos = next
		res.Plies++
	}
	return res, nil
}

func checkPly(pos *shogi.Position, side shogi.Color, moves []shogi.Move) error {
	cc, err := pos.CheckCount(side)
	if err != nil {
		return err
	}
	for _, m := range moves {
		v, err := pos.IsLegalMove(side, m)
		if err != nil {
			return fmt.Errorf("%s: %w", m.USI(), err)
		}
		if !v.Allows(m.Promote) {
			return fmt.Errorf("%s generated but judged illegal", m.USI())
		}
		if cc == shogi.DoubleCheck && m.Piece.Type() != shogi.King {
			return fmt.Errorf("%s is not a king move under double check", m.USI())
		}
	}
	return nil
}
