package main

import (
	"flag"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"
	"shogilegal/internal/logging"
	"shogilegal/internal/shogi"
)

func main() {
	sfen := flag.String("sfen", shogi.StartSFEN, "root position")
	depth := flag.Int("depth", 3, "perft depth")
	divide := flag.Bool("divide", false, "print node counts per root move")
	workers := flag.Int("workers", 0, "max goroutines (0 = one per root move)")
	level := flag.String("log-level", "info", "log level")
	logJSON := flag.Bool("log-json", false, "log as JSON lines")
	flag.Parse()

	if err := logging.Setup(*level, *logJSON); err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	pos, err := shogi.DecodeSFEN(*sfen)
	if err != nil {
		log.WithError(err).Fatal("bad sfen")
	}
	if *depth < 1 {
		log.Fatal("depth must be at least 1")
	}

	roots, err := pos.LegalMoves(pos.SideToMove)
	if err != nil {
		log.WithError(err).Fatal("root position rejected")
	}

	start := time.Now()
	counts := make([]uint64, len(roots))
	var total atomic.Uint64

	var g errgroup.Group
	if *workers > 0 {
		g.SetLimit(*workers)
	}
	for i, m := range roots {
		i, m := i, m
		g.Go(func() error {
			next, ok := pos.ApplyMove(m)
			if !ok {
				return fmt.Errorf("root move %s does not apply", m.USI())
			}
			n, err := shogi.Perft(next, *depth-1)
			if err != nil {
				return fmt.Errorf("%s: %w", m.USI(), err)
			}
			counts[i] = n
			total.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("perft failed")
	}
	elapsed := time.Since(start)

	if *divide {
		for i, m := range roots {
			fmt.Printf("%s: %d\n", m.USI(), counts[i])
		}
	}
	fmt.Printf("perft(%d) = %d\n", *depth, total.Load())
	log.WithFields(log.Fields{
		"depth": *depth,
		"nodes": total.Load(),
		"took":  elapsed.String(),
		"nps":   int64(float64(total.Load()) / elapsed.Seconds()),
	}).Info("done")
}
