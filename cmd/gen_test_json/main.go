package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"os"
	"sort"

	"github.com/apex/log"
	"shogilegal/internal/logging"
	"shogilegal/internal/shogi"
	"shogilegal/internal/textio"
)

// TestCase 一个局面的生成结果，供其他实现对拍。
type TestCase struct {
	SFEN       string   `json:"sfen"`
	Side       string   `json:"side"`
	Board      []int8   `json:"board"`
	Hands      [2][]int `json:"hands"`
	CheckCount int      `json:"checkCount"`
	Moves      []string `json:"moves"`
}

func main() {
	numGames := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("plies", 200, "ply limit per game")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "test_positions.json", "output file")
	in := flag.String("in", "", "read SFEN lines from this file instead of playing random games")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := logging.Setup(*level, false); err != nil {
		log.WithError(err).Fatal("bad log level")
	}

	var positions []*shogi.Position
	if *in != "" {
		positions = readPositions(*in)
	} else {
		positions = samplePositions(rand.New(rand.NewSource(*seed)), *numGames, *maxPlies)
	}

	var testCases []TestCase
	for _, pos := range positions {
		tc, err := buildCase(pos)
		if err != nil {
			log.WithError(err).WithField("sfen", pos.SFEN()).Warn("skipped")
			continue
		}
		testCases = append(testCases, tc)
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("encode")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.WithError(err).Fatal("write")
	}
	log.WithFields(log.Fields{"cases": len(testCases), "out": *out}).Info("written")
}

func readPositions(path string) []*shogi.Position {
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Fatal("open input")
	}
	defer f.Close()
	lines, err := textio.ReadLines(f)
	if err != nil {
		log.WithError(err).Fatal("read input")
	}
	var out []*shogi.Position
	for _, l := range lines {
		pos, err := shogi.DecodeSFEN(l)
		if err != nil {
			log.WithError(err).WithField("line", l).Warn("bad sfen")
			continue
		}
		out = append(out, pos)
	}
	return out
}

func samplePositions(rng *rand.Rand, games, maxPlies int) []*shogi.Position {
	var out []*shogi.Position
	for g := 0; g < games; g++ {
		pos := shogi.NewInitialPosition()
		for ply := 0; ply < maxPlies; ply++ {
			out = append(out, pos)
			moves, err := pos.LegalMoves(pos.SideToMove)
			if err != nil || len(moves) == 0 {
				break
			}
			next, ok := pos.ApplyMove(moves[rng.Intn(len(moves))])
			if !ok {
				break
			}
			pos = next
		}
	}
	return out
}

func buildCase(pos *shogi.Position) (TestCase, error) {
	side := pos.SideToMove
	cc, err := pos.CheckCount(side)
	if err != nil {
		return TestCase{}, err
	}
	moves, err := pos.LegalMoves(side)
	if err != nil {
		return TestCase{}, err
	}

	tc := TestCase{
		SFEN:       pos.SFEN(),
		Side:       side.String(),
		Board:      make([]int8, shogi.NumSquares),
		CheckCount: int(cc),
		Moves:      make([]string, 0, len(moves)),
	}
	for s := range tc.Board {
		tc.Board[s] = int8(pos.Board[s])
	}
	for c := range tc.Hands {
		for _, pt := range shogi.HandTypes {
			tc.Hands[c] = append(tc.Hands[c], pos.Hands[c][pt])
		}
	}
	for _, m := range moves {
		tc.Moves = append(tc.Moves, m.USI())
	}
	sort.Strings(tc.Moves)
	return tc, nil
}
