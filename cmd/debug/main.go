package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"shogilegal/internal/logging"
	"shogilegal/internal/shogi"
	"shogilegal/internal/textio"
)

func main() {
	sfen := flag.String("sfen", shogi.StartSFEN, "position to inspect")
	in := flag.String("in", "", "file with one SFEN per line (UTF-8 or Shift-JIS); overrides -sfen")
	side := flag.String("side", "", "black / white (default: side to move)")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := logging.Setup(*level, false); err != nil {
		log.WithError(err).Fatal("bad log level")
	}

	list := []string{*sfen}
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.WithError(err).Fatal("open input")
		}
		list, err = textio.ReadLines(f)
		f.Close()
		if err != nil {
			log.WithError(err).Fatal("read input")
		}
	}

	for _, s := range list {
		if err := inspect(s, *side); err != nil {
			log.WithError(err).WithField("sfen", s).Error("inspect failed")
		}
	}
}

func inspect(s, sideFlag string) error {
	pos, err := shogi.DecodeSFEN(s)
	if err != nil {
		return err
	}
	side := pos.SideToMove
	switch sideFlag {
	case "black":
		side = shogi.Black
	case "white":
		side = shogi.White
	}

	cc, err := pos.CheckCount(side)
	if err != nil {
		return err
	}
	moves, err := pos.LegalMoves(side)
	if err != nil {
		return err
	}

	fmt.Println("SFEN:", pos.SFEN())
	fmt.Printf("Side: %v  Check: %d  Hash: %016x\n", side, cc, pos.CalculateHash())
	fmt.Println("Legal moves:", len(moves))
	view := *pos
	view.SideToMove = side
	for _, m := range moves {
		fmt.Printf("  %-6s %s\n", m.USI(), view.Japanese(m, shogi.NoSquare))
	}
	return nil
}
