package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gemhunters/game"
)

func main() {
	log.SetOutput(os.Stderr)
	cfg, err := game.ParseConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.SetLevel(cfg.Level())

	opts := []game.Option{
		game.WithInput(game.NewKeyReader(os.Stdin, os.Stdout, cfg.RawKeys)),
		game.WithOutput(os.Stdout),
	}
	if cfg.BoardFile != "" {
		board, err := game.LoadBoard(cfg.BoardFile)
		if err != nil {
			log.Fatalf("board: %v", err)
		}
		opts = append(opts, game.WithBoard(board))
	} else {
		opts = append(opts, game.WithRand(cfg.Rand()))
	}

	g := game.NewGame(opts...)
	if _, err := g.Start(); err != nil {
		if errors.Is(err, game.ErrInterrupted) || errors.Is(err, game.ErrInputClosed) {
			log.Warnf("game %s stopped: %v", g.Id, err)
			os.Exit(1)
		}
		log.Fatalf("game %s: %v", g.Id, err)
	}
}
