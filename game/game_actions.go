package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gemhunters/model"
)

func NewGame(opts ...Option) *Game {
	g := &Game{
		Id:    uuid.New(),
		state: GS_NEW,
		p1:    model.NewPlayer("P1", StartP1),
		p2:    model.NewPlayer("P2", StartP2),
		out:   io.Discard,
	}
	g.active = g.p1
	g.logger = log.WithField("game", g.Id.String())
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = model.NewBoard(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return g
}

func (g *Game) Board() *model.Board {
	return g.board
}

func (g *Game) Active() *model.Player {
	return g.active
}

func (g *Game) Players() (*model.Player, *model.Player) {
	return g.p1, g.p2
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) State() GameState {
	return g.state
}

// Start runs turns until the game is over and announces the winner.
// It stops early, without an announcement, if reading input fails.
func (g *Game) Start() (Result, error) {
	if g.in == nil {
		return Result{}, fmt.Errorf("game %s: no input", g.Id)
	}
	g.logger.Info("Game.Start")
	if g.state == GS_NEW {
		g.setState(g.logger, GS_AWAIT)
	}

	for g.state != GS_OVER {
		fmt.Fprint(g.out, g.board.Render())
		fmt.Fprintf(g.out, MSG_TURN, g.active.Name())
		fmt.Fprint(g.out, MSG_PROMPT)

		key, err := g.in.ReadKey()
		fmt.Fprintln(g.out)
		if err != nil {
			g.logger.WithError(err).Warn("Game.Start input ended")
			return Result{}, fmt.Errorf("read direction: %w", err)
		}

		if !g.Turn(model.ParseDirection(key)) {
			fmt.Fprintln(g.out, MSG_INVALID)
		}
	}

	res := g.Winner()
	fmt.Fprintln(g.out, MSG_GAME_OVER)
	fmt.Fprintln(g.out, res.Announcement())
	g.logger.WithFields(log.Fields{
		"p1": res.Gems[0],
		"p2": res.Gems[1],
	}).Infof("Game.Start over: %s", res.Outcome.Name())
	return res, nil
}

// Turn plays one direction for the active player. A rejected direction
// leaves the same player active and the turn counter unchanged.
func (g *Game) Turn(d model.Direction) bool {
	if g.state == GS_OVER {
		return false
	}
	logger := g.logger.WithFields(log.Fields{
		"player":    g.active.Name(),
		"turn":      g.turns,
		"direction": d.Name(),
	})

	if !g.board.IsValidMove(g.active, d) {
		logger.Info("Game.Turn rejected")
		g.setState(logger, GS_AWAIT)
		return false
	}
	if d == model.DirectionNone {
		// unknown keys stand still and still use up the turn
		logger.Warn("Game.Turn null move accepted")
	}

	g.active.Move(d)
	g.setState(logger, GS_APPLIED)
	if g.board.CollectGemAt(g.active) {
		logger.WithField("gems", g.active.Gems()).Info("Game.Turn gem collected")
	}

	g.setState(logger, GS_SWITCH)
	g.switchTurn()
	g.turns++

	if g.turns > MaxTurnIndex {
		g.setState(logger, GS_OVER)
	} else {
		g.setState(logger, GS_AWAIT)
	}
	return true
}

// setState records every transition, including the ones Turn passes through.
func (g *Game) setState(logger *log.Entry, s GameState) {
	logger.WithFields(log.Fields{
		"from":  g.state.Name(),
		"state": s.Name(),
	}).Debug("Game.state")
	g.state = s
}

func (g *Game) switchTurn() {
	if g.active == g.p1 {
		g.active = g.p2
	} else {
		g.active = g.p1
	}
}

func (g *Game) Winner() Result {
	res := Result{Gems: [2]int{g.p1.Gems(), g.p2.Gems()}}
	switch {
	case res.Gems[0] > res.Gems[1]:
		res.Outcome = Player1Wins
	case res.Gems[0] < res.Gems[1]:
		res.Outcome = Player2Wins
	default:
		res.Outcome = Tie
	}
	return res
}
