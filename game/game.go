package game

import (
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gemhunters/model"
)

// MaxTurnIndex is the last turn index played; turns are counted from 0.
const MaxTurnIndex = 15

var (
	StartP1 = model.Position{X: 0, Y: 0}
	StartP2 = model.Position{X: model.Size - 1, Y: model.Size - 1}
)

type GameState int

const (
	GS_NEW GameState = iota
	GS_AWAIT
	GS_APPLIED
	GS_SWITCH
	GS_OVER
)

type Game struct {
	Id     uuid.UUID
	state  GameState
	board  *model.Board
	p1, p2 *model.Player
	active *model.Player
	turns  int

	in     KeyReader
	out    io.Writer
	logger *log.Entry
}

type Outcome int

const (
	Tie Outcome = iota
	Player1Wins
	Player2Wins
)

type Result struct {
	Outcome Outcome
	Gems    [2]int
}

type Option func(g *Game)

// WithBoard replaces random placement with a prepared board.
func WithBoard(b *model.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

func WithRand(rng model.Rand) Option {
	return func(g *Game) {
		g.board = model.NewBoard(rng)
	}
}

func WithInput(in KeyReader) Option {
	return func(g *Game) {
		g.in = in
	}
}

func WithOutput(out io.Writer) Option {
	return func(g *Game) {
		g.out = out
	}
}

func WithLogger(l log.FieldLogger) Option {
	return func(g *Game) {
		g.logger = l.WithField("game", g.Id.String())
	}
}
