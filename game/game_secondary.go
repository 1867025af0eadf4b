package game

import (
	"fmt"
)

const (
	MSG_TURN      = "It's %s's turn.\n"
	MSG_PROMPT    = "Enter direction (U/D/L/R): "
	MSG_INVALID   = "Invalid move. Try again."
	MSG_GAME_OVER = "Game over!"
	MSG_TIE       = "It's a tie!"
)

func (gs GameState) Name() string {
	switch gs {
	case GS_NEW:
		return "GS_NEW"
	case GS_AWAIT:
		return "GS_AWAIT"
	case GS_APPLIED:
		return "GS_APPLIED"
	case GS_SWITCH:
		return "GS_SWITCH"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gs)
	}
}

func (o Outcome) Name() string {
	switch o {
	case Tie:
		return "tie"
	case Player1Wins:
		return "player 1"
	case Player2Wins:
		return "player 2"
	default:
		return "N/A"
	}
}

func (r Result) Announcement() string {
	switch r.Outcome {
	case Player1Wins:
		return fmt.Sprintf("Player 1 wins with %d gems!", r.Gems[0])
	case Player2Wins:
		return fmt.Sprintf("Player 2 wins with %d gems!", r.Gems[1])
	default:
		return MSG_TIE
	}
}
