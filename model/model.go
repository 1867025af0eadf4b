package model

const (
	Size      = 6
	Gems      = 5
	Obstacles = 5
)

type Cell rune

const (
	CellEmpty    Cell = '-'
	CellPlayer   Cell = 'P'
	CellGem      Cell = 'G'
	CellObstacle Cell = 'O'
)

func (c Cell) Valid() bool {
	switch c {
	case CellEmpty, CellPlayer, CellGem, CellObstacle:
		return true
	}
	return false
}

type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Position is a board coordinate, X is the column and Y the row.
type Position struct {
	X, Y int
}

type Player struct {
	name     string
	position Position
	gems     int
}

// Board is row-major: grid[y][x].
// Player markers are put down once and do not follow the players.
type Board struct {
	grid [Size][Size]Cell
}

// Rand is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}
