package model

import (
	"strings"
	"unicode"
)

func ParseDirection(r rune) Direction {
	switch unicode.ToUpper(r) {
	case 'U':
		return DirectionUp
	case 'D':
		return DirectionDown
	case 'L':
		return DirectionLeft
	case 'R':
		return DirectionRight
	}
	return DirectionNone
}

func (d Direction) Name() string {
	switch d {
	case DirectionUp:
		return "U"
	case DirectionDown:
		return "D"
	case DirectionLeft:
		return "L"
	case DirectionRight:
		return "R"
	default:
		return "none"
	}
}

// Step returns the neighbouring position. DirectionNone yields p itself.
func (p Position) Step(d Direction) Position {
	switch d {
	case DirectionUp:
		return Position{X: p.X, Y: p.Y - 1}
	case DirectionDown:
		return Position{X: p.X, Y: p.Y + 1}
	case DirectionLeft:
		return Position{X: p.X - 1, Y: p.Y}
	case DirectionRight:
		return Position{X: p.X + 1, Y: p.Y}
	}
	return p
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func NewPlayer(name string, start Position) *Player {
	return &Player{name: name, position: start}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Position() Position {
	return p.position
}

func (p *Player) Gems() int {
	return p.gems
}

// Move does not check bounds or obstacles, Board.IsValidMove does.
func (p *Player) Move(d Direction) {
	p.position = p.position.Step(d)
}

func (p *Player) CollectGem() {
	p.gems++
}

func NewEmptyBoard() *Board {
	b := &Board{}
	b.clear()
	return b
}

// NewBoard returns a board initialized from rng.
func NewBoard(rng Rand) *Board {
	b := &Board{}
	b.Initialize(rng)
	return b
}

func (b *Board) clear() {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.grid[y][x] = CellEmpty
		}
	}
}

// Initialize lays out a fresh board. Every gem and obstacle gets exactly one
// draw; a draw landing on an occupied cell is dropped, not retried.
func (b *Board) Initialize(rng Rand) {
	b.clear()
	b.grid[0][0] = CellPlayer
	b.grid[Size-1][Size-1] = CellPlayer

	b.scatter(rng, CellGem, Gems)
	b.scatter(rng, CellObstacle, Obstacles)
}

func (b *Board) scatter(rng Rand, c Cell, attempts int) {
	for i := 0; i < attempts; i++ {
		x := rng.Intn(Size)
		y := rng.Intn(Size)
		if b.grid[y][x] == CellEmpty {
			b.grid[y][x] = c
		}
	}
}

// Cell returns CellObstacle for positions off the board.
func (b *Board) Cell(p Position) Cell {
	if !p.InBounds() {
		return CellObstacle
	}
	return b.grid[p.Y][p.X]
}

func (b *Board) SetCell(p Position, c Cell) {
	if !p.InBounds() {
		return
	}
	b.grid[p.Y][p.X] = c
}

func (b *Board) Count(c Cell) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.grid[y][x] == c {
				n++
			}
		}
	}
	return n
}

func (b *Board) IsValidMove(p *Player, d Direction) bool {
	target := p.Position().Step(d)
	if !target.InBounds() {
		return false
	}
	return b.grid[target.Y][target.X] != CellObstacle
}

// CollectGemAt must be called after the player has moved onto its new cell.
func (b *Board) CollectGemAt(p *Player) bool {
	pos := p.Position()
	if !pos.InBounds() || b.grid[pos.Y][pos.X] != CellGem {
		return false
	}
	p.CollectGem()
	b.grid[pos.Y][pos.X] = CellEmpty
	return true
}

func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(Size * Size * 2)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(rune(b.grid[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
