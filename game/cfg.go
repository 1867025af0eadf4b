package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gemhunters/model"
)

var ErrBoardFormat = errors.New("bad board")

type Config struct {
	Seed      int64  `env:"GEMHUNTERS_SEED"`
	LogLevel  string `env:"GEMHUNTERS_LOG_LEVEL" envDefault:"warn"`
	BoardFile string `env:"GEMHUNTERS_BOARD_FILE"`
	RawKeys   bool   `env:"GEMHUNTERS_RAW_KEYS" envDefault:"true"`
}

func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// Rand is seeded from Seed, or from the clock when Seed is 0.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func LoadBoard(path string) (*model.Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer file.Close()
	b, err := ReadBoard(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithField("file", path).Info("LoadBoard done")
	return b, nil
}

// ReadBoard parses the Board.Render layout: one row per line, markers
// separated by single spaces. Blank lines and trailing spaces are ignored.
// Both start corners must hold a player marker.
func ReadBoard(reader io.Reader) (*model.Board, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	b := model.NewEmptyBoard()
	line := 0
	row := 0

	for scanner.Scan() {
		line++
		s := strings.TrimRight(scanner.Text(), " \r")
		if s == "" {
			continue
		}
		if row == model.Size {
			return nil, fmt.Errorf("%w: line %d: more than %d rows", ErrBoardFormat, line, model.Size)
		}
		col := 0
		for i, char := range s {
			if i%2 == 1 {
				if char != ' ' {
					return nil, fmt.Errorf("%w: line %d: expected space at %d, got %q", ErrBoardFormat, line, i+1, char)
				}
				continue
			}
			cell := model.Cell(char)
			if !cell.Valid() {
				return nil, fmt.Errorf("%w: line %d: unknown marker %q", ErrBoardFormat, line, char)
			}
			if col == model.Size {
				return nil, fmt.Errorf("%w: line %d: more than %d columns", ErrBoardFormat, line, model.Size)
			}
			b.SetCell(model.Position{X: col, Y: row}, cell)
			col++
		}
		if col != model.Size {
			return nil, fmt.Errorf("%w: line %d: %d columns, want %d", ErrBoardFormat, line, col, model.Size)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	if row != model.Size {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBoardFormat, row, model.Size)
	}
	for _, start := range []model.Position{StartP1, StartP2} {
		if c := b.Cell(start); c != model.CellPlayer {
			return nil, fmt.Errorf("%w: start %d,%d holds %q, want %q", ErrBoardFormat, start.X, start.Y, c, model.CellPlayer)
		}
	}
	return b, nil
}
