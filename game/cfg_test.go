package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/gemhunters/model"
)

func TestReadBoardRoundTrip(t *testing.T) {
	b := model.NewBoard(&fixedRand{seq: []int{1, 2, 3, 4, 0, 5, 2, 2}})
	read, err := ReadBoard(strings.NewReader(b.Render()))
	require.NoError(t, err)
	assert.Equal(t, b.Render(), read.Render())
}

func TestReadBoardTolerance(t *testing.T) {
	// trailing spaces, CRLF and blank lines as written by other tools
	layout := "\r\nP - - - - - \r\n- G - - - - \n\n- - O - - -\n- - - - - -\n- - - - - -\n- - - - - P\n\n"
	b, err := ReadBoard(strings.NewReader(layout))
	require.NoError(t, err)
	assert.Equal(t, model.CellGem, b.Cell(model.Position{X: 1, Y: 1}))
	assert.Equal(t, model.CellObstacle, b.Cell(model.Position{X: 2, Y: 2}))
	assert.Equal(t, 2, b.Count(model.CellPlayer))
}

func TestReadBoardErrors(t *testing.T) {
	row := "- - - - - -\n"
	cases := map[string]string{
		"too few rows":         strings.Repeat(row, 5),
		"too many rows":        strings.Repeat(row, 7),
		"short row":            "- - - - -\n" + strings.Repeat(row, 5),
		"long row":             "- - - - - - -\n" + strings.Repeat(row, 5),
		"unknown marker":       "- - X - - -\n" + strings.Repeat(row, 5),
		"bad separator":        "--- - - -\n" + strings.Repeat(row, 5),
		"empty":                "",
		"gem on p1 start":      "G - - - - -\n" + strings.Repeat(row, 4) + "- - - - - P\n",
		"obstacle on p2 start": "P - - - - -\n" + strings.Repeat(row, 4) + "- - - - - O\n",
		"no players":           strings.Repeat(row, 6),
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadBoard(strings.NewReader(layout))
			assert.ErrorIs(t, err, ErrBoardFormat)
		})
	}
}

func TestLoadBoard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.txt")
	layout := "" +
		"P - - - - -\n" +
		"- - - - G -\n" +
		"- - - - - -\n" +
		"- O - - - -\n" +
		"- - - - - -\n" +
		"- - - - - P\n"
	require.NoError(t, os.WriteFile(path, []byte(layout), 0o600))

	b, err := LoadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, layout, b.Render())

	_, err = LoadBoard(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("P\n"), 0o600))
	_, err = LoadBoard(path)
	assert.ErrorIs(t, err, ErrBoardFormat)
	assert.Contains(t, err.Error(), path)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, log.WarnLevel, cfg.Level())
	assert.Empty(t, cfg.BoardFile)
	assert.True(t, cfg.RawKeys)
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("GEMHUNTERS_SEED", "42")
	t.Setenv("GEMHUNTERS_LOG_LEVEL", "debug")
	t.Setenv("GEMHUNTERS_BOARD_FILE", "/tmp/board.txt")
	t.Setenv("GEMHUNTERS_RAW_KEYS", "false")

	cfg, err := ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, "/tmp/board.txt", cfg.BoardFile)
	assert.False(t, cfg.RawKeys)

	// same seed, same board
	a := model.NewBoard(cfg.Rand())
	b := model.NewBoard(cfg.Rand())
	assert.Equal(t, a.Render(), b.Render())
}

func TestParseConfigErrors(t *testing.T) {
	t.Run("seed", func(t *testing.T) {
		t.Setenv("GEMHUNTERS_SEED", "not-a-number")
		_, err := ParseConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})
	t.Run("level", func(t *testing.T) {
		t.Setenv("GEMHUNTERS_LOG_LEVEL", "loud")
		_, err := ParseConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})
}

type fixedRand struct {
	seq []int
	i   int
}

func (f *fixedRand) Intn(n int) int {
	v := f.seq[f.i%len(f.seq)] % n
	f.i++
	return v
}
