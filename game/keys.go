package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/term"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrInterrupted = errors.New("interrupted")
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyEsc   = 0x1b

	keyBufSize = 32
)

type KeyReader interface {
	ReadKey() (rune, error)
}

// NewKeyReader reads single keystrokes when raw is set and in is a terminal,
// and whole runes from buffered input otherwise.
func NewKeyReader(in *os.File, echo io.Writer, raw bool) KeyReader {
	if raw && term.IsTerminal(int(in.Fd())) {
		return &RawKeyReader{in: in, echo: echo}
	}
	return NewLineKeyReader(in)
}

type LineKeyReader struct {
	r *bufio.Reader
}

func NewLineKeyReader(r io.Reader) *LineKeyReader {
	return &LineKeyReader{r: bufio.NewReader(r)}
}

// ReadKey skips line terminators.
func (k *LineKeyReader) ReadKey() (rune, error) {
	for {
		r, _, err := k.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrInputClosed
			}
			return 0, err
		}
		if r == '\n' || r == '\r' {
			continue
		}
		return r, nil
	}
}

// RawKeyReader holds the terminal in raw mode only while a key is read.
type RawKeyReader struct {
	in   *os.File
	echo io.Writer
}

// ReadKey returns one rune per keypress. A raw read hands back everything the
// key sent at once, so escape sequences (arrows, function keys) come back as a
// single keyEsc and multi-byte letters as one decoded rune.
func (k *RawKeyReader) ReadKey() (rune, error) {
	fd := int(k.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("raw mode: %w", err)
	}
	var buf [keyBufSize]byte
	n, err := k.in.Read(buf[:])
	if rerr := term.Restore(fd, state); rerr != nil && err == nil {
		err = fmt.Errorf("restore terminal: %w", rerr)
	}
	if err == nil && n == 0 {
		err = io.EOF
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrInputClosed
		}
		return 0, err
	}

	switch buf[0] {
	case keyCtrlC:
		return 0, ErrInterrupted
	case keyCtrlD:
		return 0, ErrInputClosed
	case keyEsc:
		return keyEsc, nil
	}
	r, _ := utf8.DecodeRune(buf[:n])
	if k.echo != nil && unicode.IsPrint(r) {
		fmt.Fprintf(k.echo, "%c", r)
	}
	return r, nil
}
