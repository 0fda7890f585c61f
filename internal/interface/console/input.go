package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrInputEnded is returned when the input stream closes before the session finishes.
var ErrInputEnded = errors.New("console: input ended")

// IsInteractive reports whether f is attached to a terminal.
// Prompts are only worth printing when someone is typing.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type line struct {
	text string
	err  error
}

// lineReader delivers input lines on a channel so reads can be abandoned
// when the context is canceled. close releases the scanning goroutine; one
// blocked inside r.Read exits once that Read returns.
type lineReader struct {
	lines chan line
	done  chan struct{}
	once  sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		lines: make(chan line),
		done:  make(chan struct{}),
	}
	go lr.scan(r)
	return lr
}

func (lr *lineReader) scan(r io.Reader) {
	defer close(lr.lines)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !lr.send(line{text: strings.TrimRight(sc.Text(), "\r")}) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		lr.send(line{err: err})
	}
}

// send reports false once the reader has been closed.
func (lr *lineReader) send(l line) bool {
	select {
	case lr.lines <- l:
		return true
	case <-lr.done:
		return false
	}
}

// close stops delivery. It is safe to call more than once.
func (lr *lineReader) close() {
	lr.once.Do(func() { close(lr.done) })
}

// next returns the next line, ErrInputEnded on EOF, or ctx.Err() on cancel.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-lr.lines:
		if !ok {
			return "", ErrInputEnded
		}
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}
