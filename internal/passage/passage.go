// Package passage reads a text source line by line.
package passage

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultFile is the passage read when no other file is named.
const DefaultFile = "passage.txt"

const maxLineSize = 64 << 20

// ErrUnreadable is wrapped by Open when the source cannot be opened.
var ErrUnreadable = errors.New("could not read file")

// Source is an open passage. Its lines can be consumed once.
type Source struct {
	name    string
	rc      io.ReadCloser
	scanner *bufio.Scanner
	err     error
	closed  bool
}

func Open(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadable, "%s: %v", name, err)
	}
	if info, err := f.Stat(); err != nil || info.IsDir() {
		f.Close()
		if err == nil {
			err = errors.New("is a directory")
		}
		return nil, errors.Wrapf(ErrUnreadable, "%s: %v", name, err)
	}
	return FromReader(name, f), nil
}

// FromReader wraps an already open stream. Close closes rc.
func FromReader(name string, rc io.ReadCloser) *Source {
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	return &Source{name: name, rc: rc, scanner: scanner}
}

func (s *Source) Name() string {
	return s.name
}

// scanLines is bufio.ScanLines that also ends a line at a lone '\r'.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Lines yields every remaining line with surrounding whitespace removed.
func (s *Source) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.closed {
			return
		}
		for s.scanner.Scan() {
			if !yield(strings.TrimSpace(s.scanner.Text())) {
				return
			}
		}
		if err := s.scanner.Err(); err != nil {
			s.err = errors.Wrapf(err, "reading %s", s.name)
		}
	}
}

// Err returns the error that stopped Lines, if any.
func (s *Source) Err() error {
	return s.err
}

func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.rc.Close()
}

// Read opens name, passes its lines to fn and closes it again, also when
// fn or the read fails.
func Read(name string, fn func(lines iter.Seq[string])) (err error) {
	src, err := Open(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", src.Name())
		}
	}()
	fn(src.Lines())
	return src.Err()
}
