package hyperml

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// sink adapts an io.Writer to the builder's write primitive. In-memory
// destinations are written directly; anything else goes through a
// bufio.Writer that is flushed when the element stack empties.
type sink struct {
	w    io.StringWriter
	buf  *bufio.Writer
	dest io.Writer
}

func newSink(w io.Writer) *sink {
	switch d := w.(type) {
	case *strings.Builder:
		return &sink{w: d, dest: w}
	case *bytes.Buffer:
		return &sink{w: d, dest: w}
	}
	bw := bufio.NewWriter(w)
	return &sink{w: bw, buf: bw, dest: w}
}

func (s *sink) WriteString(str string) (int, error) {
	return s.w.WriteString(str)
}

func (s *sink) Flush() error {
	if s.buf == nil {
		return nil
	}
	return s.buf.Flush()
}

// Buffered returns the number of bytes not yet handed to the destination.
func (s *sink) Buffered() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Buffered()
}

// String returns what the destination holds when it can report it.
func (s *sink) String() (string, bool) {
	if st, ok := s.dest.(fmt.Stringer); ok {
		return st.String(), true
	}
	return "", false
}
