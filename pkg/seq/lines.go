package seq

import "bytes"

const NL = '\n'

// lines walks over a buffer, one line at a time. There is no limit on
// line length, unlike bufio.Scanner. Fasta files sometimes have the
// whole chromosome on one line.
type lines struct {
	buf  []byte
	n    int // number of the line last returned, from 1
	peek []byte
	held bool
}

// next returns the next line without the newline or a trailing '\r'.
// ok is false at the end of the input. A final line without a
// newline is still a line. A buffer ending in a newline does not have
// an extra empty line after it.
func (l *lines) next() (line []byte, ok bool) {
	if l.held {
		l.held = false
		l.n++
		return l.peek, true
	}
	if len(l.buf) == 0 {
		return nil, false
	}
	if ndx := bytes.IndexByte(l.buf, NL); ndx == -1 {
		line, l.buf = l.buf, nil
	} else {
		line, l.buf = l.buf[:ndx], l.buf[ndx+1:]
	}
	l.n++
	return bytes.TrimSuffix(line, []byte{'\r'}), true
}

// ahead returns the line k places after the next one, without moving.
// ahead(0) is what next() would give.
func (l *lines) ahead(k int) (line []byte, ok bool) {
	c := *l
	for i := 0; i <= k; i++ {
		if line, ok = c.next(); !ok {
			return nil, false
		}
	}
	return line, true
}

// unread pushes the line back, so the next call to next() gives it again.
func (l *lines) unread(line []byte) {
	l.peek = line
	l.held = true
	l.n--
}
