// Reader for fasta format files.
// A record is a comment line starting with '>' and then any number of
// sequence lines. White space within sequence lines is thrown away.

package seq

import (
	"bytes"
)

const cmmtChar = '>'

type faLexer struct {
	lines
	recs []Record
	cur  Record
}

type faStateFn func(*faLexer) faStateFn

// removeWhite appends s to dst, without any white space.
func removeWhite(dst, s []byte) []byte {
	for _, c := range s {
		switch c {
		case ' ', '\t', '\v', '\f', '\r':
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// finish checks the current record and stores it or a placeholder.
func (l *faLexer) finish() {
	if l.cur.check(); l.cur.Valid {
		l.recs = append(l.recs, l.cur)
		return
	}
	l.recs = append(l.recs, invalid(Fasta, l.cur.ID, l.cur.Problem))
}

// gstart is before the first comment. Anything here that is not
// white space is a broken record, but only one.
func gstart(l *faLexer) faStateFn {
	junk := false
	for {
		line, ok := l.next()
		if !ok {
			break
		}
		if len(line) > 0 && line[0] == cmmtChar {
			l.unread(line)
			break
		}
		if len(bytes.TrimSpace(line)) != 0 {
			junk = true
		}
	}
	if junk {
		l.recs = append(l.recs, invalid(Fasta, "", "text before first '>' line"))
	}
	return gcmmt
}

// We are reading a comment
func gcmmt(l *faLexer) faStateFn {
	line, ok := l.next()
	if !ok {
		return nil
	}
	l.cur = Record{Format: Fasta}
	l.cur.ID, l.cur.Desc = splitHeader(line[1:])
	return gseq
}

// We are reading a sequence. It ends at the next comment or the end
// of input.
func gseq(l *faLexer) faStateFn {
	for {
		line, ok := l.next()
		if !ok {
			l.finish()
			return nil
		}
		if len(line) > 0 && line[0] == cmmtChar {
			l.finish()
			l.unread(line)
			return gcmmt
		}
		l.cur.Seq = removeWhite(l.cur.Seq, line)
	}
}

// ReadFasta reads fasta formatted data. It does not return an error.
// Broken records come back with Valid set to false.
func ReadFasta(data []byte) []Record {
	l := faLexer{lines: lines{buf: data}}
	for state := gstart; state != nil; {
		state = state(&l)
	}
	return l.recs
}
