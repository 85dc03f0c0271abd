// Reader for fastq format. Each record is four lines.
//   @id description
//   sequence
//   +[optional repeat of the id]
//   quality
// Sequences may not be wrapped over lines.

package seq

import (
	"bytes"
	"fmt"
)

const (
	fqHdrChar = '@'
	fqSepChar = '+'
)

type fqLexer struct {
	lines
	recs []Record
	cur  Record
}

type fqStateFn func(*fqLexer) fqStateFn

// bad finishes the current record as a placeholder.
func (l *fqLexer) bad(format string, a ...any) {
	l.recs = append(l.recs, invalid(Fastq, l.cur.ID, fmt.Sprintf(format, a...)))
}

// fqHeader looks for the start of a record. Blank lines between
// records are not a problem.
func fqHeader(l *fqLexer) fqStateFn {
	for {
		line, ok := l.next()
		if !ok {
			return nil
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		l.cur = Record{Format: Fastq}
		if line[0] != fqHdrChar {
			l.bad("line %d: expected '%c' at start of record", l.n, fqHdrChar)
			return fqSkip
		}
		l.cur.ID, l.cur.Desc = splitHeader(line[1:])
		return fqSeq
	}
}

// fqSkip throws away lines after a broken header, until something
// that looks like the next header.
func fqSkip(l *fqLexer) fqStateFn {
	for {
		line, ok := l.next()
		if !ok {
			return nil
		}
		if len(line) > 0 && line[0] == fqHdrChar {
			l.unread(line)
			return fqHeader
		}
	}
}

// fqSeq reads the sequence line. If we see the separator, the
// sequence line was missing altogether. '+' is never a base, so
// there is no ambiguity. A header followed by the rest of a record
// means this record is only a header line.
func fqSeq(l *fqLexer) fqStateFn {
	line, ok := l.next()
	if !ok {
		l.bad("truncated record, no sequence line")
		return nil
	}
	if len(line) > 0 && line[0] == fqSepChar {
		l.unread(line)
		return fqPlus
	}
	if len(line) > 0 && line[0] == fqHdrChar && l.looksLikeHeader() {
		l.bad("line %d: missing sequence line", l.n)
		l.unread(line)
		return fqHeader
	}
	l.cur.Seq = bytes.Clone(bytes.TrimSpace(line))
	return fqPlus
}

// fqPlus wants the separator line.
func fqPlus(l *fqLexer) fqStateFn {
	line, ok := l.next()
	if !ok {
		l.bad("truncated record, no '%c' line", fqSepChar)
		return nil
	}
	if len(line) == 0 || line[0] != fqSepChar {
		l.bad("line %d: expected '%c' line", l.n, fqSepChar)
		if len(line) > 0 && line[0] == fqHdrChar {
			l.unread(line)
			return fqHeader
		}
		return fqSkip
	}
	return fqQual
}

// looksLikeHeader is for a line starting with '@' where we expected
// quality. It is a header if, one line later, there is a '+' line.
func (l *fqLexer) looksLikeHeader() bool {
	sep, ok := l.ahead(1)
	return ok && len(sep) > 0 && sep[0] == fqSepChar
}

// fqQual reads the quality line. Quality lines may start with '@', so
// we only take such a line as the next header if its length does not
// fit the sequence and what follows looks like a record.
func fqQual(l *fqLexer) fqStateFn {
	line, ok := l.next()
	if !ok {
		l.bad("truncated record, no quality line")
		return nil
	}
	if len(line) > 0 && line[0] == fqHdrChar && len(line) != len(l.cur.Seq) && l.looksLikeHeader() {
		l.bad("line %d: missing quality line", l.n)
		l.unread(line)
		return fqHeader
	}
	l.cur.Qual = bytes.Clone(bytes.TrimRight(line, " \t"))
	if l.cur.check(); l.cur.Valid {
		l.recs = append(l.recs, l.cur)
	} else {
		l.bad("%s", l.cur.Problem)
	}
	return fqHeader
}

// ReadFastq reads fastq formatted data. It does not return an error.
// Broken records come back with Valid set to false.
func ReadFastq(data []byte) []Record {
	l := fqLexer{lines: lines{buf: data}}
	for state := fqHeader; state != nil; {
		state = state(&l)
	}
	return l.recs
}
