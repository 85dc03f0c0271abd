// 20 Dec 2017
// 14 Oct 2026 rewritten for fasta and fastq records.

// Package seq reads sequence records in fasta and fastq format.
// Reading never fails. A record that is broken (no sequence, no
// quality line, lengths do not match, file ends in the middle) comes
// back as a placeholder with Valid false, and we carry on with the next
// record. The caller gets exactly one Record per record in the input,
// in the input order.
//
// The input is a byte slice which is already in memory. Getting it
// there, possibly decompressing, is the job of package ingest.
package seq

import (
	"bytes"
	"fmt"
)

// Format says which of the two text formats a record came from.
type Format byte

const (
	Unknown Format = iota
	Fasta          // ">id desc" then sequence lines
	Fastq          // "@id desc", sequence, "+", quality
)

// String gives the name used in saved results.
func (f Format) String() string {
	switch f {
	case Fasta:
		return "fasta"
	case Fastq:
		return "fastq"
	}
	return "unknown"
}

// ParseFormat is the inverse of String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "fasta":
		return Fasta, nil
	case "fastq":
		return Fastq, nil
	}
	return Unknown, fmt.Errorf("unknown sequence format \"%s\"", s)
}

// Record is one fasta or fastq entry. Qual is nil for fasta.
// If Valid is false, Problem says why. ID may still be set if we
// could get it from the header line.
type Record struct {
	ID      string
	Desc    string
	Seq     []byte
	Qual    []byte
	Format  Format
	Valid   bool
	Problem string
}

// Len is the number of bases.
func (r *Record) Len() int { return len(r.Seq) }

// check decides if a record is valid and sets Valid and Problem.
func (r *Record) check() {
	switch {
	case r.ID == "":
		r.Problem = "empty identifier"
	case len(r.Seq) == 0:
		r.Problem = "empty sequence"
	case r.Format == Fastq && len(r.Qual) == 0:
		r.Problem = "empty quality"
	case r.Format == Fastq && len(r.Qual) != len(r.Seq):
		r.Problem = fmt.Sprintf("sequence length %d but quality length %d", len(r.Seq), len(r.Qual))
	default:
		r.Valid = true
		r.Problem = ""
		return
	}
	r.Valid = false
}

// invalid makes a placeholder. We keep the ID, but nothing else.
func invalid(format Format, id, problem string) Record {
	return Record{ID: id, Format: format, Problem: problem}
}

// splitHeader takes a header line without its leading '>' or '@'.
// The identifier is the first word. The description is whatever is
// left, without white space at the ends.
func splitHeader(h []byte) (id, desc string) {
	h = bytes.TrimSpace(h)
	i := bytes.IndexAny(h, " \t")
	if i == -1 {
		return string(h), ""
	}
	return string(h[:i]), string(bytes.TrimSpace(h[i+1:]))
}

// Read dispatches on format. Any format other than Fasta or Fastq is
// a programming error and Read panics.
func Read(data []byte, format Format) []Record {
	switch format {
	case Fastq:
		return ReadFastq(data)
	case Fasta:
		return ReadFasta(data)
	}
	panic("seq.Read called with format " + format.String())
}
