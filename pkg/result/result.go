// 14 Oct 2026

// Package result has the outcome of analysing one record, and the
// store that writes a batch of them to a JSON file and reads them back.
//
// A Result is either valid, with Metrics, or invalid, with a Problem.
// Never both. Make them with NewValid and NewInvalid.
package result

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andrew-torda/seqqc/pkg/seq"
)

// InvalidID is the id reported for every invalid result. The id from
// the broken record, if there was one, goes in Problem.OriginalID.
const InvalidID = "Invalid Record"

// Metrics are the numbers for a valid record. Phred is only set for
// fastq.
type Metrics struct {
	GC     float64
	NOrfs  int
	SeqLen int
	Phred  *uint64
}

// Problem says which record was broken and why.
type Problem struct {
	OriginalID string
	Reason     string
}

type Result struct {
	Format  seq.Format
	ID      string
	Desc    string
	Metrics *Metrics
	Problem *Problem
}

// NewValid makes a valid result. For fastq, a nil m.Phred becomes zero.
// For fasta it is dropped.
func NewValid(format seq.Format, id, desc string, m Metrics) Result {
	switch format {
	case seq.Fastq:
		if m.Phred == nil {
			m.Phred = new(uint64)
		} else {
			p := *m.Phred
			m.Phred = &p
		}
	default:
		m.Phred = nil
	}
	return Result{Format: format, ID: id, Desc: desc, Metrics: &m}
}

// NewInvalid makes a placeholder result. originalID may be empty.
func NewInvalid(format seq.Format, originalID, reason string) Result {
	return Result{
		Format:  format,
		ID:      InvalidID,
		Problem: &Problem{OriginalID: originalID, Reason: reason},
	}
}

func (r *Result) Valid() bool { return r.Metrics != nil }

// Phred is zero for fasta and for invalid results.
func (r *Result) Phred() uint64 {
	if r.Metrics == nil || r.Metrics.Phred == nil {
		return 0
	}
	return *r.Metrics.Phred
}

// wire is the flat layout in the file.
type wire struct {
	ID         string  `json:"id"`
	Desc       string  `json:"desc"`
	GC         float64 `json:"gc"`
	NOrfs      int     `json:"n_orfs"`
	SeqLen     int     `json:"seq_len"`
	ResultType string  `json:"result_type"`
	IsValid    bool    `json:"is_valid"`
	Phred      *uint64 `json:"phred_score,omitempty"`
	OriginalID string  `json:"original_id,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

var errNoVariant = errors.New("result has neither metrics nor problem")

func (r Result) MarshalJSON() ([]byte, error) {
	w := wire{ID: r.ID, Desc: r.Desc, ResultType: r.Format.String()}
	switch {
	case r.Metrics != nil:
		w.IsValid = true
		w.GC = r.Metrics.GC
		w.NOrfs = r.Metrics.NOrfs
		w.SeqLen = r.Metrics.SeqLen
	case r.Problem != nil:
		w.OriginalID = r.Problem.OriginalID
		w.Reason = r.Problem.Reason
	default:
		return nil, errNoVariant
	}
	if r.Format == seq.Fastq {
		p := r.Phred()
		w.Phred = &p
	}
	return json.Marshal(w)
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	format, err := seq.ParseFormat(w.ResultType)
	if err != nil {
		return err
	}
	switch {
	case format == seq.Fastq && w.Phred == nil:
		return fmt.Errorf("fastq result \"%s\" without phred_score", w.ID)
	case format == seq.Fasta && w.Phred != nil:
		return fmt.Errorf("fasta result \"%s\" with phred_score", w.ID)
	}
	if !w.IsValid {
		*r = NewInvalid(format, w.OriginalID, w.Reason)
		return nil
	}
	*r = NewValid(format, w.ID, w.Desc, Metrics{
		GC: w.GC, NOrfs: w.NOrfs, SeqLen: w.SeqLen, Phred: w.Phred})
	return nil
}

// Tally counts valid and invalid results.
func Tally(rs []Result) (nValid, nInvalid int) {
	for i := range rs {
		if rs[i].Valid() {
			nValid++
		}
	}
	return nValid, len(rs) - nValid
}
