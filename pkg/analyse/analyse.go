// 14 Oct 2026

// Package analyse turns parsed records into results. Each record is
// looked at on its own, so the work can be shared out over goroutines.
// The results always come back in the same order as the records.
package analyse

import (
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/seqqc/pkg/result"
	"github.com/andrew-torda/seqqc/pkg/seq"
	"github.com/andrew-torda/seqqc/pkg/seqcalc"
)

// Options for Records. A nil *Options means one worker, the default
// ORF length and the default logger.
type Options struct {
	Workers   int // <= 1 is sequential
	MinORFLen int // <= 0 is seqcalc.DefaultMinORFLen
	Logger    *log.Logger
}

func (o *Options) get() (workers int, finder *seqcalc.Finder, logger *log.Logger) {
	if o == nil {
		return 1, seqcalc.NewFinder(0), log.Default()
	}
	workers, logger = o.Workers, o.Logger
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return workers, seqcalc.NewFinder(o.MinORFLen), logger
}

// One is the result for a single record. An invalid record, or a fastq
// record whose quality would go below zero, gives an invalid result.
func One(rec *seq.Record, finder *seqcalc.Finder) result.Result {
	if !rec.Valid {
		return result.NewInvalid(rec.Format, rec.ID, rec.Problem)
	}
	m := result.Metrics{
		GC:     seqcalc.GCContent(rec.Seq),
		NOrfs:  finder.Count(rec.Seq),
		SeqLen: rec.Len(),
	}
	if rec.Format == seq.Fastq {
		p, err := seqcalc.PhredScore(rec.Qual)
		if err != nil {
			return result.NewInvalid(rec.Format, rec.ID, err.Error())
		}
		m.Phred = &p
	}
	return result.NewValid(rec.Format, rec.ID, rec.Desc, m)
}

// Records gives one result per record, in order.
func Records(recs []seq.Record, opts *Options) []result.Result {
	workers, finder, logger := opts.get()
	rs := make([]result.Result, len(recs))
	if workers == 1 || len(recs) < 2 {
		for i := range recs {
			rs[i] = One(&recs[i], finder)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range recs {
			g.Go(func() error {
				rs[i] = One(&recs[i], finder)
				return nil
			})
		}
		g.Wait() // nothing in One can fail
	}
	nValid, nInvalid := result.Tally(rs)
	logger.Debug("analysed", "records", len(rs), "valid", nValid, "invalid", nInvalid, "workers", workers)
	return rs
}
