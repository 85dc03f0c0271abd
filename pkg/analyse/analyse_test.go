package analyse_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/seqqc/pkg/analyse"
	"github.com/andrew-torda/seqqc/pkg/randseq"
	"github.com/andrew-torda/seqqc/pkg/result"
	"github.com/andrew-torda/seqqc/pkg/seq"
	"github.com/andrew-torda/seqqc/pkg/seqcalc"
)

func TestTwoFastq(t *testing.T) {
	s := "@id description\nATAT\n+\n!!!!\n@id description\nGCGC\n+\n!!!!\n"
	rs := Records(seq.ReadFastq([]byte(s)), nil)
	if len(rs) != 2 {
		t.Fatal("wanted 2 results, got", len(rs))
	}
	for i, gc := range []float64{0, 1} {
		r := rs[i]
		if !r.Valid() || r.ID != "id" || r.Desc != "description" {
			t.Fatalf("result %d %+v", i, r)
		}
		if r.Metrics.GC != gc || r.Metrics.NOrfs != 0 || r.Metrics.SeqLen != 4 || r.Phred() != 0 {
			t.Fatalf("result %d metrics %+v", i, *r.Metrics)
		}
	}
}

func TestInvalid(t *testing.T) {
	s := "@a\nACGT\n+\n!!!!\n@b x\n\n+\n!!!!\n@c\nAC\n+\n !\n"
	rs := Records(seq.ReadFastq([]byte(s)), nil)
	if len(rs) != 3 {
		t.Fatal("wanted 3 results, got", len(rs))
	}
	if !rs[0].Valid() || rs[1].Valid() || rs[2].Valid() {
		t.Fatal("wrong validity", rs)
	}
	if rs[1].ID != result.InvalidID || rs[1].Problem.OriginalID != "b" {
		t.Fatalf("missing sequence gave %+v %+v", rs[1], rs[1].Problem)
	}
	if !strings.Contains(rs[2].Problem.Reason, "below") {
		t.Fatal("underflow reason is", rs[2].Problem.Reason)
	}
}

func TestFasta(t *testing.T) {
	orf := "ATG" + strings.Repeat("GCA", 15) + "TAA"
	s := ">x one\n" + orf + "\n>y\nAAAA\n>z\n"
	rs := Records(seq.ReadFasta([]byte(s)), &Options{MinORFLen: 0})
	if len(rs) != 3 {
		t.Fatal("wanted 3, got", len(rs))
	}
	if rs[0].Metrics.NOrfs != 1 || rs[0].Metrics.SeqLen != len(orf) || rs[0].Metrics.Phred != nil {
		t.Fatalf("first fasta result %+v", *rs[0].Metrics)
	}
	if rs[1].Metrics.GC != 0 || rs[2].Valid() {
		t.Fatal("fasta results", rs[1], rs[2])
	}
	if n := Records(seq.ReadFasta([]byte(s)), &Options{MinORFLen: 500})[0].Metrics.NOrfs; n != 0 {
		t.Fatal("min orf length ignored, got", n)
	}
}

// TestParallel checks order and content do not depend on the number
// of workers.
func TestParallel(t *testing.T) {
	for _, f := range []seq.Format{seq.Fasta, seq.Fastq} {
		var sb strings.Builder
		args := randseq.RandSeqArgs{Wrtr: &sb, Nseq: 2000, Len: 300, Format: f, MkErr: true, Iseed: 99}
		if err := randseq.RandSeqMain(&args); err != nil {
			t.Fatal(err)
		}
		recs := seq.Read([]byte(sb.String()), f)
		seqRes := Records(recs, &Options{Workers: 1})
		parRes := Records(recs, &Options{Workers: 4})
		if diff := cmp.Diff(seqRes, parRes); diff != "" {
			t.Fatal(f, "parallel differs from sequential:\n", diff)
		}
		if _, nInvalid := result.Tally(parRes); nInvalid != randseq.NBroken(&args) {
			t.Fatal(f, "wanted", randseq.NBroken(&args), "invalid, got", nInvalid)
		}
	}
}

func TestOne(t *testing.T) {
	recs := seq.ReadFastq([]byte("@a\nGGCC\n+\n####\n"))
	r := One(&recs[0], seqcalc.NewFinder(0))
	if r.Phred() != 8 || r.Metrics.GC != 1 {
		t.Fatalf("%+v", *r.Metrics)
	}
}

func BenchmarkRecords(b *testing.B) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Wrtr: &sb, Nseq: 1000, Len: 1000, Format: seq.Fastq}
	if err := randseq.RandSeqMain(&args); err != nil {
		b.Fatal(err)
	}
	recs := seq.ReadFastq([]byte(sb.String()))
	for _, w := range []int{1, 4} {
		b.Run(map[int]string{1: "sequential", 4: "4 workers"}[w], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Records(recs, &Options{Workers: w})
			}
		})
	}
}
