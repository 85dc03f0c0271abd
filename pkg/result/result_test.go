package result_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/seqqc/pkg/qcerr"
	. "github.com/andrew-torda/seqqc/pkg/result"
	"github.com/andrew-torda/seqqc/pkg/seq"
)

func phred(n uint64) *uint64 { return &n }

func someResults() []Result {
	return []Result{
		NewValid(seq.Fastq, "r1", "description", Metrics{GC: 0.5, NOrfs: 0, SeqLen: 4, Phred: phred(8)}),
		NewValid(seq.Fastq, "r2", "", Metrics{GC: 1. / 3., NOrfs: 2, SeqLen: 300}),
		NewInvalid(seq.Fastq, "r3", "empty quality"),
		NewInvalid(seq.Fastq, "", "text before first '@' line"),
		NewValid(seq.Fasta, "f1", "more words here", Metrics{GC: 0.123456789012345, NOrfs: 1, SeqLen: 51}),
		NewInvalid(seq.Fasta, "f2", "empty sequence"),
	}
}

func TestRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "results.json")
	want := someResults()
	if err := Save(fname, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal("round trip changed results (-want +got):\n", diff)
	}
}

func TestEmptyBatch(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "results.json")
	if err := Save(fname, nil); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(fname)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("empty batch written as \"%s\"", b)
	}
	if rs, err := Load(fname); err != nil || len(rs) != 0 {
		t.Fatal("empty batch read as", rs, err)
	}
}

// TestWire checks the names and which fields are there.
func TestWire(t *testing.T) {
	b, err := json.Marshal(someResults())
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	for i, m := range raw {
		_, hasPhred := m["phred_score"]
		if (m["result_type"] == "fastq") != hasPhred {
			t.Fatalf("element %d %s, phred_score present %v", i, m["result_type"], hasPhred)
		}
		for _, k := range []string{"id", "desc", "gc", "n_orfs", "seq_len", "result_type", "is_valid"} {
			if _, ok := m[k]; !ok {
				t.Fatal("element", i, "missing", k)
			}
		}
		if m["is_valid"] == false {
			if m["id"] != InvalidID || m["desc"] != "" || m["gc"].(float64) != 0 {
				t.Fatalf("invalid element %d has values %v", i, m)
			}
		}
	}
	if raw[0]["phred_score"].(float64) != 8 {
		t.Fatal("phred score", raw[0]["phred_score"])
	}
	if _, ok := raw[3]["original_id"]; ok {
		t.Fatal("empty original_id written")
	}
	if raw[2]["original_id"] != "r3" || raw[2]["reason"] != "empty quality" {
		t.Fatal("problem not written", raw[2])
	}
	if _, ok := raw[0]["reason"]; ok {
		t.Fatal("valid result has a reason")
	}
}

func TestFactories(t *testing.T) {
	p := phred(3)
	r := NewValid(seq.Fastq, "a", "", Metrics{Phred: p})
	*p = 99
	if r.Phred() != 3 {
		t.Fatal("result shares phred with caller")
	}
	if r := NewValid(seq.Fasta, "a", "", Metrics{Phred: phred(3)}); r.Metrics.Phred != nil {
		t.Fatal("fasta result kept a phred score")
	}
	inv := NewInvalid(seq.Fasta, "x", "why")
	if inv.Valid() || inv.ID != InvalidID || inv.Metrics != nil {
		t.Fatalf("invalid result %+v", inv)
	}
	if _, err := json.Marshal(Result{Format: seq.Fasta, ID: "zero"}); err == nil {
		t.Fatal("marshalled a result with no variant")
	}
}

func wrt(t *testing.T, s string) string {
	fname := filepath.Join(t.TempDir(), "r.json")
	if err := os.WriteFile(fname, []byte(s), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	type tcase struct {
		name string
		path string
		kind error
	}
	tcases := []tcase{
		{"missing", filepath.Join(dir, "nothing.json"), qcerr.ErrNotFound},
		{"directory", dir, qcerr.ErrInvalidInput},
		{"not json", wrt(t, "this is not json"), qcerr.ErrDecode},
		{"not an array", wrt(t, `{"id": "a"}`), qcerr.ErrDecode},
		{"unknown type", wrt(t, `[{"id":"a","result_type":"sam","is_valid":true}]`), qcerr.ErrDecode},
		{"fastq no phred", wrt(t, `[{"id":"a","result_type":"fastq","is_valid":true}]`), qcerr.ErrDecode},
		{"fasta with phred", wrt(t, `[{"id":"a","result_type":"fasta","is_valid":true,"phred_score":1}]`), qcerr.ErrDecode},
	}
	for _, tc := range tcases {
		_, err := Load(tc.path)
		if !errors.Is(err, tc.kind) {
			t.Fatalf("%s: wanted %v got %v", tc.name, tc.kind, err)
		}
	}
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	for _, fname := range []string{filepath.Join(dir, "no", "such", "dir", "r.json"), dir} {
		if err := Save(fname, someResults()); !errors.Is(err, qcerr.ErrIO) {
			t.Fatal("saving to", fname, "wanted io error, got", err)
		}
	}
}
