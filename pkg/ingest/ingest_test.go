package ingest_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	gzip "github.com/klauspost/pgzip"

	"github.com/andrew-torda/seqqc/pkg/brokenio"
	. "github.com/andrew-torda/seqqc/pkg/ingest"
	"github.com/andrew-torda/seqqc/pkg/qcerr"
	. "github.com/andrew-torda/seqqc/pkg/seq/common"
)

const fq = "@id description\nATAT\n+\n!!!!\n@id2 description\nGCGC\n+\n!!!!\n"

func gzBytes(t *testing.T, s []byte) []byte {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := zw.Write(s); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func wrtBytes(t *testing.T, b []byte, name string) string {
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestPlainAndGz(t *testing.T) {
	plain, err := WrtTemp(fq, ".fq")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(plain)
	zipped, err := WrtTempGz(fq, ".fq")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(zipped)

	for _, fname := range []string{plain, zipped} {
		b, err := ReadFile(fname, nil)
		if err != nil {
			t.Fatal("reading", fname, err)
		}
		if string(b) != fq {
			t.Fatalf("%s gave \"%s\"", fname, b)
		}
	}
	if _, err := os.Stat(zipped[:len(zipped)-3]); err == nil {
		t.Fatal("extracted copy written without being asked for")
	}
}

func TestKeepExtracted(t *testing.T) {
	fname := wrtBytes(t, gzBytes(t, []byte(fq)), "reads.fq.gz")
	if _, err := ReadFile(fname, &Options{KeepExtracted: true}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(filepath.Dir(fname), "reads.fq"))
	if err != nil {
		t.Fatal("no extracted copy", err)
	}
	if string(b) != fq {
		t.Fatalf("extracted copy wrong \"%s\"", b)
	}
}

func TestEmptyFile(t *testing.T) {
	fname := wrtBytes(t, nil, "empty.fa")
	b, err := ReadFile(fname, nil)
	if err != nil || len(b) != 0 {
		t.Fatal("empty file gave", len(b), "bytes and", err)
	}
}

func TestMissingAndDir(t *testing.T) {
	dir := t.TempDir()
	for _, fname := range []string{filepath.Join(dir, "not_there.fq"), filepath.Join(dir, "nope.fq.gz")} {
		_, err := ReadFile(fname, nil)
		if !errors.Is(err, qcerr.ErrIO) || !errors.Is(err, fs.ErrNotExist) {
			t.Fatal("missing file wanted io error, got", err)
		}
	}
	if _, err := ReadFile(dir, nil); !errors.Is(err, qcerr.ErrIO) {
		t.Fatal("directory wanted io error, got", err)
	}
}

func TestBadGz(t *testing.T) {
	good := gzBytes(t, []byte(fq))
	type tcase struct {
		name string
		data []byte
	}
	tcases := []tcase{
		{"not compressed", []byte(fq)},
		{"empty", []byte{}},
		{"shorter than header", []byte(">a\nACGT\n")},
		{"truncated", good[:len(good)/2]},
		{"not utf8", gzBytes(t, []byte{'@', 'a', '\n', 0xff, 0xfe, '\n'})},
	}
	for _, tc := range tcases {
		fname := wrtBytes(t, tc.data, "bad.fq.gz")
		_, err := ReadFile(fname, nil)
		if !errors.Is(err, qcerr.ErrDecode) {
			t.Fatalf("%s: wanted decode error, got %v", tc.name, err)
		}
	}
}

// TestBrokenStream has the disk die under the decompressor.
func TestBrokenStream(t *testing.T) {
	big := bytes.Repeat([]byte(fq), 5000)
	for _, n := range []int64{0, 5, 100} {
		rdr := brokenio.NewReader(io.NopCloser(bytes.NewReader(gzBytes(t, big))), 1)
		rdr.SetFailAfter(n)
		_, err := Decompress(rdr)
		if !errors.Is(err, qcerr.ErrIO) || !errors.Is(err, brokenio.ErrInjected) {
			t.Fatal("fail after", n, "wanted io error, got", err)
		}
	}
}

func TestIsCompressed(t *testing.T) {
	type tcase struct {
		path string
		want bool
	}
	for _, tc := range []tcase{
		{"a.fq.gz", true},
		{"/some/where/reads.fastq.gz", true},
		{"x.gz/reads.fq", false},
		{"reads.fq", false},
		{"reads.gzip", false},
	} {
		if got := IsCompressed(tc.path); got != tc.want {
			t.Fatal(tc.path, "got", got)
		}
	}
}

func TestFromText(t *testing.T) {
	if string(FromText(fq)) != fq {
		t.Fatal("text changed on the way in")
	}
}
