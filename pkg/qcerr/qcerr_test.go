package qcerr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	. "github.com/andrew-torda/seqqc/pkg/qcerr"
)

func TestIsKindAndCause(t *testing.T) {
	e := New(ErrNotFound, "load", "x.json", fs.ErrNotExist)
	wrapped := fmt.Errorf("outer: %w", e)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatal("lost the kind after wrapping")
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Fatal("lost the cause after wrapping")
	}
	if errors.Is(wrapped, ErrInvalidInput) {
		t.Fatal("matched the wrong kind")
	}
	if KindOf(wrapped) != ErrNotFound {
		t.Fatal("KindOf wanted ErrNotFound, got", KindOf(wrapped))
	}
}

func TestKindOfForeign(t *testing.T) {
	if k := KindOf(errors.New("plain")); k != nil {
		t.Fatal("wanted nil kind for a foreign error, got", k)
	}
}

func TestMessage(t *testing.T) {
	e := New(ErrDecode, "decompress", "a.fq.gz", nil)
	s := e.Error()
	if s != "decompress a.fq.gz: decode error" {
		t.Fatalf("unexpected message \"%s\"", s)
	}
	e = New(ErrIO, "read", "", errors.New("broken pipe"))
	if s = e.Error(); !strings.HasSuffix(s, ": broken pipe") || strings.Contains(s, "read  ") {
		t.Fatalf("unexpected message \"%s\"", s)
	}
}
