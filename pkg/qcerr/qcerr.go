// 14 Oct 2026

// Package qcerr holds the error kinds that can stop a whole request.
// A bad record is never one of these. It becomes an invalid result.
// Check the kind with errors.Is(err, qcerr.ErrNotFound) and so on.
// The underlying cause (fs.ErrNotExist, gzip.ErrHeader, ...) is still
// reachable with errors.Is / errors.As.
package qcerr

import (
	"errors"
	"strings"
)

// The kinds of failure a caller may want to tell apart.
var (
	ErrIO           = errors.New("io error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDecode       = errors.New("decode error")
)

// Error carries the kind, the operation and path we were working on
// and the original error.
type Error struct {
	Kind error  // one of the Err* values above
	Op   string // "open", "decompress", "save", "load", ...
	Path string // may be empty for text input
	Err  error  // cause, may be nil
}

// New is a shorthand for building an *Error.
func New(kind error, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// Error gives something like
//
//	load results.json: not found: open results.json: no such file or directory
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap lets errors.Is see both the kind and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of err, or nil if err did not come from here.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
