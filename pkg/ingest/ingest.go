// 14 Oct 2026

// Package ingest gets record text into memory. A file whose name ends
// in .gz is decompressed. Anything else is mapped and copied.
// Everything is read before any parsing happens, so a failure here
// means there are no records at all and the request is over.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/seqqc/pkg/qcerr"
	"github.com/andrew-torda/seqqc/pkg/zwrap"
)

// Options are for ReadFile. A nil *Options is fine.
type Options struct {
	// KeepExtracted writes the decompressed text next to the .gz file,
	// without the suffix. Nobody should depend on the file being there.
	KeepExtracted bool
	Logger        *log.Logger
}

func (o *Options) logger() *log.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// IsCompressed only looks at the last part of the name.
func IsCompressed(path string) bool { return zwrap.HasSuffix(filepath.Base(path)) }

// FromText is the way in for sequences pasted in as text.
func FromText(s string) []byte { return []byte(s) }

// ReadFile returns the whole content of a sequence file, decompressed
// if the name says it is compressed.
func ReadFile(path string, opts *Options) ([]byte, error) {
	if IsCompressed(path) {
		return readGz(path, opts)
	}
	return readPlain(path, opts)
}

// readPlain maps the file and takes a copy, so we can unmap straight away.
func readPlain(path string, opts *Options) ([]byte, error) {
	fp, err := open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, qcerr.New(qcerr.ErrIO, "stat", path, err)
	}
	if fi.Size() == 0 { // mmap does not like zero length files
		return []byte{}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, qcerr.New(qcerr.ErrIO, "mmap", path, err)
	}
	defer mm.Unmap()
	data := bytes.Clone(mm)
	opts.logger().Debug("read plain file", "path", path, "bytes", len(data))
	return data, nil
}

// open turns the os errors into our kinds. A directory cannot be read
// as a sequence file either.
func open(path string) (*os.File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, qcerr.New(qcerr.ErrIO, "open", path, err)
	}
	if fi, err := fp.Stat(); err == nil && fi.IsDir() {
		fp.Close()
		return nil, qcerr.New(qcerr.ErrIO, "open", path, fmt.Errorf("%w: is a directory", fs.ErrInvalid))
	}
	return fp, nil
}

func readGz(path string, opts *Options) ([]byte, error) {
	fp, err := open(path)
	if err != nil {
		return nil, err
	}
	data, err := Decompress(fp)
	if err != nil {
		var qe *qcerr.Error
		if errors.As(err, &qe) {
			qe.Path = path
		}
		return nil, err
	}
	opts.logger().Debug("decompressed", "path", path, "bytes", len(data))
	if opts != nil && opts.KeepExtracted {
		if err := keepExtracted(path, data, opts.logger()); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// readRecorder remembers if the reader under the decompressor failed,
// so we can tell a broken disk from a broken gzip stream.
type readRecorder struct {
	io.ReadCloser
	err error
}

func (r *readRecorder) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if err != nil && err != io.EOF {
		r.err = err
	}
	return n, err
}

// Decompress reads a whole gzip stream and closes rc. If rc itself
// fails, that is an io error. Anything wrong with the stream, including
// text that is not UTF-8, is a decode error.
func Decompress(rc io.ReadCloser) ([]byte, error) {
	rec := &readRecorder{ReadCloser: rc}
	classify := func(err error) error {
		if rec.err != nil {
			return qcerr.New(qcerr.ErrIO, "read", "", rec.err)
		}
		return qcerr.New(qcerr.ErrDecode, "decompress", "", err)
	}
	zr, err := zwrap.Wrap(rec)
	if err != nil {
		rc.Close()
		return nil, classify(err)
	}
	data, err := io.ReadAll(zr)
	cerr := zr.Close()
	if err != nil {
		return nil, classify(err)
	}
	if cerr != nil {
		return nil, qcerr.New(qcerr.ErrIO, "close", "", cerr)
	}
	if !utf8.Valid(data) {
		return nil, qcerr.New(qcerr.ErrDecode, "decompress", "", errors.New("decompressed data is not UTF-8 text"))
	}
	return data, nil
}

// keepExtracted writes the decompressed data to the sibling file.
func keepExtracted(path string, data []byte, logger *log.Logger) error {
	out := zwrap.TrimSuffix(path)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return qcerr.New(qcerr.ErrIO, "write extracted", out, err)
	}
	logger.Debug("kept extracted copy", "path", out)
	return nil
}
