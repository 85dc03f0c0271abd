// Package zwrap takes a file pointer and wraps it in a gzip reader so
// that upon calling Close, the decompressor will be closed, followed
// by the underlying file.
// We use pgzip rather than compress/gzip. Fastq files are big and
// decompression is most of the time spent on ingestion.
// Whether something is compressed is decided by the caller, from the
// file name. We do not sniff magic numbers.

package zwrap

import (
	"errors"
	"io"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

// Suffix marks a file as gzip compressed.
const Suffix = ".gz"

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying readCloser.
func (fc *FpGzip) Close() error {
	var errs []error
	if fc.zrdr != nil {
		if e := fc.zrdr.Close(); e != nil { // Close decompressor
			errs = append(errs, e)
		}
	}
	if e := fc.fp.Close(); e != nil { // and backing file
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.zrdr.Read(p) }

// Wrap takes a source like a file pointer and wraps it so the correct
// Close and Read will be called. If the header is broken, we return
// the error from gzip and the caller still owns fp.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, zrdr: zrdr}, nil
}

// HasSuffix says if a file name ends in .gz. Only the name matters.
func HasSuffix(name string) bool { return strings.HasSuffix(name, Suffix) }

// TrimSuffix gives the name a file would have after decompression.
func TrimSuffix(name string) string { return strings.TrimSuffix(name, Suffix) }
