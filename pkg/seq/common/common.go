// 29 Apr 2020
// 14 Oct 2026 fastq, gzip helpers

package common

import (
	"fmt"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// suffix is stuck on the end of the name, so ".fq" gives "..._testing123.fq"
func WrtTemp(s, suffix string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+suffix)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

// WrtTempGz is like WrtTemp, but compresses the string. The name
// always ends in .gz
func WrtTempGz(s, suffix string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+suffix+".gz")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	zw := gzip.NewWriter(f_tmp)
	if _, err := io.WriteString(zw, s); err != nil {
		return "", fmt.Errorf("compressing to temp file %v: %w", f_tmp.Name(), err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("closing compressor on %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
