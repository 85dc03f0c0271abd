// 14 Oct 2026

package result

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/andrew-torda/seqqc/pkg/qcerr"
)

const indent = "  "

// Save writes the whole batch as one JSON array. An existing file is
// replaced. The directory has to exist already.
func Save(path string, rs []Result) error {
	if rs == nil {
		rs = []Result{} // "[]" not "null"
	}
	b, err := json.MarshalIndent(rs, "", indent)
	if err != nil {
		return qcerr.New(qcerr.ErrIO, "save", path, err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return qcerr.New(qcerr.ErrIO, "save", path, err)
	}
	return nil
}

// Load reads a file written by Save.
func Load(path string) ([]Result, error) {
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, qcerr.New(qcerr.ErrNotFound, "load", path, err)
	case err != nil:
		return nil, qcerr.New(qcerr.ErrIO, "load", path, err)
	case fi.IsDir():
		return nil, qcerr.New(qcerr.ErrInvalidInput, "load", path, errors.New("is a directory"))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, qcerr.New(qcerr.ErrIO, "load", path, err)
	}
	var rs []Result
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, qcerr.New(qcerr.ErrDecode, "load", path, err)
	}
	return rs, nil
}
