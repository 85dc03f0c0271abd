// 14 Oct 2026

// Package config reads the optional JSON settings file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/andrew-torda/seqqc/pkg/qcerr"
	"github.com/andrew-torda/seqqc/pkg/seqcalc"
)

// DefaultPath is tried when no file is named.
const DefaultPath = "seqqc.json"

type Config struct {
	MinORFLen     int    `json:"min_orf_len"`
	Workers       int    `json:"workers"`
	KeepExtracted bool   `json:"keep_extracted"`
	LogLevel      string `json:"log_level"`
	PlotWidth     int    `json:"plot_width"`
	PlotHeight    int    `json:"plot_height"`
}

func Default() *Config {
	return &Config{
		MinORFLen:  seqcalc.DefaultMinORFLen,
		Workers:    1,
		LogLevel:   "info",
		PlotWidth:  800,
		PlotHeight: 400,
	}
}

// LoadConfig reads path on top of the defaults, so fields missing from
// the file keep their default value. An empty path means DefaultPath,
// and then not finding the file is fine.
func LoadConfig(path string) (*Config, error) {
	c := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return c, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, qcerr.New(qcerr.ErrNotFound, "config", path, err)
	default:
		return nil, qcerr.New(qcerr.ErrIO, "config", path, err)
	}
	if err := json.Unmarshal(b, c); err != nil {
		return nil, qcerr.New(qcerr.ErrDecode, "config", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, qcerr.New(qcerr.ErrInvalidInput, "config", path, err)
	}
	return c, nil
}

// Validate is also for values that came from the command line.
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d is negative", c.Workers))
	}
	if c.MinORFLen < 3 {
		errs = append(errs, fmt.Errorf("min_orf_len %d is shorter than a codon", c.MinORFLen))
	}
	if c.PlotWidth < 1 || c.PlotHeight < 1 {
		errs = append(errs, fmt.Errorf("plot size %dx%d", c.PlotWidth, c.PlotHeight))
	}
	return errors.Join(errs...)
}
