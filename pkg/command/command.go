// 14 Oct 2026

// Package command is the boundary the user interface talks to. Each
// call is one request. It runs to the end and either returns results
// or an error from package qcerr. Broken records are not errors, they
// are invalid results.
package command

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/andrew-torda/seqqc/pkg/analyse"
	"github.com/andrew-torda/seqqc/pkg/config"
	"github.com/andrew-torda/seqqc/pkg/ingest"
	"github.com/andrew-torda/seqqc/pkg/result"
	"github.com/andrew-torda/seqqc/pkg/seq"
)

// Commands is what a front end needs.
type Commands interface {
	AnalyseFastqSequences(text string) ([]result.Result, error)
	AnalyseFastqFile(path string) ([]result.Result, error)
	AnalyseFastaSequences(text string) ([]result.Result, error)
	AnalyseFastaFile(path string) ([]result.Result, error)
	SaveResults(path string, rs []result.Result) error
	LoadResults(path string) ([]result.Result, error)
}

// Service does the work. It has no state between calls beyond its
// settings, so one Service can be shared.
type Service struct {
	cfg    config.Config
	logger *log.Logger
}

var _ Commands = (*Service)(nil)

// New copies cfg. A nil cfg means config.Default(), a nil logger
// log.Default().
func New(cfg *config.Config, logger *log.Logger) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{cfg: *cfg, logger: logger}
}

// request gives a logger tagged with a fresh request id.
func (s *Service) request(op string) *log.Logger {
	return s.logger.With("req", uuid.NewString(), "op", op)
}

func (s *Service) analyse(data []byte, format seq.Format, logger *log.Logger) []result.Result {
	recs := seq.Read(data, format)
	rs := analyse.Records(recs, &analyse.Options{
		Workers:   s.cfg.Workers,
		MinORFLen: s.cfg.MinORFLen,
		Logger:    logger,
	})
	for i := range rs {
		if p := rs[i].Problem; p != nil {
			logger.Warn("invalid record", "index", i, "id", p.OriginalID, "reason", p.Reason)
		}
	}
	nValid, nInvalid := result.Tally(rs)
	logger.Info("analysed", "format", format, "valid", nValid, "invalid", nInvalid)
	return rs
}

func (s *Service) text(text string, format seq.Format, op string) []result.Result {
	logger := s.request(op)
	logger.Debug("text input", "bytes", len(text))
	return s.analyse(ingest.FromText(text), format, logger)
}

func (s *Service) file(path string, format seq.Format, op string) ([]result.Result, error) {
	logger := s.request(op)
	data, err := ingest.ReadFile(path, &ingest.Options{KeepExtracted: s.cfg.KeepExtracted, Logger: logger})
	if err != nil {
		logger.Error("reading input", "path", path, "err", err)
		return nil, err
	}
	logger.Debug("file input", "path", path, "bytes", len(data), "compressed", ingest.IsCompressed(path))
	return s.analyse(data, format, logger), nil
}

// AnalyseFastqSequences never fails. The error is there to match the
// file version.
func (s *Service) AnalyseFastqSequences(text string) ([]result.Result, error) {
	return s.text(text, seq.Fastq, "fastq text"), nil
}

func (s *Service) AnalyseFastqFile(path string) ([]result.Result, error) {
	return s.file(path, seq.Fastq, "fastq file")
}

func (s *Service) AnalyseFastaSequences(text string) ([]result.Result, error) {
	return s.text(text, seq.Fasta, "fasta text"), nil
}

func (s *Service) AnalyseFastaFile(path string) ([]result.Result, error) {
	return s.file(path, seq.Fasta, "fasta file")
}

func (s *Service) SaveResults(path string, rs []result.Result) error {
	logger := s.request("save")
	if err := result.Save(path, rs); err != nil {
		logger.Error("save", "path", path, "err", err)
		return err
	}
	logger.Info("saved", "path", path, "results", len(rs))
	return nil
}

func (s *Service) LoadResults(path string) ([]result.Result, error) {
	logger := s.request("load")
	rs, err := result.Load(path)
	if err != nil {
		logger.Error("load", "path", path, "err", err)
		return nil, err
	}
	logger.Info("loaded", "path", path, "results", len(rs))
	return rs, nil
}
