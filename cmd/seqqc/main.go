// 14 Oct 2026

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqqc/pkg/command"
	"github.com/andrew-torda/seqqc/pkg/config"
	"github.com/andrew-torda/seqqc/pkg/ingest"
	"github.com/andrew-torda/seqqc/pkg/plot"
	"github.com/andrew-torda/seqqc/pkg/result"
	"github.com/andrew-torda/seqqc/pkg/seq"
	. "github.com/andrew-torda/seqqc/pkg/seq/common"
	"github.com/andrew-torda/seqqc/pkg/seqcalc"
)

// app is what the sub commands share. cfg and logger are set up in
// the root's PersistentPreRunE.
type app struct {
	cfgPath  string
	logLevel string
	workers  int
	minORF   int

	cfg    *config.Config
	logger *log.Logger
}

// setup reads the config and lets the flags override it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("min-orf") {
		cfg.MinORFLen = a.minORF
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "seqqc",
		Level:           lvl,
	})
	a.cfg = cfg
	return nil
}

func (a *app) service() *command.Service { return command.New(a.cfg, a.logger) }

// analyseCmd is the same for both formats.
func analyseCmd(a *app, format seq.Format) *cobra.Command {
	var text, out string
	var keep bool
	cmd := &cobra.Command{
		Use:   format.String() + " [file|-]",
		Short: "Analyse " + format.String() + " records from a file, stdin or --text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep {
				a.cfg.KeepExtracted = true
			}
			svc := a.service()
			textFn, fileFn := svc.AnalyseFastaSequences, svc.AnalyseFastaFile
			if format == seq.Fastq {
				textFn, fileFn = svc.AnalyseFastqSequences, svc.AnalyseFastqFile
			}
			var rs []result.Result
			var err error
			switch {
			case cmd.Flags().Changed("text"):
				rs, err = textFn(text)
			case len(args) == 0 || args[0] == "-":
				var b []byte
				if b, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				rs, err = textFn(string(b))
			default:
				rs, err = fileFn(args[0])
			}
			if err != nil {
				return err
			}
			if out != "" {
				return svc.SaveResults(out, rs)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resultTable(rs))
			return err
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "records given as text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "save results to this JSON file")
	cmd.Flags().BoolVar(&keep, "keep-extracted", false, "leave a decompressed copy of a .gz input")
	return cmd
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show results.json",
		Short: "Print saved results as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.service().LoadResults(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resultTable(rs))
			return err
		},
	}
}

func plotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plot results.json out.png",
		Short: "Draw the GC content of saved results",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.service().LoadResults(args[0])
			if err != nil {
				return err
			}
			fp, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := plot.GCBars(rs, fp, a.cfg.PlotWidth, a.cfg.PlotHeight); err != nil {
				fp.Close()
				return err
			}
			a.logger.Info("plotted", "results", len(rs), "png", args[1])
			return fp.Close()
		},
	}
}

func compositionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "composition fasta|fastq file",
		Short: "Print the base composition of each record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := seq.ParseFormat(args[0])
			if err != nil {
				return err
			}
			data, err := ingest.ReadFile(args[1], &ingest.Options{
				KeepExtracted: a.cfg.KeepExtracted,
				Logger:        a.logger,
			})
			if err != nil {
				return err
			}
			recs := seq.Read(data, format)
			seqs := make([][]byte, len(recs))
			for i := range recs {
				if recs[i].Valid {
					seqs[i] = recs[i].Seq
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), compTable(recs, seqcalc.Composition(seqs)))
			return err
		},
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "seqqc",
		Short:         "Quality and content of fasta and fastq records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "settings file (default ./"+config.DefaultPath+" if present)")
	pf.StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	pf.IntVarP(&a.workers, "workers", "j", 1, "goroutines for the analysis")
	pf.IntVar(&a.minORF, "min-orf", seqcalc.DefaultMinORFLen, "shortest open reading frame counted")

	root.AddCommand(analyseCmd(a, seq.Fastq), analyseCmd(a, seq.Fasta),
		showCmd(a), plotCmd(a), compositionCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seqqc:", err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
