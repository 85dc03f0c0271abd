// 31 July 2020
// 14 Oct 2026 fastq, gzip output

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	gzip "github.com/klauspost/pgzip"

	"github.com/andrew-torda/seqqc/pkg/randseq"
	"github.com/andrew-torda/seqqc/pkg/seq"
	. "github.com/andrew-torda/seqqc/pkg/seq/common"
	"github.com/andrew-torda/seqqc/pkg/zwrap"
)

// output opens fname, wrapped in a compressor if the name says so.
// The returned function must be called to flush and close.
func output(fname string) (io.Writer, func() error, error) {
	if fname == "-" || fname == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	ft, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	if !zwrap.HasSuffix(fname) {
		return ft, ft.Close, nil
	}
	zw := gzip.NewWriter(ft)
	closer := func() error {
		if err := zw.Close(); err != nil {
			ft.Close()
			return err
		}
		return ft.Close()
	}
	return zw, closer, nil
}

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	var fastq bool

	f.BoolVar(&fastq, "q", false, "write fastq")
	f.BoolVar(&args.White, "w", false, "put white space in fasta sequences")
	f.BoolVar(&args.MkErr, "e", false, "provoke errors")
	f.StringVar(&args.Cmmt, "c", "random", "comment after each identifier")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	args.Format = seq.Fasta
	if fastq {
		args.Format = seq.Fastq
	}

	const emsg = "Failed converting %s to positive integer\n"
	for i, p := range []*int{&args.Nseq, &args.Len} {
		s := f.Args()[i+1]
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, emsg, s)
			os.Exit(ExitUsageError)
		}
		*p = int(n)
	}

	w, closer, err := output(f.Args()[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "File for output:", err)
		os.Exit(ExitFailure)
	}
	args.Wrtr = w
	err = randseq.RandSeqMain(&args)
	if cerr := closer(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
