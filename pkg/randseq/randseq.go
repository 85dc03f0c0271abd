// 31 July 2020
// 14 Oct 2026 nucleotides, fastq

package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/seqqc/pkg/seq"
)

const (
	nPadWhite   = 9 // For padding for adding whitespace to fasta sequences
	brokenEvery = 7 // with MkErr, every 7th record is broken
	qualLow     = '!'
	qualHigh    = 'J'
)

var letters = []byte{'A', 'C', 'G', 'T', 'A', 'C', 'G', 'T', 'A', 'C', 'G', 'T', 'N'}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed  int64      // random number seed
	Wrtr   io.Writer  // where we write to
	Cmmt   string     // Comment for the sequences
	Nseq   int        // number of sequences
	Len    int        // Length of sequences
	Format seq.Format // fasta or fastq. Zero means fasta.
	White  bool       // Sprinkle white space and newlines into fasta sequences
	MkErr  bool       // Break every brokenEvery'th record
}

// NBroken says how many records will be broken with these arguments.
func NBroken(args *RandSeqArgs) int {
	if !args.MkErr {
		return 0
	}
	return args.Nseq / brokenEvery
}

type entry struct {
	s, q []byte
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := int32(len(letters))
	for i := 0; i < seqlen; i++ {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// getqual returns a quality line of Phred+33 symbols.
func getqual(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = byte(qualLow + rnd.Int31n(qualHigh-qualLow+1))
	}
	return ret
}

// addinner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	coin := spacernd.Int31n(2)
	nNL := 0 // Number of new lines to add
	if coin == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// writeseq takes a sequence and maybe its quality. It adds a comment
// and writes it out. n is the number of the sequence, so the output
// has comment lines "> something 1, > something 2..."
func writeseq(eChan <-chan entry, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for e := range eChan {
		i++
		if *errp != nil {
			continue // drain, so the sender is not stuck
		}
		var err error
		id := fmt.Sprintf("s%0*d", width, i)
		if args.Format == seq.Fastq {
			_, err = fmt.Fprintf(args.Wrtr, "@%s %s\n%s\n+\n%s\n", id, args.Cmmt, e.s, e.q)
		} else {
			if args.White {
				e.s = addspace(e.s, spacernd)
			}
			_, err = fmt.Fprintf(args.Wrtr, ">%s %s\n%s\n", id, args.Cmmt, e.s)
		}
		*errp = err
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var wrtErr error
	rnd := rand.New(rand.NewSource(args.Iseed))
	eChan := make(chan entry)
	wg.Add(1)
	go writeseq(eChan, args, &wg, &wrtErr)
	for i := 0; i < args.Nseq; i++ {
		e := entry{s: getseq(args.Len, rnd)}
		if args.Format == seq.Fastq {
			e.q = getqual(args.Len, rnd)
		}
		if args.MkErr && i%brokenEvery == brokenEvery-1 {
			if args.Format == seq.Fastq && len(e.q) > 0 {
				e.q = e.q[:len(e.q)-1] // lengths no longer match
			} else {
				e.s = e.s[:0] // empty sequence
			}
		}
		eChan <- e
	}
	close(eChan)
	wg.Wait()
	return wrtErr
}
