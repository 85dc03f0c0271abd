// 6 Apr 2020
// 14 Oct 2026 gc, orfs, phred scores

// Package seqcalc does the per-record sums. Nothing here knows about
// file formats or results. Everything is a pure function of the bytes.
package seqcalc

import (
	"errors"
	"fmt"
)

// GCContent is the fraction of bases which are G or C, in either case.
// Every symbol counts towards the length, so N lowers it.
// An empty sequence gives zero.
func GCContent(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	n := 0
	for _, c := range s {
		switch c {
		case 'G', 'C', 'g', 'c':
			n++
		}
	}
	return float64(n) / float64(len(s))
}

const phredOffset = 33

// ErrQualityUnderflow means a quality symbol was below '!'.
var ErrQualityUnderflow = errors.New("quality value below phred+33 floor")

// PhredScore adds up (q - 33) over a quality line.
// A symbol below 33 would underflow. We do not wrap, we give an error.
func PhredScore(qual []byte) (uint64, error) {
	var score uint64
	for i, q := range qual {
		if q < phredOffset {
			return 0, fmt.Errorf("%w: symbol %q at position %d", ErrQualityUnderflow, q, i)
		}
		score += uint64(q - phredOffset)
	}
	return score, nil
}
