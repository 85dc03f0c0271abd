// Base composition, one row per record.

package seqcalc

import (
	"github.com/andrew-torda/matrix"
)

// CompSyms are the columns of a composition matrix. Anything that is
// not one of these goes in the last column, CompOther.
const CompSyms = "ACGTN"

const CompOther = len(CompSyms)

var compMap = func() (m [256]int8) {
	for i := range m {
		m[i] = int8(CompOther)
	}
	for i := 0; i < len(CompSyms); i++ {
		c := CompSyms[i]
		m[c] = int8(i)
		m[c+('a'-'A')] = int8(i)
	}
	return m
}()

// compRow fills row with the fraction of each symbol in s.
// An empty sequence leaves the row at zero.
func compRow(row []float32, s []byte) {
	clear(row)
	if len(s) == 0 {
		return
	}
	var n [CompOther + 1]int
	for _, c := range s {
		n[compMap[c]]++
	}
	for i, x := range n {
		row[i] = float32(x) / float32(len(s))
	}
}

// Composition takes a set of sequences and returns a matrix with one
// row per sequence and len(CompSyms)+1 columns. nil sequences, which is
// what we use for invalid records, give a row of zeroes.
func Composition(seqs [][]byte) *matrix.FMatrix2d {
	mat := matrix.NewFMatrix2d(len(seqs), CompOther+1)
	for i, s := range seqs {
		compRow(mat.Mat[i], s)
	}
	return mat
}
