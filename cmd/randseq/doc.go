// 31 July 2020
// 14 Oct 2026 nucleotides and fastq

/*

Randseq is for making random sequences for testing the code.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length and write them to fname.
fname "-" is stdout. A name ending in .gz is compressed.

Flags:
	-q
		write fastq instead of fasta
	-w
		sprinkle white space and newlines into fasta sequences
	-e
		provoke errors. Every seventh record is broken, an empty sequence
		for fasta and a short quality line for fastq.
	-c
		comment put after each identifier
	-r
		random number seed

The content is not so important. It is for benchmarking and for
checking that broken records are found and the rest are not lost.
*/
package main
