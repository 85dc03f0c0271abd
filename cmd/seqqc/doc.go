// 14 Oct 2026

/*
Seqqc analyses fasta and fastq records and reports GC content, the
number of open reading frames and, for fastq, the summed phred score.

Usage:

	seqqc [flags] fastq [file|-] [--text s] [--out results.json]
	seqqc [flags] fasta [file|-] [--text s] [--out results.json]
	seqqc show results.json
	seqqc plot results.json out.png
	seqqc composition fasta|fastq file

A file name ending in .gz is decompressed. "-" or no file reads stdin.
Without --out the results are printed as a table.

Global flags:

	--config      settings file, default ./seqqc.json if it is there
	--log-level   debug, info, warn or error
	--workers     number of goroutines for the analysis
	--min-orf     shortest open reading frame that is counted

Broken records do not stop anything. They are reported as invalid
results, with the reason.
*/
package main
