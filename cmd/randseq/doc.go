// 31 July 2020

/*
Randseq writes random protein sequences, for testing and timing cvtree.

Usage:
	randseq [options] fname length
writes records of length residues to fname. "-" means standard output.
To make a data directory, call it once per organism with a different seed,
	randseq -r 1 -n 500 data/orgA.faa 300

Flags:
	-r
		random number seed
	-n
		number of records, default 100
	-w
		scatter spaces and newlines through the sequences, as a fasta
		reader should ignore them
	-e
		put one residue that is not an amino acid in the last record.
		cvtree should complain unless told to skip bad symbols.
	-c
		comment for the record headers. Default is the file name without
		its suffix.

Residues are drawn evenly from the twenty amino acids, so two organisms
made this way look unrelated to cvtree.
*/
package main
