// 18 Oct 2026
/*
Cvtree compares organisms by the composition of their protein sequences.

For each organism it counts every word of L residues (default 6) and every
word of L-1 residues. A Markov model of order L-1 says how often each L-word
should turn up. The difference between what is seen and what is expected,
divided by what is expected, gives one number per possible word. Two
organisms are compared by the cosine of the angle between their vectors of
these numbers. 1 means identical composition, 0 means unrelated.

Usage:
	cvtree [flags]

The list file starts with the number of organisms, followed by their names,
separated by white space. Names can have at most nine characters. The
sequences for organism "abc" are read from datadir/abc.faa, in fasta
format. A file may have many sequences.

Output has one line per pair,
	000 001 -> 0.1234567890
numbered from zero in the order of the list file, followed by the run time.
If a similarity cannot be calculated, because an organism has no sequence or
nothing different from the model, the line says "undefined".

The flags are:
	-l listfile
		Default list.txt
	-d datadir
		Default data
	-k L
		Word length, 2 to 8.
	-s dense|sparse
		Dense counts use a lot of memory (four bytes times 20^L per
		organism), but are fast. Sparse counts only store words that were
		seen. The answers are the same.
	-b reject|skip
		What to do with a residue that is not one of the twenty amino acids
		(B, Z, U and X are folded onto D, E, C and G). reject stops with an
		error. skip carries on as if the character were not there.
	-m
		mmap the sequence files rather than reading them.
	-j N
		Number of workers.
	-o outfile
		Write results here instead of standard output.
	-p phylipfile
		Also write a square distance matrix, d = (1 - similarity)/2, for
		tree building programs.
	-t
		Print the elapsed time. On by default, -t=false turns it off.
	-v N
		Verbosity. 1 gives timing, 2 gives details of every organism.
*/
package main
