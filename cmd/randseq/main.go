// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/andrew-torda/cvtree/pkg/randseq"
	. "github.com/andrew-torda/cvtree/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.IntVar(&args.Nseq, "n", 100, "number of records")
	f.BoolVar(&args.White, "w", false, "scatter white space through the sequences")
	f.BoolVar(&args.MkErr, "e", false, "put a bad residue in the last record")
	f.StringVar(&args.Cmmt, "c", "", "comment for records, default from the file name")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 2 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandseq [..] file length")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	if args.Nseq < 0 {
		fmt.Fprintln(os.Stderr, "number of records cannot be negative")
		os.Exit(ExitUsageError)
	}

	fname := f.Args()[0]
	if nlen, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, "Failed converting %s to positive integer\n", f.Args()[1])
		os.Exit(ExitUsageError)
	} else {
		args.Len = int(nlen)
	}
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		defer ft.Close()
		args.Wrtr = ft
		if args.Cmmt == "" {
			b := filepath.Base(fname)
			args.Cmmt = b[:len(b)-len(filepath.Ext(b))]
		}
	}
	if args.Cmmt == "" {
		args.Cmmt = "random"
	}

	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
