// 18 Oct 2026
// Read a list of organisms, build a k-mer profile for each and print
// the similarity of every pair.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/cvtree/pkg/cvtree"
	. "github.com/andrew-torda/cvtree/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags]")
	flag.PrintDefaults()
}

// setLogLevel maps the verbosity flag onto logrus levels.
func setLogLevel(vbsty int) {
	switch {
	case vbsty <= 0:
		log.SetLevel(log.WarnLevel)
	case vbsty == 1:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.DebugLevel)
	}
}

func main() {
	flags := cvtree.DefaultFlags()
	var vbsty int
	flag.StringVar(&flags.ListFile, "l", flags.ListFile, "list file, a count then organism names")
	flag.StringVar(&flags.DataDir, "d", flags.DataDir, "directory with the name.faa files")
	flag.IntVar(&flags.WordLen, "k", flags.WordLen, "word length L")
	flag.StringVar(&flags.Storage, "s", flags.Storage, "count storage, dense or sparse")
	flag.StringVar(&flags.BadSym, "b", flags.BadSym, "bad residue symbols, reject or skip")
	flag.BoolVar(&flags.Mmap, "m", false, "mmap sequence files instead of reading them")
	flag.IntVar(&flags.Workers, "j", 0, "number of workers, default one per cpu")
	flag.StringVar(&flags.Outfile, "o", "", "output file name, default stdout")
	flag.StringVar(&flags.Phylip, "p", "", "also write a phylip distance matrix to this file")
	flag.BoolVar(&flags.Time, "t", flags.Time, "print the elapsed time at the end")
	flag.IntVar(&vbsty, "v", 0, "verbosity, 0 warnings, 1 info, 2 debug")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Got", flag.NArg(), "args, expected none")
		usage()
		os.Exit(ExitUsageError)
	}
	setLogLevel(vbsty)

	if err := cvtree.Mymain(&flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
