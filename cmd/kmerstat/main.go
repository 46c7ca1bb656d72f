// 26 April 2020
// Build a profile for some organisms and print the k-mers that most
// disagree with the Markov model.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/cvtree/pkg/alphabet"
	"github.com/andrew-torda/cvtree/pkg/kmerstat"
	"github.com/andrew-torda/cvtree/pkg/orgload"
	. "github.com/andrew-torda/cvtree/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [name ...]")
	long := `Names are organisms, read from datadir/name.faa.
With no names, they come from the list file given by -l.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags kmerstat.CmdFlag
	var listFile string
	var verbose bool
	flag.StringVar(&listFile, "l", "list.txt", "list file, used if no names are given")
	flag.StringVar(&flags.DataDir, "d", "data", "directory with the name.faa files")
	flag.IntVar(&flags.WordLen, "k", alphabet.DefaultLen, "word length L")
	flag.StringVar(&flags.Storage, "s", "sparse", "count storage, dense or sparse")
	flag.StringVar(&flags.BadSym, "b", "reject", "bad residue symbols, reject or skip")
	flag.IntVar(&flags.NTop, "n", 20, "number of k-mers per organism")
	flag.StringVar(&flags.Outfile, "o", "", "output file, default stdout")
	flag.IntVar(&flags.Workers, "j", 0, "number of workers, default one per cpu")
	flag.BoolVar(&verbose, "v", false, "say what is going on")
	flag.Usage = usage
	flag.Parse()
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	names := flag.Args()
	if len(names) == 0 {
		var err error
		if names, err = orgload.ReadListFile(listFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitUsageError)
		}
	}
	if err := kmerstat.Mymain(&flags, names); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
