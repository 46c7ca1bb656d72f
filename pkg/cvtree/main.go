// 18 Oct 2026

package cvtree

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/cvtree/pkg/alphabet"
	"github.com/andrew-torda/cvtree/pkg/orgload"
	"github.com/andrew-torda/cvtree/pkg/profile"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	ListFile string // count, then organism names
	DataDir  string // where the <name>.faa files live
	WordLen  int    // L
	Storage  string // "dense" or "sparse"
	BadSym   string // "reject" or "skip"
	Mmap     bool   // map sequence files instead of reading them
	Workers  int    // goroutines, < 1 means one per CPU
	Outfile  string // results, "" or "-" for standard output
	Phylip   string // optional distance matrix file
	Time     bool   // print the elapsed time line
}

// DefaultFlags are what you get without asking for anything.
func DefaultFlags() CmdFlag {
	return CmdFlag{
		ListFile: "list.txt",
		DataDir:  "data",
		WordLen:  alphabet.DefaultLen,
		Storage:  "dense",
		BadSym:   "reject",
		Time:     true,
	}
}

// Builder checks the flags and turns them into a profile builder.
func (flags *CmdFlag) Builder() (profile.Builder, error) {
	var bld profile.Builder
	var err error
	if bld.Cfg, err = alphabet.New(flags.WordLen); err != nil {
		return bld, err
	}
	if bld.Storage, err = profile.ParseStorage(flags.Storage); err != nil {
		return bld, err
	}
	if bld.BadSym, err = profile.ParseBadSym(flags.BadSym); err != nil {
		return bld, err
	}
	return bld, nil
}

// createOut opens fname for writing, or gives back stdout.
func createOut(fname string) (io.WriteCloser, error) {
	if fname == "" || fname == "-" {
		return nopCloser{os.Stdout}, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, errors.Wrap(err, "output file")
	}
	return fp, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Mymain is the main function for comparing all organisms in a list
func Mymain(flags *CmdFlag) (err error) {
	startTime := time.Now()
	bld, err := flags.Builder()
	if err != nil {
		return err
	}
	names, err := orgload.ReadListFile(flags.ListFile)
	if err != nil {
		return err
	}
	log.Infof("%d organisms, L %d, %v storage", len(names), bld.Cfg.L(), bld.Storage)
	if len(names) < 2 {
		log.Warnf("%d organisms, so there are no pairs to compare", len(names))
	}

	ld := orgload.Loader{Mmap: flags.Mmap}
	profiles, err := BuildAll(context.Background(), names, flags.DataDir, ld, bld, flags.Workers)
	if err != nil {
		return err
	}
	log.Infof("profiles built after %v", time.Since(startTime))

	results := CompareAll(profiles, flags.Workers)
	log.Infof("%d pairs compared after %v", len(results), time.Since(startTime))

	out, err := createOut(flags.Outfile)
	if err != nil {
		return err
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = errors.Wrap(e, "closing output")
		}
	}()
	if err = WriteResults(out, results); err != nil {
		return errors.Wrap(err, "writing results")
	}

	if flags.Phylip != "" {
		fp, err := os.Create(flags.Phylip)
		if err != nil {
			return errors.Wrap(err, "phylip file")
		}
		err = WritePhylip(fp, names, results)
		if e := fp.Close(); err == nil {
			err = e
		}
		if err != nil {
			return errors.Wrap(err, "writing phylip file")
		}
	}

	if flags.Time {
		if _, err = fmt.Fprintf(out, "time elapsed: %.2f seconds\n", time.Since(startTime).Seconds()); err != nil {
			return errors.Wrap(err, "writing results")
		}
	}
	return nil
}
