// 27 april 2020

// Package kmerstat describes single organisms. For each one it prints
// the residue entropy and counts, then the k-mers that turn up most
// often compared to what the Markov model expects.
package kmerstat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/cvtree/pkg/cvtree"
	"github.com/andrew-torda/cvtree/pkg/dist"
	"github.com/andrew-torda/cvtree/pkg/orgload"
	"github.com/andrew-torda/cvtree/pkg/profile"
)

// KmerStat is one line of output.
type KmerStat struct {
	Kmer     string
	Observed uint32
	Expected float64
	Residual float64
}

// Top returns the n k-mers with the biggest residuals. Only k-mers
// that were seen are candidates. Ties go to the lower index, so the
// answer does not depend on storage.
func Top(p *profile.Profile, n int) []KmerStat {
	type pair struct {
		i int
		r float64
	}
	var all []pair
	p.Kmers().Range(func(i int, _ uint32) {
		all = append(all, pair{i, dist.Residual(p, i)})
	})
	sort.SliceStable(all, func(a, b int) bool { return all[a].r > all[b].r })
	if n > len(all) {
		n = len(all)
	}
	cfg := p.Config()
	ret := make([]KmerStat, n)
	for k, x := range all[:n] {
		ret[k] = KmerStat{
			Kmer:     cfg.KmerString(x.i),
			Observed: p.Observed(x.i),
			Expected: p.Expected(x.i),
			Residual: x.r,
		}
	}
	return ret
}

// warnExists warns if we are about to trash a file.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		log.Warnln("trashing old version of", fname)
	}
}

// writeStats writes the summary and top k-mers for one organism.
func writeStats(w io.Writer, name string, p *profile.Profile, ntop int) error {
	bw := bufio.NewWriter(w)
	s := p.Summarise()
	fmt.Fprintf(bw, "# %s %v\n", name, s)
	fmt.Fprintln(bw, `"kmer","observed","expected","residual"`)
	for _, k := range Top(p, ntop) {
		fmt.Fprintf(bw, "%s,%d,%.3f,%.3f\n", k.Kmer, k.Observed, k.Expected, k.Residual)
	}
	return bw.Flush()
}

// CmdFlag holds the flags after parsing
type CmdFlag struct {
	DataDir string // where the <name>.faa files live
	WordLen int
	Storage string // "dense" or "sparse"
	BadSym  string // "reject" or "skip"
	NTop    int    // how many k-mers to print per organism
	Outfile string
	Workers int
}

// Mymain builds a profile for each name and writes its statistics.
func Mymain(flags *CmdFlag, names []string) (err error) {
	cflags := cvtree.DefaultFlags()
	cflags.WordLen, cflags.Storage, cflags.BadSym = flags.WordLen, flags.Storage, flags.BadSym
	bld, err := cflags.Builder()
	if err != nil {
		return err
	}
	if flags.NTop < 0 {
		return fmt.Errorf("number of k-mers %d cannot be negative", flags.NTop)
	}
	profiles, err := cvtree.BuildAll(context.Background(), names, flags.DataDir,
		orgload.Loader{}, bld, flags.Workers)
	if err != nil {
		return err
	}

	var fp io.Writer = os.Stdout
	if flags.Outfile != "" && flags.Outfile != "-" {
		warnExists(flags.Outfile)
		f, e := os.Create(flags.Outfile)
		if e != nil {
			return errors.Wrap(e, "output file")
		}
		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()
		fp = f
	}
	for i, p := range profiles {
		if err := writeStats(fp, names[i], p, flags.NTop); err != nil {
			return errors.Wrapf(err, "writing %s", names[i])
		}
	}
	return nil
}
