// 18 Oct 2026

// Package profile counts k-mers, contexts and residues in the protein
// sequences of one organism and predicts how often each k-mer should
// occur from a Markov model of order L-1.
//
// A profile is built once by a Builder and never changed afterwards,
// so any number of goroutines may read it at the same time.
package profile

import (
	"fmt"
	"math"

	"github.com/andrew-torda/cvtree/pkg/alphabet"
)

// Epsilon is added to the model's denominators so that an empty
// profile gives zeroes rather than dividing by zero.
const Epsilon = 1e-10

// Profile holds the counts for one organism.
type Profile struct {
	cfg       alphabet.Config
	kmers     Counts // observed L-long windows, length M
	ctxs      Counts // observed (L-1)-long windows, length M1
	syms      [alphabet.A]int64
	total     int64 // number of L-long windows, sum of kmers
	totalSyms int64 // sum of syms
	records   int64 // number of ">" record starts

	rWin float64 // 1 / (total + records)
	rSym float64 // 1 / totalSyms
}

// newProfile gives an empty profile ready for counting.
func newProfile(cfg alphabet.Config, storage Storage) *Profile {
	return &Profile{
		cfg:   cfg,
		kmers: storage.newCounts(cfg.M()),
		ctxs:  storage.newCounts(cfg.M1()),
	}
}

// finish is called once the counting is over.
func (p *Profile) finish() {
	p.rWin = 1 / (float64(p.total+p.records) + Epsilon)
	p.rSym = 1 / (float64(p.totalSyms) + Epsilon)
}

func (p *Profile) Config() alphabet.Config { return p.cfg }

// Kmers gives the k-mer counts. Index i is a word as packed by alphabet.Config.
func (p *Profile) Kmers() Reader { return p.kmers }

// Contexts gives the counts of windows of length L-1.
func (p *Profile) Contexts() Reader { return p.ctxs }

// Observed is the number of times k-mer i was seen.
func (p *Profile) Observed(i int) uint32 { return p.kmers.At(i) }

// SymCount is the number of times residue code c was seen.
func (p *Profile) SymCount(c int) int64 { return p.syms[c] }

func (p *Profile) Total() int64 { return p.total }
func (p *Profile) TotalSymbols() int64 { return p.totalSyms }
func (p *Profile) Records() int64 { return p.records }

// Summary is what we log about a profile.
type Summary struct {
	Records  int64
	Windows  int64
	Symbols  int64
	Distinct int     // different k-mers seen
	Entropy  float64 // of the residue composition, log base 20
}

func (s Summary) String() string {
	return fmt.Sprintf("records %d windows %d residues %d distinct %d entropy %.3f",
		s.Records, s.Windows, s.Symbols, s.Distinct, s.Entropy)
}

// Summarise collects the numbers in a Summary.
func (p *Profile) Summarise() Summary {
	s := Summary{
		Records:  p.records,
		Windows:  p.total,
		Symbols:  p.totalSyms,
		Distinct: p.kmers.Distinct(),
	}
	if p.totalSyms == 0 {
		return s
	}
	logfac := 1.0 / math.Log(float64(alphabet.A)) // to change base of logs
	total := 0.0
	for _, n := range p.syms {
		if n == 0 {
			continue
		}
		f := float64(n) / float64(p.totalSyms)
		total += f * math.Log(f) * logfac
	}
	s.Entropy = math.Abs(total)
	return s
}
