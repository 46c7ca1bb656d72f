// 18 Oct 2026

package profile

// Expected is the number of times we would expect to see k-mer i if
// the sequences came from a Markov chain of order L-1.
// There are two estimates. Going forwards, the leading context predicts
// the last residue. Going backwards, the first residue predicts the
// trailing context. We take the mean of the two.
//
// The denominator for contexts is total + records, not just total,
// since every record contributes one extra context from its seed.
func (p *Profile) Expected(i int) float64 {
	cfg := p.cfg
	p1 := float64(p.ctxs.At(cfg.Prefix(i))) * p.rWin
	p2 := float64(p.syms[cfg.Last(i)]) * p.rSym
	p3 := float64(p.ctxs.At(cfg.Suffix(i))) * p.rWin
	p4 := float64(p.syms[cfg.First(i)]) * p.rSym
	return float64(p.total) * (p1*p2 + p3*p4) / 2
}

// ExpectedAll fills a slice with the expected count of every k-mer.
// It is for testing and small word lengths.
func (p *Profile) ExpectedAll() []float64 {
	e := make([]float64, p.cfg.M())
	for i := range e {
		e[i] = p.Expected(i)
	}
	return e
}
