// 18 Oct 2026

// Package dist compares two profiles. For every possible k-mer we take
// the standardised residual (observed - expected) / expected in each
// profile. The similarity is the cosine of the angle between the two
// residual vectors. There is no mean centring, so it is not quite a
// correlation coefficient, although that is what people call it.
package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/cvtree/pkg/profile"
)

// Epsilon is the smallest expected count we believe. Below this a
// k-mer contributes nothing.
const Epsilon = 1e-10

// chunkSize is the number of k-mers summed by one goroutine. It does not
// depend on the number of workers, so neither does the result.
const chunkSize = 1 << 16

var (
	// ErrUndefined means one of the residual vectors has length zero,
	// so the cosine is 0/0.
	ErrUndefined = errors.New("similarity undefined, residual vector has zero length")
	// ErrMismatch means the profiles were built with different word lengths.
	ErrMismatch = errors.New("profiles have different word lengths")
)

// Options for Compare.
type Options struct {
	Workers int // goroutines for one comparison, < 1 means 1
}

// sums are the three running totals.
type sums struct {
	sq1, sq2, cross float64
}

// Residual is (observed - expected) / expected, or zero if we do not
// expect to see the k-mer at all.
func Residual(p *profile.Profile, i int) float64 {
	e := p.Expected(i)
	if e > Epsilon {
		return (float64(p.Observed(i)) - e) / e
	}
	return 0
}

// inner sums over k-mers lo..hi-1.
func inner(p1, p2 *profile.Profile, lo, hi int) (s sums) {
	for i := lo; i < hi; i++ {
		t1 := Residual(p1, i)
		t2 := Residual(p2, i)
		s.sq1 += t1 * t1
		s.sq2 += t2 * t2
		s.cross += t1 * t2
	}
	return s
}

// Compare returns the cosine similarity of two profiles. If it cannot
// be calculated, the value is NaN and the error is ErrUndefined.
// The profiles are only read, so many comparisons can share them.
func Compare(p1, p2 *profile.Profile, opts Options) (float64, error) {
	if p1.Config() != p2.Config() {
		return math.NaN(), errors.Wrapf(ErrMismatch, "L %d and %d",
			p1.Config().L(), p2.Config().L())
	}
	m := p1.Config().M()
	nchunk := (m + chunkSize - 1) / chunkSize
	part := make([]sums, nchunk)

	if opts.Workers <= 1 || nchunk == 1 {
		for c := range part {
			part[c] = inner(p1, p2, c*chunkSize, min((c+1)*chunkSize, m))
		}
	} else {
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		for c := range part {
			g.Go(func() error {
				part[c] = inner(p1, p2, c*chunkSize, min((c+1)*chunkSize, m))
				return nil
			})
		}
		g.Wait()
	}

	var tot sums // add up in a fixed order
	for _, s := range part {
		tot.sq1 += s.sq1
		tot.sq2 += s.sq2
		tot.cross += s.cross
	}
	if tot.sq1 == 0 || tot.sq2 == 0 {
		return math.NaN(), ErrUndefined
	}
	return tot.cross / (math.Sqrt(tot.sq1) * math.Sqrt(tot.sq2)), nil
}

// Residuals gives the whole residual vector of a profile. It is only
// sensible for short words.
func Residuals(p *profile.Profile) []float64 {
	r := make([]float64, p.Config().M())
	for i := range r {
		r[i] = Residual(p, i)
	}
	return r
}
