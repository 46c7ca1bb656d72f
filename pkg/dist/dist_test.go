// 18 Oct 2026

package dist_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/andrew-torda/cvtree/pkg/alphabet"
	. "github.com/andrew-torda/cvtree/pkg/dist"
	"github.com/andrew-torda/cvtree/pkg/profile"
	"github.com/andrew-torda/cvtree/pkg/randseq"
)

func approxEqual(x, y, eps float64) bool { return math.Abs(x-y) <= eps }

func randProfile(t testing.TB, l int, st profile.Storage, seed int64, nseq, slen int) *profile.Profile {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Iseed: seed, Wrtr: &sb, Cmmt: "r", Nseq: nseq, Len: slen}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	bld := profile.Builder{Cfg: alphabet.MustNew(l), Storage: st}
	p, err := bld.BuildReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// cosine is the slow, obvious version.
func cosine(a, b []float64) float64 {
	var ab, aa, bb float64
	for i := range a {
		ab += a[i] * b[i]
		aa += a[i] * a[i]
		bb += b[i] * b[i]
	}
	return ab / (math.Sqrt(aa) * math.Sqrt(bb))
}

func TestSelf(t *testing.T) {
	for _, st := range []profile.Storage{profile.Dense, profile.Sparse} {
		p := randProfile(t, 3, st, 1, 10, 400)
		r, err := Compare(p, p, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(r, 1, 1e-6) {
			t.Fatalf("%v self similarity %.12f", st, r)
		}
	}
}

func TestAgainstSlow(t *testing.T) {
	p := randProfile(t, 3, profile.Dense, 2, 8, 500)
	q := randProfile(t, 3, profile.Dense, 3, 12, 300)
	want := cosine(Residuals(p), Residuals(q))
	got, err := Compare(p, q, Options{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(got, want, 1e-12) {
		t.Fatalf("got %.15f want %.15f", got, want)
	}
	if got < -1 || got > 1 {
		t.Fatal("cosine out of range", got)
	}
	back, _ := Compare(q, p, Options{})
	if !approxEqual(got, back, 1e-12) {
		t.Fatal("not symmetric", got, back)
	}
}

// TestWorkers checks that the number of goroutines does not change the
// answer. L = 5 gives enough chunks to spread over workers.
func TestWorkers(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	p := randProfile(t, 5, profile.Dense, 4, 20, 1000)
	q := randProfile(t, 5, profile.Dense, 5, 20, 1000)
	ref, err := Compare(p, q, Options{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []int{0, 2, 3, 8, 64} {
		r, err := Compare(p, q, Options{Workers: w})
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(r, ref, 1e-9) {
			t.Fatalf("workers %d gave %.15f, one worker %.15f", w, r, ref)
		}
	}
}

func TestDenseSparse(t *testing.T) {
	pd := randProfile(t, 4, profile.Dense, 6, 5, 400)
	ps := randProfile(t, 4, profile.Sparse, 6, 5, 400)
	qd := randProfile(t, 4, profile.Dense, 7, 5, 400)
	qs := randProfile(t, 4, profile.Sparse, 7, 5, 400)
	a, err1 := Compare(pd, qd, Options{Workers: 2})
	b, err2 := Compare(ps, qs, Options{Workers: 2})
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if !approxEqual(a, b, 1e-12) {
		t.Fatal("dense", a, "sparse", b)
	}
}

func TestUndefined(t *testing.T) {
	bld := profile.Builder{Cfg: alphabet.MustNew(3)}
	empty, err := bld.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	p := randProfile(t, 3, profile.Dense, 8, 3, 100)
	r, err := Compare(empty, p, Options{})
	if !errors.Is(err, ErrUndefined) {
		t.Fatal("wanted ErrUndefined, got", err)
	}
	if !math.IsNaN(r) {
		t.Fatal("wanted NaN, got", r)
	}
}

func TestMismatch(t *testing.T) {
	p := randProfile(t, 2, profile.Dense, 9, 2, 50)
	q := randProfile(t, 3, profile.Dense, 9, 2, 50)
	if _, err := Compare(p, q, Options{}); !errors.Is(err, ErrMismatch) {
		t.Fatal("wanted ErrMismatch, got", err)
	}
}

func BenchmarkCompare(b *testing.B) {
	for _, st := range []profile.Storage{profile.Dense, profile.Sparse} {
		p := randProfile(b, 5, st, 10, 50, 1000)
		q := randProfile(b, 5, st, 11, 50, 1000)
		b.Run(st.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Compare(p, q, Options{Workers: 4})
			}
		})
	}
}
