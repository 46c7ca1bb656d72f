// 18 Oct 2026

// Package cvtree runs the whole calculation. It builds a profile for
// every organism in parallel, compares every pair in parallel and
// then hands the results back in order.
package cvtree

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/cvtree/pkg/dist"
	"github.com/andrew-torda/cvtree/pkg/orgload"
	"github.com/andrew-torda/cvtree/pkg/profile"
)

// PairResult is the similarity of organisms I and J, I < J.
// If Undefined is set, Corr is NaN.
type PairResult struct {
	I, J      int
	Corr      float64
	Undefined bool
}

// nWorkers turns a flag value into a number of goroutines.
func nWorkers(n int) int {
	if n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// BuildAll makes one profile per organism. Files are found in dir.
// The first failure stops everything and there are no partial results.
func BuildAll(ctx context.Context, names []string, dir string, ld orgload.Loader,
	bld profile.Builder, workers int) ([]*profile.Profile, error) {
	profiles := make([]*profile.Profile, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(nWorkers(workers))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err // someone else failed already
			}
			fname := orgload.Path(dir, name)
			err := ld.Load(fname, func(data []byte) error {
				p, err := bld.Build(data)
				profiles[i] = p
				return err
			})
			if err != nil {
				return errors.Wrapf(err, "organism %d %s", i, name)
			}
			log.Debugf("%03d %s %v", i, name, profiles[i].Summarise())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// pairs lists the pairs (0,1), (0,2) .. (0,n-1), (1,2) ..
// which is the order they are printed in.
func pairs(n int) [][2]int {
	pp := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pp = append(pp, [2]int{i, j})
		}
	}
	return pp
}

// CompareAll compares every pair of profiles. Each pair is written into
// its own slot, so the order of the results is fixed no matter which
// worker finishes first.
func CompareAll(profiles []*profile.Profile, workers int) []PairResult {
	workers = nWorkers(workers)
	pp := pairs(len(profiles))
	results := make([]PairResult, len(pp))
	if len(pp) == 0 {
		return results
	}

	inner := 1 // with few pairs, spread each comparison over workers
	if len(pp) < workers {
		inner = workers / len(pp)
	}
	opts := dist.Options{Workers: inner}

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	outer := min(workers, len(pp))
	wg.Add(outer)
	for w := 0; w < outer; w++ {
		go func() {
			defer wg.Done()
			for k := range jobs {
				i, j := pp[k][0], pp[k][1]
				corr, err := dist.Compare(profiles[i], profiles[j], opts)
				results[k] = PairResult{I: i, J: j, Corr: corr, Undefined: err != nil}
			}
		}()
	}
	for k := range pp {
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	for _, r := range results {
		if r.Undefined {
			log.Warnf("%03d %03d similarity undefined", r.I, r.J)
		}
	}
	return results
}
