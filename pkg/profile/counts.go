// 18 Oct 2026

package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Reader is the read-only side of a tally indexed by k-mer or
// context index. A finished profile only hands these out.
type Reader interface {
	At(i int) uint32
	Len() int      // number of possible indices
	Distinct() int // number of indices with a non-zero count
	Range(f func(i int, n uint32))
}

// Counts is a tally that can still be added to. There are two ways of
// storing it. A dense slice costs memory proportional to the number of
// possible words. A sparse map costs memory proportional to the number
// of words actually seen, but every lookup is slower.
type Counts interface {
	Reader
	Inc(i int)
}

// Storage says which kind of Counts a profile is built with.
type Storage byte

const (
	Dense Storage = iota
	Sparse
)

func (s Storage) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	}
	return fmt.Sprintf("Storage(%d)", byte(s))
}

// ParseStorage is for command line flags.
func ParseStorage(s string) (Storage, error) {
	switch strings.ToLower(s) {
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	}
	return Dense, fmt.Errorf("storage \"%s\" is not dense or sparse", s)
}

// newCounts returns empty counts for n possible indices.
func (s Storage) newCounts(n int) Counts {
	if s == Sparse {
		return &sparse{n: n, m: make(map[int]uint32)}
	}
	return make(dense, n)
}

// dense --------------------------------------------------------------

type dense []uint32

func (d dense) Inc(i int) { d[i]++ }
func (d dense) At(i int) uint32 { return d[i] }
func (d dense) Len() int { return len(d) }

func (d dense) Distinct() (n int) {
	for _, x := range d {
		if x != 0 {
			n++
		}
	}
	return n
}

func (d dense) Range(f func(i int, n uint32)) {
	for i, x := range d {
		if x != 0 {
			f(i, x)
		}
	}
}

// sparse -------------------------------------------------------------

type sparse struct {
	n int
	m map[int]uint32
}

func (s *sparse) Inc(i int) { s.m[i]++ }
func (s *sparse) At(i int) uint32 { return s.m[i] }
func (s *sparse) Len() int { return s.n }
func (s *sparse) Distinct() int { return len(s.m) }

// Range visits in increasing index order, like the dense version.
func (s *sparse) Range(f func(i int, n uint32)) {
	keys := make([]int, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		f(k, s.m[k])
	}
}
