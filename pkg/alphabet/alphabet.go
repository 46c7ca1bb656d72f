// 18 Oct 2026

// Package alphabet maps amino acid letters to small integer codes and
// turns runs of codes into k-mer indices.
//
// A k-mer of length L is stored as a number in base A (A = 20), with the
// first residue as the most significant digit. For L = 6 there are
// A^6 = 64 million possible words.
package alphabet

import (
	"github.com/pkg/errors"
)

// A is the number of symbols we model. Ambiguity codes are folded onto
// one of these.
const A = 20

// Limits on word length. Below MinLen there is no context. Above MaxLen
// a dense profile would not fit in memory.
const (
	MinLen = 2
	MaxLen = 8
)

// DefaultLen is the word length used unless someone asks for another.
const DefaultLen = 6

// ErrWordLen is returned for a word length outside [MinLen, MaxLen].
var ErrWordLen = errors.New("word length out of range")

const bad int8 = -1

// canonical is indexed by code and gives the letter.
const canonical = "ACDEFGHIKLMNPQRSTVWY"

// codes is indexed by byte. Everything not set here is bad.
var codes [256]int8

func init() {
	for i := range codes {
		codes[i] = bad
	}
	for i := 0; i < len(canonical); i++ {
		codes[canonical[i]] = int8(i)
	}
	alias := map[byte]byte{
		'B': 'D', // asx
		'Z': 'E', // glx
		'U': 'C', // selenocysteine
		'X': 'G', // unknown
	}
	for from, to := range alias {
		codes[from] = codes[to]
	}
	for c := 'A'; c <= 'Z'; c++ {
		codes[c+'a'-'A'] = codes[c]
	}
}

// Encode returns the code for c. ok is false if c is not in the alphabet.
func Encode(c byte) (code int, ok bool) {
	x := codes[c]
	if x == bad {
		return 0, false
	}
	return int(x), true
}

// Decode gives the canonical letter for a code.
func Decode(code int) byte { return canonical[code] }

// Config holds the word length and the numbers derived from it.
// Build it with New and pass it around by value. It is never changed.
type Config struct {
	l  int
	m  int // A^L, number of k-mers
	m1 int // A^(L-1), number of contexts
	m2 int // A^(L-2), a context without its first residue
}

// New returns the configuration for words of length wordLen.
func New(wordLen int) (Config, error) {
	if wordLen < MinLen || wordLen > MaxLen {
		return Config{}, errors.Wrapf(ErrWordLen, "got %d, want %d..%d", wordLen, MinLen, MaxLen)
	}
	m2 := 1
	for i := 0; i < wordLen-2; i++ {
		m2 *= A
	}
	return Config{l: wordLen, m: m2 * A * A, m1: m2 * A, m2: m2}, nil
}

// MustNew is New for callers with a constant word length.
func MustNew(wordLen int) Config {
	cfg, err := New(wordLen)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (cfg Config) L() int  { return cfg.l }
func (cfg Config) M() int  { return cfg.m }
func (cfg Config) M1() int { return cfg.m1 }
func (cfg Config) M2() int { return cfg.m2 }

// Index packs codes into an index, first code most significant.
func (cfg Config) Index(codes []int) int {
	i := 0
	for _, c := range codes {
		i = i*A + c
	}
	return i
}

// Digits unpacks a k-mer index into its L codes.
func (cfg Config) Digits(i int) []int {
	d := make([]int, cfg.l)
	for n := cfg.l - 1; n >= 0; n-- {
		d[n] = i % A
		i /= A
	}
	return d
}

// KmerString is for printing and debugging.
func (cfg Config) KmerString(i int) string {
	d := cfg.Digits(i)
	b := make([]byte, len(d))
	for n, c := range d {
		b[n] = Decode(c)
	}
	return string(b)
}

// The four ways of cutting a k-mer that the model needs.
// Prefix is the leading context, Last the trailing residue,
// Suffix the trailing context and First the leading residue.
func (cfg Config) Prefix(i int) int { return i / A }
func (cfg Config) Last(i int) int   { return i % A }
func (cfg Config) Suffix(i int) int { return i % cfg.m1 }
func (cfg Config) First(i int) int  { return i / cfg.m1 }
