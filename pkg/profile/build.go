// 18 Oct 2026

package profile

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/andrew-torda/cvtree/pkg/alphabet"
	"github.com/andrew-torda/cvtree/pkg/seq/common"
	"github.com/andrew-torda/cvtree/pkg/white"
)

// BadSymPolicy says what to do with a byte that is not white space,
// not a record start and not in the alphabet.
type BadSymPolicy byte

const (
	Reject BadSymPolicy = iota // stop and return a *SymError
	Skip                       // carry on as if the byte were not there
)

func (b BadSymPolicy) String() string {
	if b == Skip {
		return "skip"
	}
	return "reject"
}

// ParseBadSym is for command line flags.
func ParseBadSym(s string) (BadSymPolicy, error) {
	switch strings.ToLower(s) {
	case "reject":
		return Reject, nil
	case "skip":
		return Skip, nil
	}
	return Reject, fmt.Errorf("bad symbol policy \"%s\" is not reject or skip", s)
}

// SymError reports a residue we cannot encode.
type SymError struct {
	Sym byte
	Pos int // byte offset in the input
}

func (e *SymError) Error() string {
	return fmt.Sprintf("bad sym \"%c\" (0x%02x) at position %d", e.Sym, e.Sym, e.Pos)
}

// Builder makes profiles. The zero value is not useful since it has
// no word length. A Builder can be shared by goroutines.
type Builder struct {
	Cfg     alphabet.Config
	Storage Storage
	BadSym  BadSymPolicy
}

// Build counts everything in data, which is the content of a fasta
// file. data is not kept, so the caller may unmap or reuse it.
func (bld Builder) Build(data []byte) (*Profile, error) {
	if bld.Cfg.L() == 0 {
		return nil, errors.New("builder has no word length")
	}
	s := scanner{
		bld:  bld,
		p:    newProfile(bld.Cfg, bld.Storage),
		data: data,
		nctx: bld.Cfg.L() - 1,
	}
	for state := gseed; state != nil; {
		state = state(&s)
	}
	if s.err != nil {
		return nil, s.err
	}
	s.p.finish()
	return s.p, nil
}

// BuildReader slurps everything from rdr and builds a profile.
func (bld Builder) BuildReader(rdr io.Reader) (*Profile, error) {
	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, errors.Wrap(err, "reading sequences")
	}
	return bld.Build(data)
}

// scanner walks over the input. It is a little state machine.
// Each state eats bytes until it has to hand over to another state
// or the input runs out.
type scanner struct {
	bld   Builder
	p     *Profile
	data  []byte
	pos   int
	ctx   int // index of the last L-1 residues
	nseed int // residues so far while seeding a record
	nctx  int // L - 1
	err   error
}

type stateFn func(*scanner) stateFn

// newRecord is called on a ">".
func (s *scanner) newRecord() stateFn {
	s.p.records++
	s.ctx = 0
	s.nseed = 0
	return gcmmt
}

// residue decides what to do with byte c. use is false if c is to be
// skipped. If err gets set, the caller should stop.
func (s *scanner) residue(c byte) (code int, use bool) {
	if white.IsWhite(c) {
		return 0, false
	}
	code, ok := alphabet.Encode(c)
	if ok {
		s.p.syms[code]++
		s.p.totalSyms++
		return code, true
	}
	if s.bld.BadSym == Reject {
		s.err = &SymError{Sym: c, Pos: s.pos}
	}
	return 0, false
}

// gcmmt throws away the comment line.
func gcmmt(s *scanner) stateFn {
	for ; s.pos < len(s.data); s.pos++ {
		if s.data[s.pos] == common.NL {
			s.pos++
			return gseed
		}
	}
	return nil
}

// gseed reads the first L-1 residues of a record. They only give us
// a context, not a k-mer. Input before the first ">" starts here too,
// but does not count as a record.
func gseed(s *scanner) stateFn {
	for ; s.pos < len(s.data); s.pos++ {
		c := s.data[s.pos]
		if c == common.CmmtChar {
			s.pos++
			return s.newRecord()
		}
		code, use := s.residue(c)
		if s.err != nil {
			return nil
		}
		if !use {
			continue
		}
		s.ctx = s.ctx*alphabet.A + code
		if s.nseed++; s.nseed == s.nctx {
			s.p.ctxs.Inc(s.ctx)
			s.pos++
			return gseq
		}
	}
	return nil
}

// gseq reads residues after the seed. Each one completes a k-mer and
// gives a new context.
func gseq(s *scanner) stateFn {
	m2 := s.bld.Cfg.M2()
	p := s.p
	for ; s.pos < len(s.data); s.pos++ {
		c := s.data[s.pos]
		if c == common.CmmtChar {
			s.pos++
			return s.newRecord()
		}
		code, use := s.residue(c)
		if s.err != nil {
			return nil
		}
		if !use {
			continue
		}
		p.kmers.Inc(s.ctx*alphabet.A + code)
		p.total++
		s.ctx = (s.ctx%m2)*alphabet.A + code
		p.ctxs.Inc(s.ctx)
	}
	return nil
}
