// 27 April 2020

package kmerstat_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/cvtree/pkg/alphabet"
	. "github.com/andrew-torda/cvtree/pkg/kmerstat"
	"github.com/andrew-torda/cvtree/pkg/orgload"
	"github.com/andrew-torda/cvtree/pkg/profile"
)

func TestTop(t *testing.T) {
	// AAC repeated makes AC and CA much commoner than the model says
	// and AA a bit less common.
	bld := profile.Builder{Cfg: alphabet.MustNew(2)}
	p, err := bld.Build([]byte(">x\nAACAACAACAAC\n"))
	if err != nil {
		t.Fatal(err)
	}
	top := Top(p, 10)
	if len(top) != 3 {
		t.Fatalf("only 3 k-mers seen, got %d back", len(top))
	}
	for k := 1; k < len(top); k++ {
		if top[k].Residual > top[k-1].Residual {
			t.Fatal("not sorted", top)
		}
	}
	if top[2].Kmer != "AA" {
		t.Fatal("AA should come last, got", top)
	}
	for _, k := range top {
		if k.Observed == 0 {
			t.Fatal("unseen k-mer in output", k)
		}
	}
	if len(Top(p, 1)) != 1 {
		t.Fatal("asked for one")
	}
}

func TestTopStorage(t *testing.T) {
	seq := []byte(">a\nMKVLAAGICWYHHRRSPQEDMKVL\n>b\nAAAAWWWYYY\n")
	var got [2][]KmerStat
	for k, st := range []profile.Storage{profile.Dense, profile.Sparse} {
		p, err := profile.Builder{Cfg: alphabet.MustNew(3), Storage: st}.Build(seq)
		if err != nil {
			t.Fatal(err)
		}
		got[k] = Top(p, 5)
	}
	for i := range got[0] {
		if got[0][i].Kmer != got[1][i].Kmer {
			t.Fatal("dense and sparse differ", got[0], got[1])
		}
	}
}

func TestMymain(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"o1", "o2"} {
		s := ">r1\nMKVLAAGICWYHHRRSPQED\n>r2\nMKVLAAG\n"
		if err := os.WriteFile(orgload.Path(dir, name), []byte(s), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	out := filepath.Join(dir, "stats.csv")
	flags := CmdFlag{DataDir: dir, WordLen: 3, Storage: "sparse", BadSym: "reject", NTop: 4, Outfile: out, Workers: 2}
	if err := Mymain(&flags, []string{"o1", "o2"}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.HasPrefix(s, "# o1 records 2 ") || !strings.Contains(s, "# o2 records 2 ") {
		t.Fatalf("bad summary lines in\n%s", s)
	}
	if n := strings.Count(s, "\n"); n != 2*(2+4) {
		t.Fatalf("wanted %d lines, got %d", 2*(2+4), n)
	}
	flags.NTop = -1
	if err := Mymain(&flags, []string{"o1"}); err == nil {
		t.Fatal("negative count should fail")
	}
	flags.NTop, flags.WordLen = 1, 99
	if err := Mymain(&flags, []string{"o1"}); err == nil {
		t.Fatal("bad word length should fail")
	}
}
