package orgload_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/andrew-torda/cvtree/pkg/orgload"
	"github.com/andrew-torda/cvtree/pkg/randseq"
	"github.com/andrew-torda/cvtree/pkg/seq/common"
)

var smalltestArg = randseq.RandSeqArgs{
	Cmmt:  "test seq",
	Nseq:  1000,
	Len:   200,
	White: true,
}

func makeTestData() (string, error) {
	args := smalltestArg
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", err
	} else {
		args.Wrtr = f_tmp
		defer f_tmp.Close()
	}

	if err := randseq.RandSeqMain(&args); err != nil {
		return "", err
	}
	return f_tmp.Name(), nil
}

func TestReadList(t *testing.T) {
	good := []struct {
		in   string
		want []string
	}{
		{"2 orgA orgB", []string{"orgA", "orgB"}},
		{"3\nAAA\nBBB\n  CCC\n", []string{"AAA", "BBB", "CCC"}},
		{"0\n", []string{}},
		{"1 abcdefghi extra words", []string{"abcdefghi"}},
	}
	for _, g := range good {
		got, err := orgload.ReadList(strings.NewReader(g.in))
		if err != nil {
			t.Fatalf("%q: %v", g.in, err)
		}
		if !reflect.DeepEqual(got, g.want) {
			t.Fatalf("%q got %v want %v", g.in, got, g.want)
		}
	}
	bad := []string{"", "two a b", "-1", "3 a b", "1 abcdefghij"}
	for _, b := range bad {
		if _, err := orgload.ReadList(strings.NewReader(b)); !errors.Is(err, orgload.ErrFormat) {
			t.Fatalf("%q should give a format error, got %v", b, err)
		}
	}
}

func TestReadListFile(t *testing.T) {
	if _, err := orgload.ReadListFile("notexist"); err == nil {
		t.Fatal("missing list file should fail")
	}
	fname, err := common.WrtTemp("1 x\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if names, err := orgload.ReadListFile(fname); err != nil || len(names) != 1 {
		t.Fatal(names, err)
	}
}

func TestPath(t *testing.T) {
	if p := orgload.Path("data", "abc"); p != filepath.Join("data", "abc.faa") {
		t.Fatal("path", p)
	}
}

// TestLoad reads the same file both ways.
func TestLoad(t *testing.T) {
	fname, err := makeTestData()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	want, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	for _, ld := range []orgload.Loader{{Mmap: false}, {Mmap: true}} {
		var n int
		err := ld.Load(fname, func(b []byte) error {
			if !bytes.Equal(b, want) {
				t.Fatalf("mmap %v contents differ", ld.Mmap)
			}
			n = bytes.Count(b, []byte(">"))
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if n != smalltestArg.Nseq {
			t.Fatal("Expected", smalltestArg.Nseq, "got", n)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	boom := errors.New("boom")
	empty, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(empty)
	for _, ld := range []orgload.Loader{{Mmap: false}, {Mmap: true}} {
		if err := ld.Load("notexist", func([]byte) error { return nil }); !errors.Is(err, os.ErrNotExist) {
			t.Fatal("missing file, got", err)
		}
		if err := ld.Load(empty, func(b []byte) error {
			if len(b) != 0 {
				t.Fatal("empty file gave bytes")
			}
			return boom
		}); !errors.Is(err, boom) {
			t.Fatal("callback error lost, got", err)
		}
	}
}

func setupbmark(b *testing.B) string {
	b.StopTimer()
	fname, err := makeTestData()
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { os.Remove(fname) })
	b.StartTimer()
	return fname
}

func benchmarkLoad(b *testing.B, ld orgload.Loader) {
	fname := setupbmark(b)
	for i := 0; i < b.N; i++ {
		ld.Load(fname, func(buf []byte) error {
			if n := bytes.Count(buf, []byte(">")); n != smalltestArg.Nseq {
				b.Fatal("Expected", smalltestArg.Nseq, "got", n)
			}
			return nil
		})
	}
}

func BenchmarkReadFile(b *testing.B) { benchmarkLoad(b, orgload.Loader{}) }
func BenchmarkMmap(b *testing.B) { benchmarkLoad(b, orgload.Loader{Mmap: true}) }
