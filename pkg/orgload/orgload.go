// 3 Aug 2020

// Package orgload reads the list of organisms and gets each organism's
// sequence file into memory, either by reading it or by mapping it.
package orgload

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// MaxNameLen is the longest organism identifier we accept.
const MaxNameLen = 9

// Suffix is appended to an organism name to get its sequence file.
const Suffix = ".faa"

// ErrFormat is wrapped by every complaint about the list file.
var ErrFormat = errors.New("list file format")

// ReadList reads a count, then that many organism names. Anything after
// the names is ignored.
func ReadList(rdr io.Reader) ([]string, error) {
	scn := bufio.NewScanner(rdr)
	scn.Split(bufio.ScanWords)
	if !scn.Scan() {
		if err := scn.Err(); err != nil {
			return nil, errors.Wrap(err, "reading list")
		}
		return nil, errors.Wrap(ErrFormat, "no organism count")
	}
	n, err := strconv.Atoi(scn.Text())
	if err != nil || n < 0 {
		return nil, errors.Wrapf(ErrFormat, "organism count \"%s\" is not a non-negative integer", scn.Text())
	}
	names := make([]string, 0, n)
	for len(names) < n {
		if !scn.Scan() {
			if err := scn.Err(); err != nil {
				return nil, errors.Wrap(err, "reading list")
			}
			return nil, errors.Wrapf(ErrFormat, "expected %d names, found %d", n, len(names))
		}
		name := scn.Text()
		if len(name) > MaxNameLen {
			return nil, errors.Wrapf(ErrFormat, "name \"%s\" longer than %d", name, MaxNameLen)
		}
		names = append(names, name)
	}
	extra := 0
	for scn.Scan() {
		extra++
	}
	if extra > 0 {
		log.Warnf("ignoring %d words after the %d organism names", extra, n)
	}
	return names, nil
}

// ReadListFile opens fname and calls ReadList.
func ReadListFile(fname string) ([]string, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "list file")
	}
	defer fp.Close()
	names, err := ReadList(fp)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", fname)
	}
	return names, nil
}

// Path is where we look for an organism's sequences.
func Path(dir, name string) string { return filepath.Join(dir, name+Suffix) }

// Loader gets file contents into memory. The byte slice given to the
// callback is only valid during the call.
type Loader struct {
	Mmap bool
}

// Load gives fn the contents of fname.
func (ld Loader) Load(fname string, fn func([]byte) error) error {
	if ld.Mmap {
		return byMmap(fname, fn)
	}
	return byReadFile(fname, fn)
}

// byMmap maps the file read-only and unmaps it when fn is finished.
func byMmap(fname string, fn func([]byte) error) error {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return errors.Wrap(err, "sequence file")
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", fname)
	}
	if fi.Size() == 0 { // mmap will not map an empty file
		return fn(nil)
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return errors.Wrapf(err, "mmap %s", fname)
	}
	defer mm.Unmap()
	return fn(mm)
}

// byReadFile slurps the whole file. A short read comes back as an error
// from os.ReadFile.
func byReadFile(fname string, fn func([]byte) error) error {
	buf, err := os.ReadFile(fname)
	if err != nil {
		return errors.Wrap(err, "sequence file")
	}
	return fn(buf)
}
