// Package brokenio wraps readers and writers so they fail. It is for
// testing the paths where a sequence file or output stream goes bad.
// Typical use: you have a reader from a file. You write
//	rdr = brokenio.NewReader(rdr, seed)
// and then set how often it should go wrong.
// Everything works as before, but with artificial errors.
// Failures come from a seeded generator, so a test sees the same
// failure every time.
package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what a wrapped reader or writer returns when it fails.
var ErrBroken = errors.New("brokenio: artificial failure")

// Reader wraps an io.Reader with a chance of failing on each read.
// probFail is the fraction of calls that fail, so 0.05 means
// failure in 5% of the cases. probZeroFile is the chance of returning
// io.EOF on the first call, which is what one sees on a zero length file.
type Reader struct {
	rdrOrig      io.Reader
	rnd          *rand.Rand
	probZeroFile float32
	probFail     float32
	nCalled      int
	nByte        int
}

// NewReader returns a Reader that does not fail until told to.
func NewReader(rIn io.Reader, seed int64) *Reader {
	return &Reader{rdrOrig: rIn, rnd: rand.New(rand.NewSource(seed))}
}

// SetProbZeroFile sets the rate at which we return nothing on the
// first read. It must be from 0 to 1. We do not check.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// NByte is the amount of data that has gone through.
func (r *Reader) NByte() int { return r.nByte }

// Read wraps the original reader. A failed read keeps the first half of
// what it read and returns ErrBroken.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		n /= 2
		r.nByte += n
		return n, ErrBroken
	}
	r.nByte += n
	return n, err
}

// Writer accepts limit bytes and then fails.
type Writer struct {
	wrtrOrig io.Writer
	limit    int
	nByte    int
}

// NewWriter wraps w. A negative limit never fails.
func NewWriter(w io.Writer, limit int) *Writer {
	return &Writer{wrtrOrig: w, limit: limit}
}

// Write passes on as much as fits under the limit.
func (w *Writer) Write(p []byte) (int, error) {
	if w.limit < 0 {
		n, err := w.wrtrOrig.Write(p)
		w.nByte += n
		return n, err
	}
	room := w.limit - w.nByte
	if room >= len(p) {
		n, err := w.wrtrOrig.Write(p)
		w.nByte += n
		return n, err
	}
	if room < 0 {
		room = 0
	}
	n, err := w.wrtrOrig.Write(p[:room])
	w.nByte += n
	if err != nil {
		return n, err
	}
	return n, ErrBroken
}
