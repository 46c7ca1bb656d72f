// 18 Oct 2026

package cvtree

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
)

// WriteResults writes one line per pair, in the order given.
func WriteResults(w io.Writer, results []PairResult) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Undefined {
			fmt.Fprintf(bw, "%03d %03d -> undefined\n", r.I, r.J)
		} else {
			fmt.Fprintf(bw, "%03d %03d -> %.10f\n", r.I, r.J, r.Corr)
		}
	}
	return bw.Flush()
}

// DistMatrix turns similarities into a square matrix of distances,
// d = (1 - C) / 2, so identical organisms are at 0 and opposite ones
// at 1. An undefined similarity is put at the maximum distance.
func DistMatrix(n int, results []PairResult) *matrix.FMatrix2d {
	d := matrix.NewFMatrix2d(n, n)
	for _, r := range results {
		x := float32(1)
		if !r.Undefined {
			x = float32((1 - r.Corr) / 2)
		}
		d.Mat[r.I][r.J] = x
		d.Mat[r.J][r.I] = x
	}
	return d
}

// WritePhylip writes the distance matrix in the square format read by
// phylip's neighbor and most other tree building programs.
// Names are padded to ten characters.
func WritePhylip(w io.Writer, names []string, results []PairResult) error {
	d := DistMatrix(len(names), results)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%5d\n", len(names))
	for i, name := range names {
		fmt.Fprintf(bw, "%-10s", name)
		for _, x := range d.Mat[i] {
			fmt.Fprintf(bw, " %.6f", x)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
