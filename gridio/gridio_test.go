/*
 * gridio_test.go, part of molgrid.
 */

package gridio

import (
	"bytes"
	"math"
	"testing"

	"github.com/rmera/molgrid/grid"
)

func TestRoundTripUncompressed(Te *testing.T) {
	g := grid.NewDensityGrid(2, 4, grid.Host)
	for i := range g.Data {
		g.Data[i] = float64(i) * 0.5
	}

	var buf bytes.Buffer
	if err := Dump(&buf, g, false); err != nil {
		Te.Fatal(err)
	}
	got, err := Load(&buf, 2, 4, false, grid.Host)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range g.Data {
		if math.Abs(got.Data[i]-g.Data[i]) > 1e-5 {
			Te.Fatalf("round trip mismatch at %d: got %v want %v", i, got.Data[i], g.Data[i])
		}
	}
}

func TestRoundTripGzipped(Te *testing.T) {
	g := grid.NewDensityGrid(1, 6, grid.Host)
	g.Set(0, 2, 3, 1, 0.875)

	var buf bytes.Buffer
	if err := Dump(&buf, g, true); err != nil {
		Te.Fatal(err)
	}
	got, err := Load(&buf, 1, 6, true, grid.Host)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(got.At(0, 2, 3, 1)-0.875) > 1e-5 {
		Te.Errorf("expected 0.875, got %v", got.At(0, 2, 3, 1))
	}
}
