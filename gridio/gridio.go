/*
 * gridio.go, part of molgrid.
 */

package gridio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"

	"github.com/rmera/molgrid/grid"
)

// Dump writes g to w as a flat sequence of 4-byte little-endian floats, in
// the same channel-major/x-major/y-major/z-major order grid.DensityGrid
// keeps in memory. If gzipped is true, the stream is gzip-compressed.
func Dump(w io.Writer, g4 *grid.DensityGrid, gzipped bool) error {
	dst := w
	var gz *gzip.Writer
	if gzipped {
		gz = gzip.NewWriter(w)
		dst = gz
	}
	buf := make([]byte, 4)
	for _, v := range g4.Data {
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
		if _, err := dst.Write(buf); err != nil {
			return err
		}
	}
	if gz != nil {
		return gz.Close()
	}
	return nil
}

// Load reads a grid of the given shape from r, undoing Dump. The caller
// must know types and dim in advance - this format carries no shape
// header.
func Load(r io.Reader, types, dim int, gzipped bool, loc grid.Location) (*grid.DensityGrid, error) {
	src := r
	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		src = gz
	}

	out := grid.NewDensityGrid(types, dim, loc)
	buf := make([]byte, 4)
	for i := range out.Data {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, err
		}
		out.Data[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
	}
	return out, nil
}
