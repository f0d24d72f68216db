/*
 * density_slice.go, part of molgrid.
 */

package chemplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/molgrid/grid"
)

// sliceGrid adapts one (channel, z) slice of a grid.DensityGrid to
// plotter.GridXYZ, the interface plotter.NewHeatMap needs.
type sliceGrid struct {
	g       *grid.DensityGrid
	channel int
	z       int
}

func (s sliceGrid) Dims() (c, r int) { return s.g.Dim, s.g.Dim }

func (s sliceGrid) Z(c, r int) float64 { return s.g.At(s.channel, c, r, s.z) }

func (s sliceGrid) X(c int) float64 { return float64(c) }

func (s sliceGrid) Y(r int) float64 { return float64(r) }

// DensitySlice builds a heatmap plot of one z-slice of one channel of g.
func DensitySlice(g *grid.DensityGrid, channel, z int, title string) (*plot.Plot, error) {
	if channel < 0 || channel >= g.Types {
		return nil, fmt.Errorf("chemplot: DensitySlice: channel %d out of range [0,%d)", channel, g.Types)
	}
	if z < 0 || z >= g.Dim {
		return nil, fmt.Errorf("chemplot: DensitySlice: z %d out of range [0,%d)", z, g.Dim)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (voxels)"
	p.Y.Label.Text = "y (voxels)"

	heatmap := plotter.NewHeatMap(sliceGrid{g: g, channel: channel, z: z}, moreland.SmoothBlueRed().Palette(255))
	p.Add(heatmap)
	return p, nil
}

// SaveDensitySlice builds and saves a DensitySlice plot as a 4x4 inch PNG.
func SaveDensitySlice(g *grid.DensityGrid, channel, z int, title, filename string) error {
	p, err := DensitySlice(g, channel, z, title)
	if err != nil {
		return err
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
