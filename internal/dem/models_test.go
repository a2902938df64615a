package dem_test

import (
	"fmt"

	"github.com/jrossett/alpano/internal/dem"
	"github.com/jrossett/alpano/internal/geom"
)

// gridModel is an in-memory discrete model for tests.
type gridModel struct {
	extent    geom.Interval2D
	elevation func(x, y int) float64
	closed    bool
}

func newGridModel(extent geom.Interval2D, elevation func(x, y int) float64) *gridModel {
	if elevation == nil {
		elevation = func(int, int) float64 { return 0 }
	}
	return &gridModel{extent: extent, elevation: elevation}
}

func (g *gridModel) Extent() geom.Interval2D { return g.extent }

func (g *gridModel) ElevationSample(x, y int) float64 {
	if g.closed {
		panic("sample from closed test model")
	}
	if !g.extent.Contains(x, y) {
		panic(fmt.Sprintf("coordinate (%d, %d) outside test extent %v", x, y, g.extent))
	}
	return g.elevation(x, y)
}

func (g *gridModel) Close() error {
	g.closed = true
	return nil
}

var _ dem.DiscreteModel = (*gridModel)(nil)
