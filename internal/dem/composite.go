package dem

import (
	"errors"
	"fmt"

	"github.com/jrossett/alpano/internal/geom"
)

// compositeModel answers samples from whichever child extent contains the
// coordinate; the first child wins on overlap. Built through Union.
type compositeModel struct {
	d1, d2 DiscreteModel
	extent geom.Interval2D
	closed bool
}

func (c *compositeModel) Extent() geom.Interval2D { return c.extent }

func (c *compositeModel) ElevationSample(x, y int) float64 {
	if c.closed {
		panic("dem: elevation sample from closed composite model")
	}
	if !c.extent.Contains(x, y) {
		panic(fmt.Sprintf("dem: coordinate (%d, %d) outside extent %v", x, y, c.extent))
	}
	if c.d1.Extent().Contains(x, y) {
		return c.d1.ElevationSample(x, y)
	}
	if c.d2.Extent().Contains(x, y) {
		return c.d2.ElevationSample(x, y)
	}
	return 0
}

func (c *compositeModel) Close() error {
	c.closed = true
	return errors.Join(c.d1.Close(), c.d2.Close())
}

// Fold unions a list of discrete models pairwise into a single model, in
// order. Callers should not rely on which tile answers where extents
// overlap: earlier models win.
func Fold(models []DiscreteModel) (DiscreteModel, error) {
	if len(models) == 0 {
		return nil, errors.New("dem: no models to fold")
	}
	acc := models[0]
	for _, m := range models[1:] {
		var err error
		acc, err = Union(acc, m)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
