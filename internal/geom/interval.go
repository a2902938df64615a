package geom

import "fmt"

// Interval1D is an inclusive interval of integers. The zero value is the
// single-element interval [0..0].
type Interval1D struct {
	from, to int
}

// NewInterval1D returns the interval [includedFrom..includedTo]. Panics when
// includedFrom > includedTo.
func NewInterval1D(includedFrom, includedTo int) Interval1D {
	if includedFrom > includedTo {
		panic(fmt.Sprintf("geom: inverted interval bounds [%d..%d]", includedFrom, includedTo))
	}
	return Interval1D{from: includedFrom, to: includedTo}
}

// IncludedFrom returns the lower bound of the interval.
func (i Interval1D) IncludedFrom() int { return i.from }

// IncludedTo returns the upper bound of the interval.
func (i Interval1D) IncludedTo() int { return i.to }

// Contains reports whether v belongs to the interval.
func (i Interval1D) Contains(v int) bool {
	return v >= i.from && v <= i.to
}

// Size returns the number of integers in the interval.
func (i Interval1D) Size() int {
	return i.to - i.from + 1
}

// SizeOfIntersectionWith returns the number of integers the two intervals
// have in common.
func (i Interval1D) SizeOfIntersectionWith(that Interval1D) int {
	if that.from > i.to || that.to < i.from {
		return 0
	}
	return min(i.to, that.to) - max(i.from, that.from) + 1
}

// BoundingUnion returns the smallest interval containing both intervals.
func (i Interval1D) BoundingUnion(that Interval1D) Interval1D {
	return Interval1D{from: min(i.from, that.from), to: max(i.to, that.to)}
}

// IsUnionableWith reports whether the two intervals overlap or touch, so
// that their union is itself an interval with no gap.
func (i Interval1D) IsUnionableWith(that Interval1D) bool {
	return i.Size()+that.Size()-i.SizeOfIntersectionWith(that) == i.BoundingUnion(that).Size()
}

// Union returns the union of the two intervals. Panics when they are not
// unionable.
func (i Interval1D) Union(that Interval1D) Interval1D {
	if !i.IsUnionableWith(that) {
		panic(fmt.Sprintf("geom: intervals %v and %v are not unionable", i, that))
	}
	return i.BoundingUnion(that)
}

func (i Interval1D) String() string {
	return fmt.Sprintf("[%d..%d]", i.from, i.to)
}

// Interval2D is the cartesian product of two 1-D intervals.
type Interval2D struct {
	ix, iy Interval1D
}

// NewInterval2D returns the 2-D interval ix × iy.
func NewInterval2D(ix, iy Interval1D) Interval2D {
	return Interval2D{ix: ix, iy: iy}
}

// IX returns the interval on the x axis.
func (i Interval2D) IX() Interval1D { return i.ix }

// IY returns the interval on the y axis.
func (i Interval2D) IY() Interval1D { return i.iy }

// Contains reports whether the point (x, y) belongs to the interval.
func (i Interval2D) Contains(x, y int) bool {
	return i.ix.Contains(x) && i.iy.Contains(y)
}

// Size returns the number of integer points in the interval.
func (i Interval2D) Size() int {
	return i.ix.Size() * i.iy.Size()
}

// SizeOfIntersectionWith returns the number of integer points the two
// intervals have in common.
func (i Interval2D) SizeOfIntersectionWith(that Interval2D) int {
	return i.ix.SizeOfIntersectionWith(that.ix) * i.iy.SizeOfIntersectionWith(that.iy)
}

// BoundingUnion returns the smallest 2-D interval containing both intervals.
func (i Interval2D) BoundingUnion(that Interval2D) Interval2D {
	return Interval2D{
		ix: i.ix.BoundingUnion(that.ix),
		iy: i.iy.BoundingUnion(that.iy),
	}
}

// IsUnionableWith reports whether the union of the two intervals is itself a
// 2-D interval, i.e. whether its area equals the sum of the two areas minus
// their intersection.
func (i Interval2D) IsUnionableWith(that Interval2D) bool {
	unionSize := i.Size() + that.Size() - i.SizeOfIntersectionWith(that)
	return unionSize == i.BoundingUnion(that).Size()
}

// Union returns the union of the two intervals. Panics when the component
// intervals are not unionable.
func (i Interval2D) Union(that Interval2D) Interval2D {
	return Interval2D{
		ix: i.ix.Union(that.ix),
		iy: i.iy.Union(that.iy),
	}
}

func (i Interval2D) String() string {
	return fmt.Sprintf("%vx%v", i.ix, i.iy)
}
