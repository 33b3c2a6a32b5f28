package grid

import (
	"github.com/batchatco/go-thrower"
)

// AlignAxis derives the section that selects, from a coordinate variable
// with shape axisShape, the subset matching sec applied to the data variable
// with shape varShape. It is ErrAxisShapeMismatch when no alignment exists.
func AlignAxis(varName, axisName string, varShape []int64, sec Section,
	axisShape []int64) (axisSec Section, err error) {
	defer thrower.RecoverError(&err)
	return alignAxis(varName, axisName, varShape, sec, axisShape), nil
}

// alignAxis tries, in order: an exact full-rank match, a rank-1 axis matched
// to the first dimension with the same extent, and a lower-rank axis matched
// to a contiguous run of dimensions starting at the first extent match. The
// first case to claim the axis wins; there is no backtracking if its
// consistency check then fails. A rank-0 axis has nothing to slice and
// yields an empty section.
func alignAxis(varName, axisName string, varShape []int64, sec Section,
	axisShape []int64) Section {
	q := len(axisShape)
	r := len(varShape)
	switch {
	case q == 0:
		return Section{}

	case q == r:
		for i := range varShape {
			if axisShape[i] != varShape[i] {
				failf(ErrAxisShapeMismatch,
					"axis %q shape %v does not match variable %q shape %v",
					axisName, axisShape, varName, varShape)
			}
		}
		return sec

	case q == 1:
		d := matchExtent(varShape, axisShape[0], 0)
		if d < 0 {
			failf(ErrAxisShapeMismatch,
				"axis %q length %d matches no dimension of variable %q %v",
				axisName, axisShape[0], varName, varShape)
		}
		// The first dimension with the matching extent wins. That is
		// ambiguous when several dimensions share the extent, e.g. a
		// square spatial grid.
		if dup := matchExtent(varShape, axisShape[0], d+1); dup >= 0 {
			logger.Warnf("axis %q of %q: dimensions %d and %d both have extent %d, using %d",
				axisName, varName, d, dup, axisShape[0], d)
		}
		return Section{
			First:  []int64{sec.First[d]},
			Last:   []int64{sec.Last[d]},
			Stride: []int64{sec.Stride[d]},
		}

	default:
		// The axis spans a contiguous run of q of the variable's
		// dimensions, starting at the first extent match.
		d := matchExtent(varShape, axisShape[0], 0)
		if d < 0 {
			failf(ErrAxisShapeMismatch,
				"axis %q leading length %d matches no dimension of variable %q %v",
				axisName, axisShape[0], varName, varShape)
		}
		for j := 1; j < q; j++ {
			if d+j >= r || varShape[d+j] != axisShape[j] {
				failf(ErrAxisShapeMismatch,
					"axis %q shape %v does not run along variable %q %v at dimension %d",
					axisName, axisShape, varName, varShape, d)
			}
		}
		return Section{
			First:  sec.First[d : d+q],
			Last:   sec.Last[d : d+q],
			Stride: sec.Stride[d : d+q],
		}
	}
}

// matchExtent returns the first dimension index at or after from whose
// extent equals length, or -1.
func matchExtent(shape []int64, length int64, from int) int {
	for i := from; i < len(shape); i++ {
		if shape[i] == length {
			return i
		}
	}
	return -1
}
