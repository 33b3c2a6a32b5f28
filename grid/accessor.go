package grid

import (
	"github.com/batchatco/go-thrower"

	"github.com/luhan93/nctoolbox/api"
	"github.com/luhan93/nctoolbox/util"
)

// Accessor reads variables and their coordinate axes from a DataSource.
// It holds no state of its own beyond the source, so concurrent calls are
// safe whenever the source permits concurrent reads.
type Accessor struct {
	ds api.DataSource
}

func NewAccessor(ds api.DataSource) *Accessor {
	return &Accessor{ds: ds}
}

// ReadAll reads every element of the named variable.
func (a *Accessor) ReadAll(name string) (any, error) {
	return a.ds.ReadAll(name)
}

// ReadGrid reads the full, unsliced data of every coordinate axis of the
// named variable, keyed by axis name in declaration order.
func (a *Accessor) ReadGrid(name string) (axes api.AxisMap, err error) {
	defer thrower.RecoverError(&err)
	names, err := a.ds.Axes(name)
	thrower.ThrowIfError(err)
	am := util.NewEmptyOrderedMap()
	for _, axis := range names {
		vals, err := a.ds.ReadAll(axis)
		thrower.ThrowIfError(err)
		am.Add(axis, vals)
	}
	return am, nil
}

// ReadSection reads the hyperslab sec of the named variable. An omitted
// Last defaults to the variable's shape and an omitted Stride to all ones.
func (a *Accessor) ReadSection(name string, sec Section) (data any, err error) {
	defer thrower.RecoverError(&err)
	sec, _ = a.resolveSection(name, sec)
	return a.ds.ReadSlice(name, sec.First, sec.Last, sec.Stride)
}

// ReadSectionGrid reads, for every coordinate axis of the named variable,
// the subset matching sec. Each axis is aligned against the variable's
// dimensions to find its own section; a rank-0 axis is read in full. Any
// axis that fails to align aborts the whole request.
func (a *Accessor) ReadSectionGrid(name string, sec Section) (axes api.AxisMap, err error) {
	defer thrower.RecoverError(&err)
	sec, shape := a.resolveSection(name, sec)
	names, err := a.ds.Axes(name)
	thrower.ThrowIfError(err)
	am := util.NewEmptyOrderedMap()
	for _, axis := range names {
		axisShape, err := a.ds.ShapeOf(axis)
		thrower.ThrowIfError(err)
		var vals any
		if len(axisShape) == 0 {
			vals, err = a.ds.ReadAll(axis)
		} else {
			axisSec := alignAxis(name, axis, shape, sec, axisShape)
			vals, err = a.ds.ReadSlice(axis, axisSec.First, axisSec.Last, axisSec.Stride)
		}
		thrower.ThrowIfError(err)
		am.Add(axis, vals)
	}
	return am, nil
}

// Read translates the index expressions against the variable's shape and
// reads the resulting hyperslab.
func (a *Accessor) Read(name string, exprs ...IndexExpr) (data any, err error) {
	defer thrower.RecoverError(&err)
	shape, err := a.ds.ShapeOf(name)
	thrower.ThrowIfError(err)
	sec := translate(name, shape, exprs)
	return a.ds.ReadSlice(name, sec.First, sec.Last, sec.Stride)
}

// resolveSection fills the section defaults and checks its invariants
// against the variable's declared shape, throwing on violation.
func (a *Accessor) resolveSection(name string, sec Section) (Section, []int64) {
	shape, err := a.ds.ShapeOf(name)
	thrower.ThrowIfError(err)
	sec = sec.withDefaults(shape)
	sec.validate(name, shape)
	return sec, shape
}
