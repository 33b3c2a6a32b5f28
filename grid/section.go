// Package grid implements hyperslab indexing and coordinate-axis alignment
// for gridded variables. It translates per-dimension index expressions into
// first/last/stride triples, works out which dimensions of a data variable
// each coordinate variable spans, and reads the matching subsets through an
// api.DataSource.
package grid

import (
	"github.com/batchatco/go-thrower"
)

// Section selects a rectangular hyperslab of a variable. Indices are
// 1-based and both bounds are inclusive: along dimension i the selected
// indices are First[i], First[i]+Stride[i], ... up to and including Last[i].
//
// A nil Last defaults to the variable's shape and a nil Stride to all ones;
// defaults are resolved once when a request enters the accessor. A Section
// of rank 0 selects a scalar variable in full.
type Section struct {
	First  []int64
	Last   []int64
	Stride []int64
}

// Rank is the number of dimensions the section spans.
func (s Section) Rank() int {
	return len(s.First)
}

// Counts returns how many indices the section selects along each dimension.
func (s Section) Counts() []int64 {
	counts := make([]int64, len(s.First))
	for i := range s.First {
		counts[i] = (s.Last[i]-s.First[i])/s.Stride[i] + 1
	}
	return counts
}

// Size is the total number of selected elements.
func (s Section) Size() int64 {
	size := int64(1)
	for _, n := range s.Counts() {
		size *= n
	}
	return size
}

// Validate checks the section invariants against the shape of the named
// variable: matching ranks, strides of at least one, and
// 1 <= First[i] <= Last[i] <= shape[i] for every dimension.
func (s Section) Validate(name string, shape []int64) (err error) {
	defer thrower.RecoverError(&err)
	s.validate(name, shape)
	return nil
}

// fullSection selects every element of a variable with the given shape.
func fullSection(shape []int64) Section {
	sec := Section{
		First:  make([]int64, len(shape)),
		Last:   make([]int64, len(shape)),
		Stride: make([]int64, len(shape)),
	}
	for i, extent := range shape {
		sec.First[i] = 1
		sec.Last[i] = extent
		sec.Stride[i] = 1
	}
	return sec
}

// withDefaults fills an omitted Last from the variable's shape and an
// omitted Stride with ones.
func (s Section) withDefaults(shape []int64) Section {
	if s.Last == nil {
		s.Last = append([]int64(nil), shape...)
	}
	if s.Stride == nil {
		s.Stride = make([]int64, len(s.First))
		for i := range s.Stride {
			s.Stride[i] = 1
		}
	}
	return s
}

func (s Section) validate(name string, shape []int64) {
	if len(s.First) != len(shape) || len(s.Last) != len(shape) ||
		len(s.Stride) != len(shape) {
		failf(ErrRankMismatch,
			"variable %q: section rank %d does not match variable rank %d",
			name, len(s.First), len(shape))
	}
	for i, extent := range shape {
		if s.Stride[i] < 1 {
			failf(ErrIndexOutOfRange,
				"variable %q dimension %d: stride %d is less than 1",
				name, i, s.Stride[i])
		}
		if s.First[i] < 1 || s.First[i] > s.Last[i] || s.Last[i] > extent {
			failf(ErrIndexOutOfRange,
				"variable %q dimension %d: range %d..%d outside 1..%d",
				name, i, s.First[i], s.Last[i], extent)
		}
	}
}
