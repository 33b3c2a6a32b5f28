// Package api declares the interfaces between the gridded-data access layer
// and the raw data source that backs it (a NetCDF reader, an in-memory store,
// or anything else that can produce rectangular hyperslabs).
package api

import "errors"

var (
	// ErrUnknownVariable is returned when a named variable does not exist
	// in the data source.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrOutOfBounds is returned by a data source when a requested index
	// exceeds the variable's shape.
	ErrOutOfBounds = errors.New("index out of bounds")
)

// DataSource is the raw-array collaborator. It owns file parsing, byte-level
// I/O and the variable catalog; the access layer only ever queries it.
// Implementations must permit concurrent reads if callers read concurrently.
type DataSource interface {
	// ShapeOf returns the declared dimension lengths of the named variable,
	// outermost dimension first. A scalar variable has an empty shape.
	ShapeOf(name string) ([]int64, error)

	// Axes returns the names of the coordinate variables associated with
	// the named variable, in declaration order. The list may be empty and
	// need not have one entry per dimension.
	Axes(name string) ([]string, error)

	// ReadAll reads every element of the named variable.
	ReadAll(name string) (any, error)

	// ReadSlice reads the rectangular hyperslab selecting, along each
	// dimension i, the 1-based indices first[i], first[i]+stride[i], ...
	// up to and including last[i]. The three slices must have length equal
	// to the variable's rank.
	ReadSlice(name string, first, last, stride []int64) (any, error)
}

// AxisMap is an ordered map of coordinate-variable names to their values,
// as returned by grid requests. Keys preserve declaration order.
type AxisMap interface {
	// Keys lists the axis names in order.
	Keys() []string
	// Get returns the values read for the named axis.
	Get(name string) (val any, has bool)
	// Len is the number of axes.
	Len() int
}
