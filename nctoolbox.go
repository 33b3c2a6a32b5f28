// Package nctoolbox provides read access to gridded variables and their
// coordinate axes in dimensioned datasets such as NetCDF files. Data can be
// requested in full, as a first/last/stride hyperslab, or with index
// expression strings like ":", "2:10" and "end-2:end".
package nctoolbox

import (
	"github.com/luhan93/nctoolbox/api"
	"github.com/luhan93/nctoolbox/grid"
	"github.com/luhan93/nctoolbox/ncdataset"
)

// Dataset is an open dataset together with the accessor that reads from it.
// All methods are safe for concurrent use when the underlying source is.
type Dataset struct {
	src      api.DataSource
	accessor *grid.Accessor
	closer   interface{ Close() }
}

// Open opens a NetCDF file by name.
func Open(fname string) (*Dataset, error) {
	src, err := ncdataset.Open(fname)
	if err != nil {
		return nil, err
	}
	ds := NewDataset(src)
	ds.closer = src
	return ds, nil
}

// NewDataset wraps any data source, for callers with their own backing
// store. Close is a no-op for datasets created this way.
func NewDataset(src api.DataSource) *Dataset {
	return &Dataset{src: src, accessor: grid.NewAccessor(src)}
}

// Close closes the underlying file, if any.
func (d *Dataset) Close() {
	if d.closer != nil {
		d.closer.Close()
	}
}

// Data reads every element of the named variable.
func (d *Dataset) Data(name string) (any, error) {
	return d.accessor.ReadAll(name)
}

// Grid reads the full data of each coordinate axis of the named variable,
// keyed by axis name in declaration order.
func (d *Dataset) Grid(name string) (api.AxisMap, error) {
	return d.accessor.ReadGrid(name)
}

// DataSection reads the hyperslab sec of the named variable.
func (d *Dataset) DataSection(name string, sec grid.Section) (any, error) {
	return d.accessor.ReadSection(name, sec)
}

// GridSection reads, for each coordinate axis of the named variable, the
// subset matching sec.
func (d *Dataset) GridSection(name string, sec grid.Section) (api.AxisMap, error) {
	return d.accessor.ReadSectionGrid(name, sec)
}

// Query reads the named variable using one index expression string per
// dimension, e.g. Query("temp", "1:10", ":", "end").
func (d *Dataset) Query(name string, exprs ...string) (any, error) {
	parsed, err := grid.ParseExprs(exprs...)
	if err != nil {
		return nil, err
	}
	return d.accessor.Read(name, parsed...)
}
