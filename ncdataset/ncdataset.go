// Package ncdataset adapts a NetCDF file opened with go-native-netcdf to
// the api.DataSource interface consumed by the grid accessor.
package ncdataset

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf"
	ncapi "github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-thrower"

	"github.com/luhan93/nctoolbox/api"
)

// Source reads variables from a NetCDF group.
type Source struct {
	group ncapi.Group
}

// Open opens a NetCDF file (classic CDF or HDF5 based) by name.
func Open(fname string) (*Source, error) {
	g, err := netcdf.Open(fname)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

// New wraps an already-open group. Close closes the group.
func New(g ncapi.Group) *Source {
	return &Source{group: g}
}

func (s *Source) Close() {
	s.group.Close()
}

func (s *Source) getter(name string) (ncapi.VarGetter, error) {
	vg, err := s.group.GetVarGetter(name)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, api.ErrUnknownVariable)
	}
	return vg, nil
}

// ShapeOf returns the dimension lengths of the named variable, resolved
// through the group's dimension table.
func (s *Source) ShapeOf(name string) ([]int64, error) {
	vg, err := s.getter(name)
	if err != nil {
		return nil, err
	}
	return s.shape(name, vg)
}

func (s *Source) shape(name string, vg ncapi.VarGetter) ([]int64, error) {
	dims := vg.Dimensions()
	shape := make([]int64, len(dims))
	for i, dim := range dims {
		length, has := s.group.GetDimension(dim)
		if !has {
			return nil, fmt.Errorf("variable %q dimension %q: %w",
				name, dim, api.ErrUnknownVariable)
		}
		shape[i] = int64(length)
	}
	return shape, nil
}

// Axes lists the coordinate variables of name using the usual NetCDF
// conventions: variables named after one of the variable's dimensions come
// first, in dimension order, then any extra names from the "coordinates"
// attribute. The variable itself is never its own axis.
func (s *Source) Axes(name string) ([]string, error) {
	vg, err := s.getter(name)
	if err != nil {
		return nil, err
	}
	known := map[string]bool{}
	for _, v := range s.group.ListVariables() {
		known[v] = true
	}
	var axes []string
	seen := map[string]bool{name: true}
	for _, dim := range vg.Dimensions() {
		if known[dim] && !seen[dim] {
			axes = append(axes, dim)
			seen[dim] = true
		}
	}
	if coords, has := vg.Attributes().Get("coordinates"); has {
		str, ok := coords.(string)
		if ok {
			for _, c := range strings.Fields(str) {
				if known[c] && !seen[c] {
					axes = append(axes, c)
					seen[c] = true
				}
			}
		}
	}
	return axes, nil
}

// ReadAll reads every element of the named variable.
func (s *Source) ReadAll(name string) (any, error) {
	vg, err := s.getter(name)
	if err != nil {
		return nil, err
	}
	return vg.Values()
}

// ReadSlice reads the hyperslab described by the 1-based inclusive triple.
// The reader only slices along the outermost dimension, so the row range is
// fetched with GetSlice and the stride and inner dimensions are applied to
// the nested slices it returns.
func (s *Source) ReadSlice(name string, first, last, stride []int64) (data any, err error) {
	defer thrower.RecoverError(&err)
	vg, err := s.getter(name)
	thrower.ThrowIfError(err)
	shape, err := s.shape(name, vg)
	thrower.ThrowIfError(err)
	if len(first) != len(shape) || len(last) != len(shape) ||
		len(stride) != len(shape) {
		return nil, fmt.Errorf("variable %q: triple rank %d does not match rank %d: %w",
			name, len(first), len(shape), api.ErrOutOfBounds)
	}
	for i, extent := range shape {
		if stride[i] < 1 || first[i] < 1 || first[i] > last[i] || last[i] > extent {
			return nil, fmt.Errorf("variable %q dimension %d: %d..%d by %d outside 1..%d: %w",
				name, i, first[i], last[i], stride[i], extent, api.ErrOutOfBounds)
		}
	}
	if len(shape) == 0 {
		return vg.Values()
	}
	rows, err := vg.GetSlice(first[0]-1, last[0])
	thrower.ThrowIfError(err)
	return hyperslab(reflect.ValueOf(rows), first, last, stride, first[0]-1).Interface(), nil
}

// hyperslab extracts from nested slices the elements a 1-based inclusive
// triple selects. trimmed is how many leading rows of the outermost
// dimension were already cut off before the call.
func hyperslab(v reflect.Value, first, last, stride []int64, trimmed int64) reflect.Value {
	n := (last[0]-first[0])/stride[0] + 1
	if v.Kind() == reflect.String {
		// A trailing character dimension comes back as a string.
		var sb strings.Builder
		str := v.String()
		for i := int64(0); i < n; i++ {
			sb.WriteByte(str[first[0]-1-trimmed+i*stride[0]])
		}
		return reflect.ValueOf(sb.String())
	}
	out := reflect.MakeSlice(v.Type(), int(n), int(n))
	for i := int64(0); i < n; i++ {
		elem := v.Index(int(first[0] - 1 - trimmed + i*stride[0]))
		if len(first) > 1 {
			elem = hyperslab(elem, first[1:], last[1:], stride[1:], 0)
		}
		out.Index(int(i)).Set(elem)
	}
	return out
}
