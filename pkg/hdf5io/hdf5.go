// Package hdf5io reads event lists from HDF5 files and writes the result of a
// dead time filtering pass.
//
// Layout:
//
//	/events/time          float64, arrival times in seconds (attribute mjdref)
//	/events/pi            int32, optional
//	/deadtime/mask        uint8, mask over the merged sorted stream
//	/deadtime/source_mask uint8
//	/deadtime/is_source   uint8
//	/deadtime/background  float64, retained background events
//	/deadtime/dead_times  float64, realised dead time of each event
package hdf5io

import (
	"gonum.org/v1/hdf5"

	deadtime "github.com/next-exp/deadtime_go/pkg"
)

const (
	EventsGroup   = "events"
	DeadTimeGroup = "deadtime"
)

func createGroup(file *hdf5.File, groupName string) (*hdf5.Group, error) {
	g, err := file.CreateGroup(groupName)
	if err != nil {
		return nil, &deadtime.ErrCreateGroup{GroupName: groupName, Err: err}
	}
	return g, nil
}

func writeArray[T any](group *hdf5.Group, name string, dtype *hdf5.Datatype, data []T) (*hdf5.Dataset, error) {
	dims := []uint{uint(len(data))}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return nil, &deadtime.ErrCreateTable{TableName: name, Err: err}
	}
	defer space.Close()

	dset, err := group.CreateDataset(name, dtype, space)
	if err != nil {
		return nil, &deadtime.ErrCreateTable{TableName: name, Err: err}
	}
	// Empty datasets are created but not written.
	if len(data) == 0 {
		return dset, nil
	}
	if err := dset.Write(&data); err != nil {
		dset.Close()
		return nil, &deadtime.ErrCreateTable{TableName: name, Err: err}
	}
	return dset, nil
}

func writeScalarAttribute[T any](dset *hdf5.Dataset, name string, dtype *hdf5.Datatype, value T) error {
	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}
	defer space.Close()

	attr, err := dset.CreateAttribute(name, dtype, space)
	if err != nil {
		return err
	}
	defer attr.Close()
	return attr.Write(&value, dtype)
}

func readArray[T any](file *hdf5.File, path string) ([]T, error) {
	dset, err := file.OpenDataset(path)
	if err != nil {
		return nil, err
	}
	defer dset.Close()

	space := dset.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, err
	}
	n := uint(1)
	for _, d := range dims {
		n *= d
	}
	data := make([]T, n)
	if n == 0 {
		return data, nil
	}
	if err := dset.Read(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func boolsToUint8(mask []bool) []uint8 {
	out := make([]uint8, len(mask))
	for i, m := range mask {
		if m {
			out[i] = 1
		}
	}
	return out
}
