package hdf5io

import (
	"fmt"

	"gonum.org/v1/hdf5"

	deadtime "github.com/next-exp/deadtime_go/pkg"
)

// ReadEvents loads /events/time, the optional /events/pi column and the
// mjdref attribute of filename.
func ReadEvents(filename string) (*deadtime.EventList, error) {
	file, err := hdf5.OpenFile(filename, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, &deadtime.ErrOpenFile{Filename: filename, Err: err}
	}
	defer file.Close()

	timePath := EventsGroup + "/time"
	times, err := readArray[float64](file, timePath)
	if err != nil {
		return nil, fmt.Errorf("error reading %s from %s: %w", timePath, filename, err)
	}
	ev := &deadtime.EventList{Time: times}

	piPath := EventsGroup + "/pi"
	if file.LinkExists(piPath) {
		pi, err := readArray[int32](file, piPath)
		if err != nil {
			return nil, fmt.Errorf("error reading %s from %s: %w", piPath, filename, err)
		}
		ev.PI = make([]int, len(pi))
		for i, p := range pi {
			ev.PI[i] = int(p)
		}
	}

	mjdref, err := readMJDRef(file, timePath)
	if err != nil {
		return nil, fmt.Errorf("error reading mjdref from %s: %w", filename, err)
	}
	ev.MJDRef = mjdref

	return ev, ev.Validate()
}

func readMJDRef(file *hdf5.File, path string) (float64, error) {
	dset, err := file.OpenDataset(path)
	if err != nil {
		return 0, err
	}
	defer dset.Close()

	attr, err := dset.OpenAttribute("mjdref")
	if err != nil {
		// Files without the attribute use MJD 0 as reference.
		return 0, nil
	}
	defer attr.Close()

	var mjdref float64
	if err := attr.Read(&mjdref, hdf5.T_NATIVE_DOUBLE); err != nil {
		return 0, err
	}
	return mjdref, nil
}
