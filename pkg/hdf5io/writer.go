package hdf5io

import (
	"errors"
	"fmt"

	"gonum.org/v1/hdf5"

	deadtime "github.com/next-exp/deadtime_go/pkg"
)

type Writer struct {
	File          *hdf5.File
	Filename      string
	EventsGroup   *hdf5.Group
	DeadTimeGroup *hdf5.Group
}

func NewWriter(filename string) (*Writer, error) {
	file, err := hdf5.CreateFile(filename, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &deadtime.ErrOpenFile{Filename: filename, Err: err}
	}
	writer := &Writer{File: file, Filename: filename}

	writer.EventsGroup, err = createGroup(file, EventsGroup)
	if err != nil {
		file.Close()
		return nil, err
	}
	writer.DeadTimeGroup, err = createGroup(file, DeadTimeGroup)
	if err != nil {
		writer.EventsGroup.Close()
		file.Close()
		return nil, err
	}
	return writer, nil
}

// WriteEvents stores the filtered event list. Only the time column and the
// reference epoch are written.
func (w *Writer) WriteEvents(ev *deadtime.EventList) error {
	dset, err := writeArray(w.EventsGroup, "time", hdf5.T_NATIVE_DOUBLE, ev.Time)
	if err != nil {
		return err
	}
	defer dset.Close()
	if err := writeScalarAttribute(dset, "mjdref", hdf5.T_NATIVE_DOUBLE, ev.MJDRef); err != nil {
		return fmt.Errorf("error writing mjdref: %w", err)
	}
	return nil
}

// WriteDiagnostics stores the masks, retained background and per-event dead
// times of a filtering pass, tagged with the model parameters.
func (w *Writer) WriteDiagnostics(diag *deadtime.Diagnostics, deadTime float64, opts deadtime.Options) error {
	if diag == nil {
		return errors.New("no diagnostics to write")
	}

	mask, err := writeArray(w.DeadTimeGroup, "mask", hdf5.T_NATIVE_UINT8, boolsToUint8(diag.Mask))
	if err != nil {
		return err
	}
	defer mask.Close()
	if err := writeScalarAttribute(mask, "dead_time", hdf5.T_NATIVE_DOUBLE, deadTime); err != nil {
		return fmt.Errorf("error writing dead_time: %w", err)
	}
	if err := writeScalarAttribute(mask, "dt_sigma", hdf5.T_NATIVE_DOUBLE, opts.DtSigma); err != nil {
		return fmt.Errorf("error writing dt_sigma: %w", err)
	}
	paralyzable := uint8(0)
	if opts.Paralyzable {
		paralyzable = 1
	}
	if err := writeScalarAttribute(mask, "paralyzable", hdf5.T_NATIVE_UINT8, paralyzable); err != nil {
		return fmt.Errorf("error writing paralyzable: %w", err)
	}

	uint8Arrays := []struct {
		name string
		data []uint8
	}{
		{"source_mask", boolsToUint8(diag.SourceMask)},
		{"is_source", boolsToUint8(diag.IsSource)},
	}
	for _, a := range uint8Arrays {
		if err := w.writeAndClose(a.name, hdf5.T_NATIVE_UINT8, a.data); err != nil {
			return err
		}
	}
	if err := w.writeAndClose("background", hdf5.T_NATIVE_DOUBLE, diag.RetainedBackground); err != nil {
		return err
	}
	return w.writeAndClose("dead_times", hdf5.T_NATIVE_DOUBLE, diag.DeadTimes)
}

func (w *Writer) writeAndClose(name string, dtype *hdf5.Datatype, data any) error {
	var dset *hdf5.Dataset
	var err error
	switch d := data.(type) {
	case []uint8:
		dset, err = writeArray(w.DeadTimeGroup, name, dtype, d)
	case []float64:
		dset, err = writeArray(w.DeadTimeGroup, name, dtype, d)
	default:
		return fmt.Errorf("unsupported column type %T for %s", data, name)
	}
	if err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return dset.Close()
}

func (w *Writer) Close() error {
	return errors.Join(
		w.EventsGroup.Close(),
		w.DeadTimeGroup.Close(),
		w.File.Close(),
	)
}
