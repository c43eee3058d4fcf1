package deadtime

import (
	"fmt"
	"strings"
)

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error { return e.Err }

// ErrCreateGroup represents an error when creating a group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

func (e *ErrCreateGroup) Unwrap() error { return e.Err }

// ErrCreateTable represents an error when creating a table.
type ErrCreateTable struct {
	TableName string
	Err       error
}

func (e *ErrCreateTable) Error() string {
	return fmt.Sprintf("error creating table %q: %v", e.TableName, e.Err)
}

func (e *ErrCreateTable) Unwrap() error { return e.Err }

// ErrInvalidTime is returned when a timestamp is NaN or infinite.
type ErrInvalidTime struct {
	Stream string
	Index  int
	Value  float64
}

func (e *ErrInvalidTime) Error() string {
	return fmt.Sprintf("invalid %s time at index %d: %v", e.Stream, e.Index, e.Value)
}

// ErrInvalidParameter is returned for parameters that cannot be simulated,
// such as a negative jitter width.
type ErrInvalidParameter struct {
	Name  string
	Value float64
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Name, e.Value)
}

// ErrColumnLength is returned when a per-event column does not match the
// length of the time column.
type ErrColumnLength struct {
	Column string
	Length int
	Want   int
}

func (e *ErrColumnLength) Error() string {
	return fmt.Sprintf("column %q has %d entries, expected %d", e.Column, e.Length, e.Want)
}

// The following are warnings: they are reported in Result.Warnings next to a
// valid result and are never returned as the error of a call.

// ErrNegativeDeadTime reports that a negative dead time was requested. The
// filter lets every event through in that case.
type ErrNegativeDeadTime struct {
	DeadTime float64
}

func (e *ErrNegativeDeadTime) Error() string {
	return fmt.Sprintf("Dead time < 0 (%v s); treating it as no dead time, all events pass", e.DeadTime)
}

// ErrFieldsLost reports per-event columns that were not carried over to a
// filtered event list.
type ErrFieldsLost struct {
	Fields []string
}

func (e *ErrFieldsLost) Error() string {
	return fmt.Sprintf("%s information is lost during dead time filtering", strings.Join(e.Fields, ", "))
}
