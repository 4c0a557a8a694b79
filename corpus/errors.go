package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound is returned if the assets path does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrNotADirectory is returned if the assets path is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrEmptyDirectory is returned if the directory has no raw files.
	ErrEmptyDirectory = errors.New("empty directory")

	// ErrInconsistentDataset is returned if the ids have gaps, the number of
	// meta and raw files is not equal, or some file is empty.
	ErrInconsistentDataset = errors.New("inconsistent dataset")
)

// DatasetError describes why a dataset failed validation. Err is one of the
// Err* sentinels.
type DatasetError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DatasetError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Path)
	}
	return fmt.Sprintf("%s: %s: %s", e.Err, e.Path, e.Reason)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

func datasetErr(err error, path, format string, args ...any) *DatasetError {
	return &DatasetError{Path: path, Reason: fmt.Sprintf(format, args...), Err: err}
}
