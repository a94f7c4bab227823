package gazetteer

import "fmt"

// DatasetMissingError reports that a required dataset file does not exist on
// disk. Fatal: the store cannot serve any request until it's fixed.
type DatasetMissingError struct {
	Path string
}

func (e *DatasetMissingError) Error() string {
	return fmt.Sprintf("gazetteer dataset missing at %s", e.Path)
}

// DatasetCorruptError reports that a dataset file exists but failed to parse
// as the expected JSON record array.
type DatasetCorruptError struct {
	Path string
	Err  error
}

func (e *DatasetCorruptError) Error() string {
	return fmt.Sprintf("gazetteer dataset at %s is corrupt: %v", e.Path, e.Err)
}

func (e *DatasetCorruptError) Unwrap() error {
	return e.Err
}
