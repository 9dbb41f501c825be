// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"errors"
	"fmt"
)

// ErrDataSource is matched by every failure to load the wordlist or the
// tag lookup.
var ErrDataSource = errors.New("data source error")

// DataSourceError reports a wordlist or tag lookup that could not be read,
// fetched, or validated.
type DataSourceError struct {
	// Source is "wordlist" or "tags".
	Source string

	// Path is the file, database, or URL involved.
	Path string

	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("loading %s from %s: %v", e.Source, e.Path, e.Err)
}

// Unwrap exposes both the cause and ErrDataSource to errors.Is.
func (e *DataSourceError) Unwrap() []error {
	return []error{ErrDataSource, e.Err}
}

func wordlistError(path string, err error) error {
	return &DataSourceError{Source: "wordlist", Path: path, Err: err}
}

func tagsError(path string, err error) error {
	return &DataSourceError{Source: "tags", Path: path, Err: err}
}
