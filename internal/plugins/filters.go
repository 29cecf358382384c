// Package plugins implements the import/export filter table: named file
// converters the user can invoke to bring flight tracks in and out of
// foreign formats.
package plugins

import (
	"errors"
	"fmt"

	"github.com/skyward/msplan/internal/flighttrack"
)

// ErrDuplicateFilter reports a second registration under an already taken
// display name. This is a configuration error and not recoverable.
var ErrDuplicateFilter = errors.New("filter name already registered")

// ImportFunc parses the file at path into a track name and its waypoints.
// An empty name is allowed; the caller substitutes the file name.
type ImportFunc func(path string) (name string, wps []flighttrack.Waypoint, err error)

// ExportFunc writes the named waypoint sequence to the file at path.
type ExportFunc func(path, name string, wps []flighttrack.Waypoint) error

// ImportFilter is one entry of the import menu.
type ImportFilter struct {
	Name      string
	Extension string
	Func      ImportFunc
}

// ExportFilter is one entry of the export menu.
type ExportFilter struct {
	Name      string
	Extension string
	Func      ExportFunc
}

// FilterTable holds the registered import and export filters in menu order.
// Registration happens at startup only; names must be unique per direction.
type FilterTable struct {
	imports []ImportFilter
	exports []ExportFilter
}

func NewFilterTable() *FilterTable { return &FilterTable{} }

// RegisterImport adds an import filter. A duplicate name is fatal to setup.
func (t *FilterTable) RegisterImport(name, extension string, fn ImportFunc) error {
	for _, f := range t.imports {
		if f.Name == name {
			return fmt.Errorf("import %q: %w", name, ErrDuplicateFilter)
		}
	}
	t.imports = append(t.imports, ImportFilter{Name: name, Extension: extension, Func: fn})
	return nil
}

// RegisterExport adds an export filter. A duplicate name is fatal to setup.
func (t *FilterTable) RegisterExport(name, extension string, fn ExportFunc) error {
	for _, f := range t.exports {
		if f.Name == name {
			return fmt.Errorf("export %q: %w", name, ErrDuplicateFilter)
		}
	}
	t.exports = append(t.exports, ExportFilter{Name: name, Extension: extension, Func: fn})
	return nil
}

// Imports returns the import filters in registration order.
func (t *FilterTable) Imports() []ImportFilter { return t.imports }

// Exports returns the export filters in registration order.
func (t *FilterTable) Exports() []ExportFilter { return t.exports }
