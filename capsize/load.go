/*
Package capsize loads font metrics tables in the capsize JSON format: an
object keyed by camelCase family identifiers whose values carry the per-family
design-unit metrics (ascent, descent, line gap, units per em, average glyph
width, and so on).

Loaders in this package satisfy the fallback.TableLoader interface.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package capsize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webfont"
)

// tracer writes to trace with key 'webfont.capsize'
func tracer() tracing.Trace {
	return tracing.Select("webfont.capsize")
}

// ErrMetricsUnavailable flags a metrics resource that could not be read or
// parsed. A missing file and malformed JSON are not distinguished; either way
// no metrics are available.
var ErrMetricsUnavailable = errors.New("font metrics resource unavailable")

// Parse decodes a capsize metrics table from raw JSON bytes.
func Parse(data []byte) (webfont.MetricsTable, error) {
	var table webfont.MetricsTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetricsUnavailable, err)
	}
	tracer().Debugf("parsed metrics table with %d entries", len(table))
	return table, nil
}

// LoadFile reads and parses a capsize metrics table from a file.
func LoadFile(path string) (webfont.MetricsTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetricsUnavailable, err)
	}
	return Parse(data)
}

// LoadFS reads and parses a capsize metrics table from a file system, e.g. an
// embed.FS carrying the resource.
func LoadFS(fsys fs.FS, path string) (webfont.MetricsTable, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetricsUnavailable, err)
	}
	return Parse(data)
}

// Loader obtains a metrics table. It mirrors fallback.TableLoader so that
// this package does not depend on the fallback package.
type Loader interface {
	Table() (webfont.MetricsTable, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func() (webfont.MetricsTable, error)

// Table calls f.
func (f LoaderFunc) Table() (webfont.MetricsTable, error) {
	return f()
}

// FileLoader loads the table from a file path on every call. Wrap it in a
// CachedLoader to read the file only once.
type FileLoader struct {
	Path string
}

// Table implements Loader.
func (l FileLoader) Table() (webfont.MetricsTable, error) {
	return LoadFile(l.Path)
}

// CachedLoader memoizes the result of an underlying loader, errors included.
// Safe for concurrent use; the inner loader runs at most once.
type CachedLoader struct {
	once  sync.Once
	inner Loader
	table webfont.MetricsTable
	err   error
}

// NewCachedLoader wraps a loader with memoization.
func NewCachedLoader(inner Loader) *CachedLoader {
	return &CachedLoader{inner: inner}
}

// Table implements Loader.
func (c *CachedLoader) Table() (webfont.MetricsTable, error) {
	c.once.Do(func() {
		c.table, c.err = c.inner.Table()
	})
	return c.table, c.err
}
