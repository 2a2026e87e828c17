// Package report writes layer documents to disk and prints the console
// coverage summary.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rcegan/Splunk-MITRE-Generator/internal/layer"
)

// WriteError reports a layer file that could not be written. It is fatal
// for that input file's processing only.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write layer %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// OutputPath derives where the layer for inputPath goes: under
// outputRoot, in a subfolder named by the input base name's
// prefix-before-underscore when it has one, named with the base name and
// a timestamp. Two runs inside the same second for the same input would
// collide; acceptable for a batch tool run by hand.
func OutputPath(outputRoot, inputPath string, now time.Time) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	dir := outputRoot
	if idx := strings.Index(base, "_"); idx > 0 {
		dir = filepath.Join(outputRoot, base[:idx])
	}

	filename := fmt.Sprintf("layer_%s_%s.json", base, now.Format("20060102_150405"))
	return filepath.Join(dir, filename)
}

// Write serializes doc to path, creating any needed directories. The
// document is fully built in memory before this is called, so a failure
// never leaves a half-written layer behind a successful return.
func Write(doc *layer.Layer, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
