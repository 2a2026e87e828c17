package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcegan/Splunk-MITRE-Generator/internal/aggregate"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/config"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/layer"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/mapping"
)

var testTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestOutputPath_PrefixSubfolder(t *testing.T) {
	got := OutputPath("layers", "/tmp/exports/splunk_prod.csv", testTime)

	want := filepath.Join("layers", "splunk", "layer_splunk_prod_20260314_092653.json")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestOutputPath_NoPrefix(t *testing.T) {
	got := OutputPath("layers", "ExportMITREMapping.csv", testTime)

	want := filepath.Join("layers", "layer_ExportMITREMapping_20260314_092653.json")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWrite_CreatesDirectoriesAndValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layers", "splunk", "layer.json")

	cov := aggregate.New()
	cov.Add(mapping.RuleMapping{Name: "Rule A", Techniques: []string{"T1059"}})
	doc := layer.Build(cov, config.DefaultSettings(), testTime)

	if err := Write(doc, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back layer: %v", err)
	}

	var decoded layer.Layer
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("layer file is not valid JSON: %v", err)
	}
	if decoded.Name != doc.Name || len(decoded.Techniques) != 1 {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
}

func TestWrite_FailureIsWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Parent "directory" is a regular file, so MkdirAll must fail.
	path := filepath.Join(blocker, "layer.json")
	err := Write(&layer.Layer{}, path)

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected *WriteError, got %v", err)
	}
	if writeErr.Path != path {
		t.Errorf("expected path %q in error, got %q", path, writeErr.Path)
	}
}
