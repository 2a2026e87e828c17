package mapping

import (
	"errors"
	"reflect"
	"testing"
)

func TestDetectFormat_MappingList(t *testing.T) {
	header := []string{"Title", "MITRE Mapping", "Mapping Present", "Extra"}

	format, err := DetectFormat(header)
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if format.Name() != "mapping-list" {
		t.Errorf("expected mapping-list, got %q", format.Name())
	}
}

func TestDetectFormat_SplitColumns(t *testing.T) {
	header := []string{"title", "techniques", "subtechniques"}

	format, err := DetectFormat(header)
	if err != nil {
		t.Fatalf("DetectFormat: %v", err)
	}
	if format.Name() != "split-columns" {
		t.Errorf("expected split-columns, got %q", format.Name())
	}
}

func TestDetectFormat_NoMatch(t *testing.T) {
	header := []string{"name", "id"}

	_, err := DetectFormat(header)
	if err == nil {
		t.Fatal("expected ColumnError, got nil")
	}

	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected *ColumnError, got %T", err)
	}
	if !reflect.DeepEqual(colErr.Found, header) {
		t.Errorf("expected found columns %v, got %v", header, colErr.Found)
	}
	if len(colErr.Missing) != 2 {
		t.Fatalf("expected missing columns for both formats, got %v", colErr.Missing)
	}
}

func TestMappingList_PresentGate(t *testing.T) {
	format := mappingListFormat{}

	row := map[string]string{
		"Title":           "Rule A",
		"MITRE Mapping":   `["T1059"]`,
		"Mapping Present": "No",
	}
	got, err := format.Techniques(row, 1)
	if err != nil {
		t.Fatalf("Techniques: %v", err)
	}
	if got != nil {
		t.Errorf("expected row without mapping to be skipped, got %v", got)
	}

	row["Mapping Present"] = "YES"
	got, err = format.Techniques(row, 1)
	if err != nil {
		t.Fatalf("Techniques: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"T1059"}) {
		t.Errorf("expected [T1059], got %v", got)
	}
}

func TestMappingList_MalformedCell(t *testing.T) {
	format := mappingListFormat{}

	row := map[string]string{
		"Title":           "Rule A",
		"MITRE Mapping":   `not a list`,
		"Mapping Present": "yes",
	}

	_, err := format.Techniques(row, 7)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Row != 7 || parseErr.Rule != "Rule A" || parseErr.Raw != "not a list" {
		t.Errorf("unexpected ParseError fields: %+v", parseErr)
	}
}

func TestSplitColumns_Order(t *testing.T) {
	format := splitColumnsFormat{}

	row := map[string]string{
		"title":         "Rule B",
		"techniques":    " T1059 , T1071 ",
		"subtechniques": "T1059.001, ,T1021.002",
	}

	got, err := format.Techniques(row, 1)
	if err != nil {
		t.Fatalf("Techniques: %v", err)
	}

	// Techniques come first, then sub-techniques, empties dropped.
	want := []string{"T1059", "T1071", "T1059.001", "T1021.002"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitColumns_BothEmpty(t *testing.T) {
	format := splitColumnsFormat{}

	row := map[string]string{
		"title":         "Rule C",
		"techniques":    "",
		"subtechniques": " , ",
	}

	got, err := format.Techniques(row, 1)
	if err != nil {
		t.Fatalf("expected silent skip, got error %v", err)
	}
	if got != nil {
		t.Errorf("expected nil techniques, got %v", got)
	}
}
