package mapping

import "strings"

// RowFormat is one known CSV export layout. A format knows which columns
// it needs and how to pull an ordered technique list out of one row.
type RowFormat interface {
	Name() string
	// Required lists the header columns the format cannot work without.
	Required() []string
	// RuleName returns the rule title for a row.
	RuleName(row map[string]string) string
	// Techniques extracts the ordered technique IDs from a row. A nil
	// slice with a nil error means the row carries no mapping and should
	// be skipped silently. rowNum is the 1-based data row, for errors.
	Techniques(row map[string]string, rowNum int) ([]string, error)
}

// formats is the closed set of known layouts, in detection-priority
// order.
var formats = []RowFormat{
	mappingListFormat{},
	splitColumnsFormat{},
}

// DetectFormat picks the format whose required columns are all present
// in the (already-trimmed) header. If none matches it returns a
// ColumnError describing what each format was missing.
func DetectFormat(header []string) (RowFormat, error) {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	colErr := &ColumnError{Found: header}
	for _, f := range formats {
		var missing []string
		for _, col := range f.Required() {
			if !present[col] {
				missing = append(missing, col)
			}
		}
		if len(missing) == 0 {
			return f, nil
		}
		colErr.Missing = append(colErr.Missing, MissingColumns{Format: f.Name(), Columns: missing})
	}

	return nil, colErr
}

// mappingListFormat is the original export layout: the full technique
// list lives in a single "MITRE Mapping" cell as a bracketed list of
// quoted IDs, gated by a yes/no "Mapping Present" column.
type mappingListFormat struct{}

func (mappingListFormat) Name() string { return "mapping-list" }

func (mappingListFormat) Required() []string {
	return []string{"Title", "MITRE Mapping", "Mapping Present"}
}

func (mappingListFormat) RuleName(row map[string]string) string {
	return row["Title"]
}

func (f mappingListFormat) Techniques(row map[string]string, rowNum int) ([]string, error) {
	if !strings.EqualFold(strings.TrimSpace(row["Mapping Present"]), "yes") {
		return nil, nil
	}
	raw := row["MITRE Mapping"]
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	techniques, err := parseTechniqueList(raw)
	if err != nil {
		return nil, &ParseError{Row: rowNum, Rule: f.RuleName(row), Raw: raw}
	}
	return techniques, nil
}

// splitColumnsFormat is the newer export layout: comma-joined technique
// and sub-technique IDs in two separate columns.
type splitColumnsFormat struct{}

func (splitColumnsFormat) Name() string { return "split-columns" }

func (splitColumnsFormat) Required() []string {
	return []string{"title", "techniques", "subtechniques"}
}

func (splitColumnsFormat) RuleName(row map[string]string) string {
	return row["title"]
}

func (splitColumnsFormat) Techniques(row map[string]string, rowNum int) ([]string, error) {
	techniques := splitIDs(row["techniques"])
	techniques = append(techniques, splitIDs(row["subtechniques"])...)
	if len(techniques) == 0 {
		return nil, nil
	}
	return techniques, nil
}

// splitIDs splits a comma-joined ID list, trimming whitespace and
// dropping empty tokens.
func splitIDs(s string) []string {
	var ids []string
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			ids = append(ids, token)
		}
	}
	return ids
}
