// Package mapping reads detection-rule-to-ATT&CK mapping CSV exports and
// extracts the technique lists each rule references. Two historical export
// formats exist; the package detects which one a file uses from its header
// row and parses rows accordingly.
package mapping

import (
	"fmt"
	"strings"
)

// RuleMapping associates one detection rule with the technique IDs it
// covers. Immutable once created.
type RuleMapping struct {
	Name       string
	Techniques []string
}

// ParseError reports a single row whose technique list could not be
// parsed. The row is skipped; the rest of the file is still processed.
type ParseError struct {
	Row  int    // 1-based data row number
	Rule string // rule name, if the row had one
	Raw  string // the cell text that failed to parse
}

func (e *ParseError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("row %d (rule %q): cannot parse technique list %q", e.Row, e.Rule, e.Raw)
	}
	return fmt.Sprintf("row %d: cannot parse technique list %q", e.Row, e.Raw)
}

// MissingColumns names the columns one export format needed but did not
// find in a header row.
type MissingColumns struct {
	Format  string
	Columns []string
}

// ColumnError reports a header row that matches no known export format.
// It aborts processing of the whole file.
type ColumnError struct {
	Missing []MissingColumns
	Found   []string // columns actually present in the header
}

func (e *ColumnError) Error() string {
	var parts []string
	for _, m := range e.Missing {
		parts = append(parts, fmt.Sprintf("%s format needs %s", m.Format, strings.Join(m.Columns, ", ")))
	}
	return fmt.Sprintf("no known column layout matched (%s); found columns: %s",
		strings.Join(parts, "; "), strings.Join(e.Found, ", "))
}
