package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\xef\xbb\xbf"

// Result is everything one CSV file yielded: which layout it used, the
// rule mappings that carried at least one technique, and the rows that
// had to be skipped because their technique list would not parse.
type Result struct {
	Format  string
	Rules   []RuleMapping
	Skipped []*ParseError
}

// ReadFile parses one mapping export. Rows whose technique list is
// malformed are collected in Result.Skipped rather than failing the
// file; a header that matches no known format fails the whole file with
// a ColumnError.
func ReadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a mapping export from r. See ReadFile.
func Read(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, like the exports do

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty CSV: no header row")
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		header[i] = strings.TrimSpace(col)
	}

	format, err := DetectFormat(header)
	if err != nil {
		return nil, err
	}

	result := &Result{Format: format.Name()}
	for rowNum := 1; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", rowNum, err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		techniques, err := format.Techniques(row, rowNum)
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				result.Skipped = append(result.Skipped, parseErr)
				continue
			}
			return nil, err
		}
		if len(techniques) == 0 {
			continue
		}

		result.Rules = append(result.Rules, RuleMapping{
			Name:       format.RuleName(row),
			Techniques: techniques,
		})
	}

	return result, nil
}
